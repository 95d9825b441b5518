package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"pdfservice/internal/domain"
	"pdfservice/internal/http/middleware"
	"pdfservice/internal/services"
)

// GenerateInvoice is the return-payload endpoint: the invoice PDF comes back
// base64-encoded with metadata instead of being emailed.
func GenerateInvoice(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.BookingRequest
		if !BindJSONOrError(c, &req) {
			return
		}
		if req.Type == "" {
			req.Type = domain.TypeInvoice
		}
		if req.Type != domain.TypeInvoice {
			RespondDomainError(c, domain.ValidationError{
				Fields: []string{"type"},
				Msg:    "this endpoint only generates invoices",
			})
			return
		}
		if err := req.Validate(); err != nil {
			RespondDomainError(c, err)
			return
		}

		svc := services.InvoiceService{
			Preparer:  deps.Preparer,
			Templates: deps.Templates,
			PDF:       deps.PDF,
			RequestID: middleware.GetRequestID(c),
		}

		out, err := svc.Generate(c.Request.Context(), req.Data)
		if err != nil {
			RespondDomainError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"pdf":      base64.StdEncoding.EncodeToString(out.PDF),
			"filename": out.Filename,
			"metadata": out.Metadata,
		})
	}
}
