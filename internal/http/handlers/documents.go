package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pdfservice/internal/docdata"
	"pdfservice/internal/domain"
	"pdfservice/internal/http/middleware"
	"pdfservice/internal/mail"
	"pdfservice/internal/services"
)

// Deps bundles the collaborators shared by document handlers. Services are
// assembled per request so each carries the request ID into its logs.
type Deps struct {
	Preparer  docdata.Preparer
	Templates services.TemplateRenderer
	PDF       services.PDFRenderer
	Sender    mail.Sender
}

// GenerateDocument is the send-and-report endpoint: render the document,
// attach it to emails for the customer and/or agent and report per-recipient
// outcomes.
func GenerateDocument(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.BookingRequest
		if !BindJSONOrError(c, &req) {
			return
		}
		if err := req.Validate(); err != nil {
			RespondDomainError(c, err)
			return
		}

		rid := middleware.GetRequestID(c)
		svc := services.DocumentService{
			Preparer:  deps.Preparer,
			Templates: deps.Templates,
			PDF:       deps.PDF,
			Email:     services.EmailService{Sender: deps.Sender, RequestID: rid},
			RequestID: rid,
		}

		res, err := svc.Generate(c.Request.Context(), req)
		if err != nil {
			RespondDomainError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":           true,
			"customerEmailSent": res.CustomerEmailSent,
			"agentEmailSent":    res.AgentEmailSent,
			"pdfGenerated":      res.PDFGenerated,
			"pdfAttached":       res.PDFAttached,
			"messageId":         res.MessageID,
		})
	}
}
