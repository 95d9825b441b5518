package services

import (
	"context"
	"time"

	"pdfservice/internal/docdata"
	"pdfservice/internal/domain"
	"pdfservice/internal/logger"
)

// InvoiceService runs the return-payload pipeline: the invoice PDF goes back
// to the caller instead of out by email.
type InvoiceService struct {
	Preparer  docdata.Preparer
	Templates TemplateRenderer
	PDF       PDFRenderer
	RequestID string
}

// InvoiceMetadata accompanies the returned document.
type InvoiceMetadata struct {
	InvoiceNumber string `json:"invoiceNumber"`
	CustomerName  string `json:"customerName"`
	GrandTotal    string `json:"grandTotal"`
	GeneratedAt   string `json:"generatedAt"`
}

// InvoicePDF is the rendered document plus its metadata.
type InvoicePDF struct {
	Filename string
	PDF      []byte
	Metadata InvoiceMetadata
}

// Generate renders the invoice template for validated invoice data and
// returns the PDF bytes. No email side effect.
func (s InvoiceService) Generate(ctx context.Context, data map[string]any) (InvoicePDF, error) {
	log := logger.WithRequestID(s.RequestID)

	invoiceData := s.Preparer.PrepareInvoice(data)

	invoiceNumber, _ := domain.FieldString(data, "invoiceNumber")
	log.Info().Str("invoice", invoiceNumber).Msg("generating invoice pdf")

	html, err := s.Templates.Render(domain.TypeInvoice, invoiceData)
	if err != nil {
		return InvoicePDF{}, err
	}

	pdf, err := s.PDF.Render(ctx, html)
	if err != nil {
		return InvoicePDF{}, err
	}
	log.Info().Str("invoice", invoiceNumber).Int("bytes", len(pdf)).Msg("invoice pdf generated")

	customerName, _ := domain.FieldString(data, "customerName")
	grandTotal, _ := invoiceData["grandTotal"].(string)

	return InvoicePDF{
		Filename: attachmentName(domain.TypeInvoice, invoiceNumber),
		PDF:      pdf,
		Metadata: InvoiceMetadata{
			InvoiceNumber: invoiceNumber,
			CustomerName:  customerName,
			GrandTotal:    grandTotal,
			GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}
