package services

import (
	"context"
	"fmt"
	"time"

	"pdfservice/internal/docdata"
	"pdfservice/internal/domain"
	"pdfservice/internal/logger"
	"pdfservice/internal/mail"
)

// TemplateRenderer renders a named template against a prepared record.
type TemplateRenderer interface {
	Render(name string, data map[string]any) (string, error)
}

// PDFRenderer converts HTML to PDF bytes.
type PDFRenderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// DocumentService runs the send-and-report pipeline: prepare data, render the
// document, convert to PDF and email it to the customer and/or agent.
type DocumentService struct {
	Preparer  docdata.Preparer
	Templates TemplateRenderer
	PDF       PDFRenderer
	Email     EmailService
	RequestID string
}

// GenerateResult reports what the pipeline accomplished. Email booleans are
// per recipient and independent.
type GenerateResult struct {
	CustomerEmailSent bool
	AgentEmailSent    bool
	PDFGenerated      bool
	PDFAttached       bool
	MessageID         string
}

// Generate produces and delivers the document for a validated request.
// Rendering failures abort; a single recipient failure does not. Only when
// every intended recipient fails is the whole request failed.
func (s DocumentService) Generate(ctx context.Context, req domain.BookingRequest) (GenerateResult, error) {
	log := logger.WithRequestID(s.RequestID)
	docNumber := req.DocumentNumber()
	log.Info().Str("type", req.Type).Str("document", docNumber).Msg("generating document")

	templateData := s.prepare(req)

	html, err := s.Templates.Render(req.Type, templateData)
	if err != nil {
		return GenerateResult{}, err
	}

	pdf, err := s.PDF.Render(ctx, html)
	if err != nil {
		return GenerateResult{}, err
	}
	log.Info().Int("bytes", len(pdf)).Msg("pdf generated")

	att := mail.Attachment{
		Filename:    attachmentName(req.Type, docNumber),
		Content:     pdf,
		ContentType: "application/pdf",
	}

	emailHTML, err := s.Templates.Render(req.Type+"-email", templateData)
	if err != nil {
		return GenerateResult{}, err
	}

	tourTitle, _ := domain.FieldString(req.Data, "tourTitle")
	if tourTitle == "" {
		tourTitle = "Travel Package"
	}

	var customerEmail, agentEmail string
	if req.Recipients.Customer != nil {
		customerEmail = req.Recipients.Customer.Email
	}
	if req.Recipients.Agent != nil {
		agentEmail = req.Recipients.Agent.Email
	}

	customer := s.Email.SendCustomerCopy(ctx, customerEmail, req.Type, tourTitle, docNumber, emailHTML, att)

	customerName, _ := domain.FieldString(req.Data, "customerName")
	agencyName, _ := domain.FieldString(req.Data, "agencyName")
	customerPhone, _ := domain.FieldString(req.Data, "customerPhone")
	agent := s.Email.SendAgentCopy(ctx, agentEmail, req.Type, tourTitle, docNumber, emailHTML, att, AgentCopyInfo{
		CustomerName:  customerName,
		AgencyName:    agencyName,
		CustomerPhone: customerPhone,
	})

	result := GenerateResult{
		CustomerEmailSent: customer.Success,
		AgentEmailSent:    agent.Success,
		PDFGenerated:      true,
		PDFAttached:       true,
		MessageID:         firstMessageID(customer, agent),
	}

	if !customer.Success && !agent.Success && (customerEmail != "" || agentEmail != "") {
		return result, domain.DeliveryError{Msg: "failed to send emails to both customer and agent"}
	}
	return result, nil
}

// prepare picks the preparation path for the document type. Invoices get the
// formatted-display record; vouchers and quotes get the tax/derived-counts one.
func (s DocumentService) prepare(req domain.BookingRequest) map[string]any {
	if req.Type == domain.TypeInvoice {
		return s.Preparer.PrepareInvoice(req.Data)
	}
	return s.Preparer.Prepare(req.Data)
}

func attachmentName(docType, docNumber string) string {
	if docNumber == "" {
		docNumber = fmt.Sprintf("%d", time.Now().Unix())
	}
	return fmt.Sprintf("%s-%s.pdf", docType, docNumber)
}

func firstMessageID(results ...EmailResult) string {
	for _, r := range results {
		if r.MessageID != "" {
			return r.MessageID
		}
	}
	return ""
}
