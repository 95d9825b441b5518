package services

import (
	"context"
	"fmt"
	"strings"

	"pdfservice/internal/domain"
	"pdfservice/internal/logger"
	"pdfservice/internal/mail"
)

// EmailService sends document copies to the customer and the booking agent.
// The two deliveries are independent; neither failure blocks the other.
type EmailService struct {
	Sender    mail.Sender
	RequestID string
}

// EmailResult is the outcome of one recipient's delivery attempt.
type EmailResult struct {
	Success   bool
	Skipped   bool
	MessageID string
	Err       string
}

// AgentCopyInfo carries the booking context used to customize the agent copy.
type AgentCopyInfo struct {
	CustomerName  string
	AgencyName    string
	CustomerPhone string
}

// Subject builds the subject line for a document email.
func Subject(docType, tourTitle, docNumber string, agentCopy bool) string {
	prefix := ""
	if agentCopy {
		prefix = "[Agent Copy] "
	}

	switch docType {
	case domain.TypeBookingVoucher:
		return fmt.Sprintf("%sBooking Confirmed - %s | Voucher #%s", prefix, tourTitle, docNumber)
	case domain.TypeQuote:
		return fmt.Sprintf("%sYour Travel Quote - %s | Quote #%s", prefix, tourTitle, docNumber)
	default:
		return fmt.Sprintf("%s%s - %s", prefix, tourTitle, docNumber)
	}
}

// SendCustomerCopy delivers the document to the customer. An empty address is
// reported as skipped, not failed.
func (s EmailService) SendCustomerCopy(ctx context.Context, email, docType, tourTitle, docNumber, html string, att mail.Attachment) EmailResult {
	if strings.TrimSpace(email) == "" {
		return EmailResult{Skipped: true}
	}

	res := s.Sender.Send(ctx, mail.Message{
		To:          email,
		Subject:     Subject(docType, tourTitle, docNumber, false),
		HTML:        html,
		Attachments: []mail.Attachment{att},
	})
	s.logOutcome("customer", email, res)
	return EmailResult{Success: res.Success, MessageID: res.MessageID, Err: res.Err}
}

// SendAgentCopy delivers the agent copy with a customized greeting and intro.
func (s EmailService) SendAgentCopy(ctx context.Context, email, docType, tourTitle, docNumber, html string, att mail.Attachment, info AgentCopyInfo) EmailResult {
	if strings.TrimSpace(email) == "" {
		return EmailResult{Skipped: true}
	}

	res := s.Sender.Send(ctx, mail.Message{
		To:          email,
		Subject:     Subject(docType, tourTitle, docNumber, true),
		HTML:        customizeAgentHTML(html, info, docType == domain.TypeBookingVoucher),
		Attachments: []mail.Attachment{att},
	})
	s.logOutcome("agent", email, res)
	return EmailResult{Success: res.Success, MessageID: res.MessageID, Err: res.Err}
}

func (s EmailService) logOutcome(recipient, email string, res mail.Result) {
	log := logger.WithRequestID(s.RequestID)
	if res.Success {
		log.Info().Str("recipient", recipient).Str("to", email).Msg("document email sent")
		return
	}
	log.Error().Str("recipient", recipient).Str("to", email).Str("error", res.Err).Msg("document email failed")
}

// customizeAgentHTML rewrites the customer greeting and intro line for the
// agency. The email templates emit these exact phrases.
func customizeAgentHTML(html string, info AgentCopyInfo, isVoucher bool) string {
	customerName := info.CustomerName
	if customerName == "" {
		customerName = "Customer"
	}
	agencyName := info.AgencyName
	if agencyName == "" {
		agencyName = "Agent"
	}
	phone := info.CustomerPhone
	if phone == "" {
		phone = "N/A"
	}

	customerGreeting := fmt.Sprintf("Dear <strong>%s</strong>", customerName)
	agentGreeting := fmt.Sprintf("Dear <strong>%s</strong>", agencyName)

	var customerMessage, agentMessage string
	if isVoucher {
		customerMessage = "Thank you for choosing Cox & Kings! Your booking has been confirmed successfully."
		agentMessage = fmt.Sprintf("A booking has been confirmed for your customer <strong>%s</strong> (%s).", customerName, phone)
	} else {
		customerMessage = "Thank you for your interest in traveling with us! We have prepared a detailed quote for your dream vacation."
		agentMessage = fmt.Sprintf("A quote has been generated for your customer <strong>%s</strong> (%s).", customerName, phone)
	}

	html = strings.Replace(html, customerGreeting, agentGreeting, 1)
	html = strings.Replace(html, customerMessage, agentMessage, 1)
	return html
}
