package services

import (
	"context"
	"strings"
	"testing"

	"pdfservice/internal/domain"
	"pdfservice/internal/mail"
)

func TestSubject(t *testing.T) {
	cases := []struct {
		docType   string
		agentCopy bool
		want      string
	}{
		{domain.TypeBookingVoucher, false, "Booking Confirmed - Kerala Backwaters | Voucher #CK-1"},
		{domain.TypeQuote, false, "Your Travel Quote - Kerala Backwaters | Quote #CK-1"},
		{domain.TypeInvoice, false, "Kerala Backwaters - CK-1"},
		{domain.TypeBookingVoucher, true, "[Agent Copy] Booking Confirmed - Kerala Backwaters | Voucher #CK-1"},
	}
	for _, tc := range cases {
		if got := Subject(tc.docType, "Kerala Backwaters", "CK-1", tc.agentCopy); got != tc.want {
			t.Errorf("Subject(%s, agent=%v) = %q, want %q", tc.docType, tc.agentCopy, got, tc.want)
		}
	}
}

func TestSendCustomerCopySkipsEmptyAddress(t *testing.T) {
	sender := &stubSender{}
	svc := EmailService{Sender: sender}

	res := svc.SendCustomerCopy(context.Background(), "", domain.TypeQuote, "Tour", "Q-1", "<html></html>", mail.Attachment{})
	if !res.Skipped || res.Success {
		t.Fatalf("result = %+v, want skipped", res)
	}
	if len(sender.sent) != 0 {
		t.Fatal("nothing should be sent for an empty address")
	}
}

func TestCustomizeAgentHTMLVoucher(t *testing.T) {
	html := `<p>Dear <strong>A Traveller</strong>,</p>` +
		`<p>Thank you for choosing Cox & Kings! Your booking has been confirmed successfully.</p>`

	got := customizeAgentHTML(html, AgentCopyInfo{
		CustomerName:  "A Traveller",
		AgencyName:    "Sunrise Travels",
		CustomerPhone: "+91 98765 43210",
	}, true)

	if !strings.Contains(got, "Dear <strong>Sunrise Travels</strong>") {
		t.Fatalf("greeting not swapped: %s", got)
	}
	if !strings.Contains(got, "A booking has been confirmed for your customer <strong>A Traveller</strong> (+91 98765 43210).") {
		t.Fatalf("intro not swapped: %s", got)
	}
	if strings.Contains(got, "Thank you for choosing") {
		t.Fatalf("customer intro still present: %s", got)
	}
}

func TestCustomizeAgentHTMLQuoteDefaults(t *testing.T) {
	html := `<p>Dear <strong>Customer</strong>,</p>` +
		`<p>Thank you for your interest in traveling with us! We have prepared a detailed quote for your dream vacation.</p>`

	got := customizeAgentHTML(html, AgentCopyInfo{}, false)

	if !strings.Contains(got, "Dear <strong>Agent</strong>") {
		t.Fatalf("default agent greeting missing: %s", got)
	}
	if !strings.Contains(got, "A quote has been generated for your customer <strong>Customer</strong> (N/A).") {
		t.Fatalf("default quote intro missing: %s", got)
	}
}
