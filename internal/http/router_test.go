package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	intconfig "pdfservice/internal/config"
	"pdfservice/internal/docdata"
	h "pdfservice/internal/http/handlers"
	"pdfservice/internal/mail"
)

type stubTemplates struct{}

func (stubTemplates) Render(name string, data map[string]any) (string, error) {
	return "<html>" + name + "</html>", nil
}

type stubPDF struct{}

func (stubPDF) Render(ctx context.Context, html string) ([]byte, error) {
	return []byte("%PDF-1.7 stub"), nil
}

type stubSender struct {
	fail map[string]bool
}

func (s *stubSender) Send(ctx context.Context, msg mail.Message) mail.Result {
	if s.fail[msg.To] {
		return mail.Result{Err: "mailbox unavailable"}
	}
	return mail.Result{Success: true, MessageID: "id-" + msg.To}
}

func testRouter(sender *stubSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	env := intconfig.Env{CORSAllowedOrigins: []string{"*"}}
	deps := h.Deps{
		Preparer:  docdata.Preparer{},
		Templates: stubTemplates{},
		PDF:       stubPDF{},
		Sender:    sender,
	}
	return NewRouter(env, deps)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response: %v\n%s", err, w.Body.String())
	}
	return w, out
}

func TestHealthEndpoint(t *testing.T) {
	w, out := doJSON(t, testRouter(&stubSender{}), http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK || out["status"] != "ok" {
		t.Fatalf("code=%d body=%v", w.Code, out)
	}
}

func TestGeneratePDFRejectsBadJSON(t *testing.T) {
	w, out := doJSON(t, testRouter(&stubSender{}), http.MethodPost, "/api/generate-pdf", "{nope")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	if out["success"] != false {
		t.Fatalf("body=%v", out)
	}
}

func TestGeneratePDFRejectsUnknownType(t *testing.T) {
	body := `{"type":"receipt","data":{"totalAmount":100}}`
	w, out := doJSON(t, testRouter(&stubSender{}), http.MethodPost, "/api/generate-pdf", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d body=%v", w.Code, out)
	}
	if msg, _ := out["error"].(string); !strings.Contains(msg, "type") {
		t.Fatalf("error should name the type field: %v", out)
	}
}

func TestGeneratePDFSendAndReport(t *testing.T) {
	body := `{
		"type": "booking-voucher",
		"data": {"totalAmount": 120000, "voucherNumber": "CK-1001", "tourTitle": "Rajasthan Royals"},
		"recipients": {
			"customer": {"email": "customer@example.com"},
			"agent": {"email": "agent@example.com"}
		}
	}`
	w, out := doJSON(t, testRouter(&stubSender{}), http.MethodPost, "/api/generate-pdf", body)
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%v", w.Code, out)
	}
	if out["success"] != true || out["customerEmailSent"] != true || out["agentEmailSent"] != true {
		t.Fatalf("body=%v", out)
	}
	if out["pdfGenerated"] != true || out["pdfAttached"] != true {
		t.Fatalf("body=%v", out)
	}
	if out["messageId"] != "id-customer@example.com" {
		t.Fatalf("messageId=%v", out["messageId"])
	}
}

func TestGeneratePDFPartialDeliveryStillSucceeds(t *testing.T) {
	sender := &stubSender{fail: map[string]bool{"customer@example.com": true}}
	body := `{
		"type": "quote",
		"data": {"totalAmount": 50000, "quoteNumber": "Q-7"},
		"recipients": {
			"customer": {"email": "customer@example.com"},
			"agent": {"email": "agent@example.com"}
		}
	}`
	w, out := doJSON(t, testRouter(sender), http.MethodPost, "/api/generate-pdf", body)
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%v", w.Code, out)
	}
	if out["customerEmailSent"] != false || out["agentEmailSent"] != true || out["success"] != true {
		t.Fatalf("body=%v", out)
	}
}

func TestGeneratePDFAllDeliveriesFail(t *testing.T) {
	sender := &stubSender{fail: map[string]bool{
		"customer@example.com": true,
		"agent@example.com":    true,
	}}
	body := `{
		"type": "quote",
		"data": {"totalAmount": 50000, "quoteNumber": "Q-7"},
		"recipients": {
			"customer": {"email": "customer@example.com"},
			"agent": {"email": "agent@example.com"}
		}
	}`
	w, out := doJSON(t, testRouter(sender), http.MethodPost, "/api/generate-pdf", body)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code=%d body=%v", w.Code, out)
	}
	if out["success"] != false {
		t.Fatalf("body=%v", out)
	}
}

func TestGenerateInvoiceReturnsBase64Payload(t *testing.T) {
	body := `{
		"type": "invoice",
		"data": {
			"invoiceNumber": "INV-2026-042",
			"invoiceDate": "2026-02-01",
			"bookingId": "BK-881",
			"customerName": "A Traveller",
			"tourTitle": "Kerala Backwaters",
			"subtotal": 90000,
			"gstAmount": 4500,
			"grandTotal": 94500
		}
	}`
	w, out := doJSON(t, testRouter(&stubSender{}), http.MethodPost, "/api/generate-invoice", body)
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%v", w.Code, out)
	}
	raw, err := base64.StdEncoding.DecodeString(out["pdf"].(string))
	if err != nil || !strings.HasPrefix(string(raw), "%PDF") {
		t.Fatalf("pdf payload not base64 PDF: %v", err)
	}
	if out["filename"] != "invoice-INV-2026-042.pdf" {
		t.Fatalf("filename=%v", out["filename"])
	}
	meta := out["metadata"].(map[string]any)
	if meta["invoiceNumber"] != "INV-2026-042" || meta["grandTotal"] != "94500.00" {
		t.Fatalf("metadata=%v", meta)
	}
}

func TestGenerateInvoiceListsMissingFields(t *testing.T) {
	body := `{"type":"invoice","data":{"invoiceNumber":"INV-1"}}`
	w, out := doJSON(t, testRouter(&stubSender{}), http.MethodPost, "/api/generate-invoice", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d body=%v", w.Code, out)
	}
	msg, _ := out["error"].(string)
	for _, field := range []string{"invoiceDate", "bookingId", "customerName", "tourTitle", "subtotal", "gstAmount", "grandTotal"} {
		if !strings.Contains(msg, field) {
			t.Errorf("error should list %s: %v", field, msg)
		}
	}
}

func TestGenerateInvoiceRejectsOtherTypes(t *testing.T) {
	body := `{"type":"quote","data":{"totalAmount":100}}`
	w, _ := doJSON(t, testRouter(&stubSender{}), http.MethodPost, "/api/generate-invoice", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestNoRoute(t *testing.T) {
	w, out := doJSON(t, testRouter(&stubSender{}), http.MethodGet, "/nope", "")
	if w.Code != http.StatusNotFound || out["success"] != false {
		t.Fatalf("code=%d body=%v", w.Code, out)
	}
}
