package domain

import (
	"strconv"
	"strings"
)

// Document types accepted by the service.
const (
	TypeBookingVoucher = "booking-voucher"
	TypeQuote          = "quote"
	TypeInvoice        = "invoice"
)

// Recipient is a single email destination.
type Recipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Recipients carries the optional customer and agent destinations. Either may
// be nil; delivery to each is attempted independently.
type Recipients struct {
	Customer *Recipient `json:"customer,omitempty"`
	Agent    *Recipient `json:"agent,omitempty"`
}

// BookingRequest is the inbound payload for document generation. Data stays a
// flat record because templates consume an open superset of booking fields.
type BookingRequest struct {
	Type       string         `json:"type"`
	Data       map[string]any `json:"data"`
	Recipients Recipients     `json:"recipients"`
}

// invoiceRequired are the fields the invoice pipeline cannot render without.
var invoiceRequired = []string{
	"invoiceNumber",
	"invoiceDate",
	"bookingId",
	"customerName",
	"tourTitle",
	"subtotal",
	"gstAmount",
	"grandTotal",
}

// Validate checks the request shape and returns a ValidationError naming every
// missing or invalid field.
func (r BookingRequest) Validate() error {
	if strings.TrimSpace(r.Type) == "" {
		return ValidationError{Fields: []string{"type"}, Msg: "missing required field"}
	}

	switch r.Type {
	case TypeBookingVoucher, TypeQuote, TypeInvoice:
	default:
		return ValidationError{Fields: []string{"type"}, Msg: "unknown document type " + strconv.Quote(r.Type)}
	}

	if len(r.Data) == 0 {
		return ValidationError{Fields: []string{"data"}, Msg: "missing required field"}
	}

	if r.Type == TypeInvoice {
		return r.validateInvoice()
	}

	amount, ok := FieldFloat(r.Data, "totalAmount")
	if !ok {
		return ValidationError{Fields: []string{"data.totalAmount"}, Msg: "must be a number"}
	}
	if amount < 0 {
		return ValidationError{Fields: []string{"data.totalAmount"}, Msg: "must not be negative"}
	}
	return nil
}

func (r BookingRequest) validateInvoice() error {
	var missing []string
	for _, field := range invoiceRequired {
		v, ok := r.Data[field]
		if !ok || v == nil {
			missing = append(missing, field)
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return ValidationError{Fields: missing, Msg: "missing required invoice fields"}
	}

	subtotal, ok := FieldFloat(r.Data, "subtotal")
	if !ok {
		return ValidationError{Fields: []string{"subtotal"}, Msg: "must be a number"}
	}
	if subtotal < 0 {
		return ValidationError{Fields: []string{"subtotal"}, Msg: "must not be negative"}
	}
	return nil
}

// DocumentNumber returns the identifier used in filenames and subjects.
func (r BookingRequest) DocumentNumber() string {
	for _, key := range []string{"voucherNumber", "quoteNumber", "invoiceNumber"} {
		if s, ok := FieldString(r.Data, key); ok && s != "" {
			return s
		}
	}
	return ""
}

// FieldString reads a string field from a flat record.
func FieldString(data map[string]any, key string) (string, bool) {
	v, ok := data[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// FieldFloat reads a numeric field from a flat record. JSON numbers decode as
// float64, but int values from in-process callers are accepted too.
func FieldFloat(data map[string]any, key string) (float64, bool) {
	switch v := data[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// FieldBool reads a boolean field from a flat record.
func FieldBool(data map[string]any, key string) bool {
	b, _ := data[key].(bool)
	return b
}

// FieldSlice reads a list field from a flat record.
func FieldSlice(data map[string]any, key string) ([]any, bool) {
	v, ok := data[key].([]any)
	return v, ok
}
