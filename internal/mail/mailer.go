// Package mail delivers generated documents over SMTP. Send never raises;
// callers must check the Result flag so one failed recipient cannot abort the
// other.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	gomail "github.com/wneessen/go-mail"

	"pdfservice/internal/logger"
)

// Attachment is a binary payload attached to an outbound message.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

// Message is one outbound email.
type Message struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Result reports a delivery attempt. Err is a human-readable failure string,
// never a panic or thrown error.
type Result struct {
	Success   bool
	MessageID string
	Err       string
}

// Sender abstracts SMTP delivery for testing.
type Sender interface {
	Send(ctx context.Context, msg Message) Result
}

// SMTPSender delivers via STARTTLS SMTP with bounded connection time. One
// attempt per message; retries are the caller's policy and none is configured.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	Timeout  time.Duration
}

var _ Sender = (*SMTPSender)(nil)

func (s *SMTPSender) Send(ctx context.Context, msg Message) Result {
	log := logger.WithComponent("mail")

	if s.Username == "" || s.Password == "" {
		return Result{Err: "smtp credentials not configured"}
	}

	from := s.From
	if from == "" {
		from = s.Username
	}

	m := gomail.NewMsg()
	if err := m.FromFormat(s.FromName, from); err != nil {
		return Result{Err: fmt.Sprintf("invalid sender address: %v", err)}
	}
	if err := m.To(msg.To); err != nil {
		return Result{Err: fmt.Sprintf("invalid recipient address: %v", err)}
	}

	messageID := fmt.Sprintf("%s@%s", uuid.NewString(), domainPart(from))
	m.SetMessageIDWithValue(messageID)
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	for _, att := range msg.Attachments {
		if err := m.AttachReader(att.Filename, bytes.NewReader(att.Content)); err != nil {
			return Result{Err: fmt.Sprintf("attach %s: %v", att.Filename, err)}
		}
	}

	client, err := gomail.NewClient(s.Host,
		gomail.WithPort(s.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.Username),
		gomail.WithPassword(s.Password),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
		gomail.WithTimeout(s.Timeout),
	)
	if err != nil {
		log.Error().Err(err).Msg("smtp client setup failed")
		return Result{Err: err.Error()}
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		log.Error().Err(err).Str("to", msg.To).Msg("email send failed")
		return Result{Err: err.Error()}
	}

	log.Info().Str("to", msg.To).Str("message_id", messageID).Int("attachments", len(msg.Attachments)).Msg("email sent")
	return Result{Success: true, MessageID: messageID}
}

func domainPart(addr string) string {
	if _, host, ok := strings.Cut(addr, "@"); ok && host != "" {
		return host
	}
	return "localhost"
}
