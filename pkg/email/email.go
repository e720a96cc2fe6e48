package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"net/textproto"

	"go-landdeals-backend/config"
	"go-landdeals-backend/internal/domain"
)

var (
	// ErrConfigIncomplete means a required transport setting is missing.
	// Send fails fast with it before any connection is attempted.
	ErrConfigIncomplete = errors.New("email: configuration incomplete")

	// ErrAuthenticationFailed means the transport rejected the credential.
	ErrAuthenticationFailed = errors.New("email: authentication failed")
)

// TransportError wraps a connection or submission failure, preserving the
// underlying cause for logs.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("email: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Notifier sends enquiry notifications over authenticated SMTP. Gmail's
// submission port speaks plaintext until the client explicitly upgrades, so
// Send performs the EHLO/STARTTLS/AUTH sequence itself rather than using
// smtp.SendMail.
type Notifier struct {
	cfg config.NotifierConfig
}

// NewNotifier creates a Notifier bound to the given transport configuration.
func NewNotifier(cfg config.NotifierConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// IsConfigured reports whether the notifier can attempt a dispatch at all.
func (n *Notifier) IsConfigured() bool {
	return n.cfg.Complete()
}

// enquiryEmailTemplate is the HTML body sent to the operator.
const enquiryEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Property Enquiry</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1e3c72; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1e3c72; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Property Enquiry</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Property:</div>
                <div class="value">{{.ListingName}}</div>
            </div>
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value">{{.Email}}</div>
            </div>
            <div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Phone}}</div>
            </div>
            <div class="field">
                <div class="label">Subject:</div>
                <div class="value">{{.Subject}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the Himachal Land Deals enquiry form.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

// composeMessage renders the full RFC 5322 message for a record.
func (n *Notifier) composeMessage(rec domain.NotificationRecord) ([]byte, error) {
	tmpl, err := template.New("enquiry").Parse(enquiryEmailTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, rec); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	msg := fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		n.cfg.Sender,
		n.cfg.Recipient,
		rec.Email,
		rec.SubjectLine(),
		body.String(),
	)
	return []byte(msg), nil
}

// Send dispatches one notification synchronously. It is not idempotent:
// every call is a fresh attempt, and retry policy belongs to the caller, as
// does any timeout (impose one via ctx; it surfaces as a TransportError).
func (n *Notifier) Send(ctx context.Context, rec domain.NotificationRecord) error {
	if !n.cfg.Complete() {
		return ErrConfigIncomplete
	}

	msg, err := n.composeMessage(rec)
	if err != nil {
		return &TransportError{Op: "compose", Err: err}
	}

	addr := net.JoinHostPort(n.cfg.Host, n.cfg.Port)
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return &TransportError{Op: "dial", Err: err}
	}

	client, err := smtp.NewClient(conn, n.cfg.Host)
	if err != nil {
		conn.Close()
		return &TransportError{Op: "greeting", Err: err}
	}
	defer client.Close()

	if err := client.Hello("localhost"); err != nil {
		return &TransportError{Op: "ehlo", Err: err}
	}
	if err := client.StartTLS(&tls.Config{ServerName: n.cfg.Host}); err != nil {
		return &TransportError{Op: "starttls", Err: err}
	}

	auth := smtp.PlainAuth("", n.cfg.Sender, n.cfg.Password, n.cfg.Host)
	if err := client.Auth(auth); err != nil {
		if isAuthRejection(err) {
			return fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
		}
		return &TransportError{Op: "auth", Err: err}
	}

	if err := client.Mail(n.cfg.Sender); err != nil {
		return &TransportError{Op: "mail", Err: err}
	}
	if err := client.Rcpt(n.cfg.Recipient); err != nil {
		return &TransportError{Op: "rcpt", Err: err}
	}
	w, err := client.Data()
	if err != nil {
		return &TransportError{Op: "data", Err: err}
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()
		return &TransportError{Op: "write", Err: err}
	}
	if err := w.Close(); err != nil {
		return &TransportError{Op: "submit", Err: err}
	}
	return client.Quit()
}

// isAuthRejection distinguishes a credential rejection from a transport
// fault. 535 is the canonical bad-credential reply; 530 and 534 cover
// mechanism and policy rejections (e.g. app passwords required).
func isAuthRejection(err error) bool {
	var proto *textproto.Error
	if errors.As(err, &proto) {
		switch proto.Code {
		case 530, 534, 535:
			return true
		}
	}
	return false
}
