// Package notify emails the studio when a visitor submits a form.
package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/config"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/submissions"
)

// Nop discards alerts. Used when SMTP is not configured.
type Nop struct{}

// NotifySubmission does nothing.
func (Nop) NotifySubmission(context.Context, submissions.Submission) error { return nil }

// Mailer sends one alert per submission to the studio inbox.
type Mailer struct {
	cfg      config.MailConfig
	siteName string
}

// New returns a Mailer, or Nop when no SMTP host is configured.
func New(cfg config.MailConfig, siteName string) submissions.Notifier {
	if cfg.Host == "" {
		return Nop{}
	}
	return &Mailer{cfg: cfg, siteName: siteName}
}

var alertTemplate = template.Must(template.New("alert").Parse(`<!DOCTYPE html>
<html><body style="font-family: Arial, sans-serif; color: #222;">
<h2 style="margin: 0 0 12px;">New {{.Kind}} submission</h2>
<table cellpadding="6" style="border-collapse: collapse;">
<tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
<tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
{{if .Phone}}<tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>{{end}}
{{if .Company}}<tr><td><strong>Company</strong></td><td>{{.Company}}</td></tr>{{end}}
{{if .Service}}<tr><td><strong>Service</strong></td><td>{{.Service}}</td></tr>{{end}}
</table>
{{if .Message}}<p style="white-space: pre-wrap; border-left: 4px solid #c9a86a; padding-left: 12px;">{{.Message}}</p>{{end}}
<p style="color: #888; font-size: 12px;">Received {{.CreatedAt.Format "02 Jan 2006 15:04 MST"}} &middot; id {{.ID}}</p>
</body></html>`))

// Subject is the alert subject line for s.
func (m *Mailer) Subject(s submissions.Submission) string {
	who := s.Name
	if who == "" {
		who = s.Email
	}
	return fmt.Sprintf("[%s] New %s from %s", m.siteName, s.Kind, who)
}

// Message builds the alert. Replies go straight to the visitor.
func (m *Mailer) Message(s submissions.Submission) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.FromEmail); err != nil {
		return nil, fmt.Errorf("setting sender: %w", err)
	}
	if err := msg.To(m.cfg.NotifyTo); err != nil {
		return nil, fmt.Errorf("setting recipient: %w", err)
	}
	if err := msg.ReplyTo(s.Email); err != nil {
		return nil, fmt.Errorf("setting reply-to: %w", err)
	}
	msg.Subject(m.Subject(s))

	var body bytes.Buffer
	if err := alertTemplate.Execute(&body, s); err != nil {
		return nil, fmt.Errorf("rendering alert: %w", err)
	}
	msg.SetBodyString(mail.TypeTextHTML, body.String())
	return msg, nil
}

func (m *Mailer) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSConfig(&tls.Config{ServerName: m.cfg.Host}),
	}
	if isLocal(m.cfg.Host) {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}
	return mail.NewClient(m.cfg.Host, opts...)
}

// NotifySubmission sends the alert.
func (m *Mailer) NotifySubmission(ctx context.Context, s submissions.Submission) error {
	msg, err := m.Message(s)
	if err != nil {
		return err
	}
	c, err := m.client()
	if err != nil {
		return fmt.Errorf("creating SMTP client (host=%s port=%d): %w", m.cfg.Host, m.cfg.Port, err)
	}
	if err := c.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending alert (host=%s port=%d): %w", m.cfg.Host, m.cfg.Port, err)
	}
	return nil
}

func isLocal(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || strings.HasSuffix(host, ".local")
}
