package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"

	gomail "gopkg.in/gomail.v2"

	"motorhub/internal/pkg/logger"
)

// Mailer is the fire-and-forget notification sink for onboarding outcomes.
// A failed send is logged and reported, but callers never roll back the
// mutation that triggered it.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func New(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

var acceptedTmpl = template.Must(template.New("accepted").Parse(`
<p>Hello {{.Name}},</p>
<p>Your workshop registration has been approved. You can now log in to your account.</p>
<p>Temporary password: <b>{{.Password}}</b></p>
<p>Please change it after your first login.</p>
`))

var rejectedTmpl = template.Must(template.New("rejected").Parse(`
<p>Hello {{.Name}},</p>
<p>Unfortunately your workshop registration was not approved.</p>
<p>You are welcome to submit a new registration with corrected details.</p>
`))

// WorkshopAccepted emails the approval notice. The password here is the
// plaintext captured before hashing; this is the only place it ever leaves
// the system.
func (m *Mailer) WorkshopAccepted(ctx context.Context, email, name, password string) error {
	data := struct {
		Name     string
		Password string
	}{Name: name, Password: password}

	var body bytes.Buffer
	if err := acceptedTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute acceptance template: %w", err)
	}
	return m.send(email, "Workshop registration approved", body.String())
}

func (m *Mailer) WorkshopRejected(ctx context.Context, email, name string) error {
	data := struct{ Name string }{Name: name}

	var body bytes.Buffer
	if err := rejectedTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute rejection template: %w", err)
	}
	return m.send(email, "Workshop registration rejected", body.String())
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	dialer.TLSConfig = &tls.Config{ServerName: m.host}

	if err := dialer.DialAndSend(msg); err != nil {
		logger.ErrorLogger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.InfoLogger.Infof("Email sent to %s: %s", to, subject)
	return nil
}
