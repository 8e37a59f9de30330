package handlers

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/voicedeck/call-dashboard-api/config"
)

// DelegationEmail is a composed delegation message ready for dispatch
type DelegationEmail struct {
	Recipients []string
	Subject    string
	Body       string
	Priority   string
}

// Mailer dispatches composed delegation emails
type Mailer interface {
	Send(email DelegationEmail) error
}

// NewMailer returns a sendgrid-backed mailer when a key is configured,
// otherwise a dry-run mailer that only logs the composed message
func NewMailer(conf *config.Config) Mailer {
	if conf.SendGridKey == "" {
		zap.S().Info("SENDGRID_API_KEY not set, delegation emails will be logged only")
		return logMailer{}
	}
	from := conf.DelegateFrom
	if from == "" {
		from = "no-reply@call-dashboard.local"
	}
	return sendGridMailer{apiKey: conf.SendGridKey, from: from}
}

type sendGridMailer struct {
	apiKey string
	from   string
}

func (m sendGridMailer) Send(email DelegationEmail) error {
	msg := mail.NewV3Mail()
	msg.SetFrom(mail.NewEmail("Call Dashboard", m.from))
	msg.Subject = email.Subject

	p := mail.NewPersonalization()
	for _, recipient := range email.Recipients {
		p.AddTos(mail.NewEmail("", recipient))
	}
	msg.AddPersonalizations(p)
	msg.AddContent(mail.NewContent("text/plain", email.Body))
	if email.Priority != "" {
		msg.SetHeader("X-Priority", email.Priority)
	}

	client := sendgrid.NewSendClient(m.apiKey)
	resp, err := client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

type logMailer struct{}

func (logMailer) Send(email DelegationEmail) error {
	zap.S().Infow("delegation email composed (dry run)",
		"recipients", email.Recipients,
		"subject", email.Subject,
		"priority", email.Priority,
	)
	return nil
}
