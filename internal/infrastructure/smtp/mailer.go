package smtp

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/barista-preorder/internal/config"
	gomail "gopkg.in/mail.v2"
)

// Mailer delivers verification codes out-of-band.
type Mailer interface {
	SendVerificationCode(name, email, code string) error
}

type mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

var codeTemplate = template.Must(template.New("verification_code").Parse(`
<div style="font-family: sans-serif; text-align: center; padding: 20px;">
  <h2>Hola {{.Name}},</h2>
  <p>Gracias por usar Barista Coffee Pre-order.</p>
  <p>Tu código de verificación es:</p>
  <p style="font-size: 24px; font-weight: bold; letter-spacing: 5px; background-color: #f0f0f0; padding: 10px 20px; border-radius: 8px; display: inline-block;">
    {{.Code}}
  </p>
  <p>Este código expirará en 10 minutos.</p>
  <hr/>
  <p style="font-size: 12px; color: #888;">Si no solicitaste este código, puedes ignorar este correo.</p>
</div>
`))

func (m *mailer) SendVerificationCode(name, email, code string) error {
	var body bytes.Buffer
	if err := codeTemplate.Execute(&body, struct{ Name, Code string }{name, code}); err != nil {
		return fmt.Errorf("render verification email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Tu código de verificación de Barista Coffee")
	msg.SetBody("text/html", body.String())

	return m.dialer.DialAndSend(msg)
}
