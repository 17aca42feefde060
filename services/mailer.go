package services

import (
	"bytes"
	"html/template"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/vedanta-tech/team-site-backend/config"
	"github.com/vedanta-tech/team-site-backend/errs"
)

// ContactPayload is the contact-form relay input
type ContactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ApplicationPayload is the join-form relay input
type ApplicationPayload struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	College       string `json:"college"`
	Branch        string `json:"branch"`
	Year          string `json:"year"`
	PreferredRole string `json:"preferredRole"`
	Experience    string `json:"experience"`
	Motivation    string `json:"motivation"`
}

var contactAdminTmpl = template.Must(template.New("contactAdmin").Parse(`
<h2>New contact message</h2>
<p><strong>From:</strong> {{.Name}} ({{.Email}})</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p>{{.Message}}</p>
`))

var contactAckTmpl = template.Must(template.New("contactAck").Parse(`
<h2>We got your message</h2>
<p>Hi {{.Name}},</p>
<p>Thanks for reaching out. We read every message and will get back to you
at this address as soon as we can.</p>
<p>&mdash; The team</p>
`))

var applicationAdminTmpl = template.Must(template.New("applicationAdmin").Parse(`
<h2>New team application</h2>
<p><strong>Name:</strong> {{.FullName}} ({{.Email}}, {{.Phone}})</p>
<p><strong>College:</strong> {{.College}}, {{.Branch}}, year {{.Year}}</p>
<p><strong>Preferred role:</strong> {{.PreferredRole}}</p>
{{if .Experience}}<p><strong>Experience:</strong> {{.Experience}}</p>{{end}}
<p><strong>Motivation:</strong> {{.Motivation}}</p>
`))

var applicationAckTmpl = template.Must(template.New("applicationAck").Parse(`
<h2>Application received</h2>
<p>Hi {{.FullName}},</p>
<p>Thanks for applying to join the team. We review applications on a
rolling basis and will reach out to you about next steps.</p>
<p>&mdash; The team</p>
`))

// Mailer formats and dispatches the transactional emails behind the
// contact and application forms. Each submission produces two independent
// sends, one to the admins and one auto-acknowledgement to the submitter;
// a partial send is possible and is not rolled back.
type Mailer struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
	logger     zerolog.Logger
}

// NewMailer reads the SMTP credential from config:
// SMTP_HOST, SMTP_PORT, SMTP_USERNAME, SMTP_PASSWORD, SMTP_FROM, ADMIN_EMAIL.
func NewMailer(c map[string]string) *Mailer {
	host := config.GetString(c, "SMTP_HOST", "")
	port := config.GetInt(c, "SMTP_PORT", 587)
	username := config.GetString(c, "SMTP_USERNAME", "")
	password := config.GetString(c, "SMTP_PASSWORD", "")
	from := config.GetString(c, "SMTP_FROM", username)

	return &Mailer{
		dialer:     gomail.NewDialer(host, port, username, password),
		from:       from,
		adminEmail: config.GetString(c, "ADMIN_EMAIL", ""),
		logger:     log.With().Str("serviceName", "mailer").Logger(),
	}
}

func (m *Mailer) SendContact(p ContactPayload) error {
	switch {
	case p.Name == "":
		return errs.NewMissingFieldError("name")
	case p.Email == "":
		return errs.NewMissingFieldError("email")
	case p.Subject == "":
		return errs.NewMissingFieldError("subject")
	case p.Message == "":
		return errs.NewMissingFieldError("message")
	}
	if !ValidateEmail(p.Email) {
		return errs.NewValidationError("email", "not a valid email address")
	}

	adminErr := m.send(m.adminEmail, "Contact form: "+p.Subject, contactAdminTmpl, p)
	ackErr := m.send(p.Email, "We received your message", contactAckTmpl, p)
	if adminErr != nil {
		return adminErr
	}
	return ackErr
}

func (m *Mailer) SendApplication(p ApplicationPayload) error {
	switch {
	case p.FullName == "":
		return errs.NewMissingFieldError("fullName")
	case p.Email == "":
		return errs.NewMissingFieldError("email")
	case p.Phone == "":
		return errs.NewMissingFieldError("phone")
	case p.College == "":
		return errs.NewMissingFieldError("college")
	case p.Branch == "":
		return errs.NewMissingFieldError("branch")
	case p.Year == "":
		return errs.NewMissingFieldError("year")
	case p.PreferredRole == "":
		return errs.NewMissingFieldError("preferredRole")
	case p.Motivation == "":
		return errs.NewMissingFieldError("motivation")
	}
	if !ValidateEmail(p.Email) {
		return errs.NewValidationError("email", "not a valid email address")
	}

	adminErr := m.send(m.adminEmail, "New application: "+p.FullName, applicationAdminTmpl, p)
	ackErr := m.send(p.Email, "We received your application", applicationAckTmpl, p)
	if adminErr != nil {
		return adminErr
	}
	return ackErr
}

func (m *Mailer) send(to, subject string, tmpl *template.Template, data any) error {
	if to == "" {
		return errs.NewEmailError("dispatch", errs.NewInternalError("no recipient configured"))
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return errs.NewEmailError("template", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error().Err(err).Str("to", to).Msg("failed to send email")
		return errs.NewEmailError("dispatch", err)
	}
	m.logger.Info().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}
