package utils

import (
	"ClinicDesk/config"
	"ClinicDesk/models"
	"bytes"
	"fmt"
	"html/template"
	"io"

	"gopkg.in/gomail.v2"
)

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	Name string
	Data []byte
}

// Email is a composed message ready to send.
type Email struct {
	To          string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// Mailer sends email through the configured SMTP server.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer creates a Mailer. It returns nil when SMTP is not configured.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	if !cfg.Enabled() {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers email.
func (m *Mailer) Send(email Email) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.Text)
	if email.HTML != "" {
		msg.AddAlternative("text/html", email.HTML)
	}
	for _, a := range email.Attachments {
		data := a.Data
		msg.Attach(a.Name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending email to %s: %w", email.To, err)
	}
	return nil
}

var bookingHTML = template.Must(template.New("booking").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<div style="background-color: #ffffff; margin: 20px auto; padding: 20px; border-radius: 8px; max-width: 600px;">
		<h1 style="color: #333333;">Appointment request received</h1>
		<p>Hello {{.Name}},</p>
		<p>Your {{.Speciality}} appointment{{if .Doctor}} with {{.Doctor}}{{end}} is booked for <strong>{{.SlotDate}} at {{.SlotTime}}</strong>.</p>
		<p>Our front desk will contact you if anything changes.</p>
		<p>{{.Clinic}}</p>
	</div>
</body>
</html>`))

// BookingConfirmationEmail composes the confirmation sent after a public booking.
func BookingConfirmationEmail(clinicName string, a *models.Appointment) (Email, error) {
	data := struct {
		Clinic, Name, Speciality, Doctor, SlotDate, SlotTime string
	}{
		Clinic:     clinicName,
		Name:       a.UserData.Name,
		Speciality: a.DocData.Speciality,
		Doctor:     a.DocData.Name,
		SlotDate:   a.SlotDate,
		SlotTime:   a.SlotTime,
	}

	var html bytes.Buffer
	if err := bookingHTML.Execute(&html, data); err != nil {
		return Email{}, fmt.Errorf("failed to render booking email: %w", err)
	}

	text := fmt.Sprintf("Hello %s,\n\nYour %s appointment is booked for %s at %s.\n\n%s\n",
		data.Name, data.Speciality, data.SlotDate, data.SlotTime, clinicName)
	return Email{
		To:      a.UserData.Email,
		Subject: fmt.Sprintf("%s: appointment on %s", clinicName, a.SlotDate),
		Text:    text,
		HTML:    html.String(),
	}, nil
}

var invoiceHTML = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<div style="background-color: #ffffff; margin: 20px auto; padding: 20px; border-radius: 8px; max-width: 600px;">
		<h1 style="color: #333333;">Invoice {{.InvoiceNo}}</h1>
		<p>Dear {{.Name}},</p>
		<p>Please find attached your invoice dated {{.Date}}. Balance due: <strong>{{.BalanceDue}}</strong>.</p>
		{{if .Link}}<p>You can also <a href="{{.Link}}">view the invoice online</a>.</p>{{end}}
		<p>{{.Clinic}}</p>
	</div>
</body>
</html>`))

// InvoiceEmail composes the message carrying an invoice PDF. link may be empty.
func InvoiceEmail(clinicName string, inv *models.Invoice, pdf []byte, link string) (Email, error) {
	data := struct {
		Clinic, InvoiceNo, Name, Date, BalanceDue, Link string
	}{
		Clinic:     clinicName,
		InvoiceNo:  inv.InvoiceNo,
		Name:       inv.PatientName,
		Date:       inv.Date,
		BalanceDue: FormatAmount(inv.BalanceDue),
		Link:       link,
	}

	var html bytes.Buffer
	if err := invoiceHTML.Execute(&html, data); err != nil {
		return Email{}, fmt.Errorf("failed to render invoice email: %w", err)
	}

	text := fmt.Sprintf("Dear %s,\n\nPlease find attached invoice %s dated %s. Balance due: %s.\n",
		data.Name, data.InvoiceNo, data.Date, data.BalanceDue)
	if link != "" {
		text += "View online: " + link + "\n"
	}
	text += "\n" + clinicName + "\n"

	return Email{
		To:          inv.Email,
		Subject:     fmt.Sprintf("%s: invoice %s", clinicName, inv.InvoiceNo),
		Text:        text,
		HTML:        html.String(),
		Attachments: []Attachment{{Name: inv.InvoiceNo + ".pdf", Data: pdf}},
	}, nil
}
