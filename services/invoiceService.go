package services

import (
	"ClinicDesk/logger"
	"ClinicDesk/models"
	"ClinicDesk/utils"
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// InvoiceOptions carries the presentation settings of printed and mailed invoices.
type InvoiceOptions struct {
	ClinicName    string
	PublicBaseURL string
}

// ShareLink is a time-limited public URL for one invoice PDF.
type ShareLink struct {
	InvoiceNo string    `json:"invoiceNo"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type InvoiceService struct {
	invoices InvoiceStore
	patients PatientStore
	shares   *utils.ShareTokens
	mailer   EmailSender
	opts     InvoiceOptions
	now      func() time.Time
	log      *logrus.Entry
}

// NewInvoiceService creates an InvoiceService. mailer may be nil, in which
// case emailing an invoice fails with a ValidationError.
func NewInvoiceService(invoices InvoiceStore, patients PatientStore, shares *utils.ShareTokens, mailer EmailSender, opts InvoiceOptions, log *logger.Logger) *InvoiceService {
	return &InvoiceService{
		invoices: invoices,
		patients: patients,
		shares:   shares,
		mailer:   mailer,
		opts:     opts,
		now:      time.Now,
		log:      log.WithComponent("invoice_service"),
	}
}

// Create validates the submission, snapshots the patient's contact details
// where the form left them empty, and stores the invoice. Nothing is written
// unless the submission is valid and the patient exists.
func (s *InvoiceService) Create(ctx context.Context, input utils.InvoiceInput) (*models.Invoice, error) {
	invoice, err := utils.BuildInvoice(input, s.now())
	if err != nil {
		return nil, err
	}

	patient, err := s.patients.GetByID(ctx, invoice.PatientID)
	if err != nil {
		return nil, err
	}
	snapshotPatient(invoice, patient)

	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func snapshotPatient(invoice *models.Invoice, patient *models.Patient) {
	if invoice.PatientName == "" {
		invoice.PatientName = patient.PatientName
	}
	if invoice.Address == "" {
		invoice.Address = patient.Address
	}
	if invoice.Phone == "" {
		invoice.Phone = patient.Phone
	}
	if invoice.Email == "" {
		invoice.Email = patient.Email
	}
}

func (s *InvoiceService) Get(ctx context.Context, invoiceNo string) (*models.Invoice, error) {
	return s.invoices.GetByInvoiceNo(ctx, strings.TrimSpace(invoiceNo))
}

// List returns all invoices, or those whose patient name, invoice number or
// email contains search (case-insensitive).
func (s *InvoiceService) List(ctx context.Context, search string) ([]models.Invoice, error) {
	invoices, err := s.invoices.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return invoices, nil
	}

	matched := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if containsFold(term, inv.PatientName, inv.InvoiceNo, inv.Email) {
			matched = append(matched, inv)
		}
	}
	return matched, nil
}

// RenderPDF returns the invoice and its print-formatted PDF.
func (s *InvoiceService) RenderPDF(ctx context.Context, invoiceNo string) (*models.Invoice, []byte, error) {
	invoice, err := s.Get(ctx, invoiceNo)
	if err != nil {
		return nil, nil, err
	}
	pdf, err := utils.RenderInvoicePDF(s.opts.ClinicName, invoice)
	if err != nil {
		return nil, nil, err
	}
	return invoice, pdf, nil
}

// ShareLink issues a public link to the invoice PDF.
func (s *InvoiceService) ShareLink(ctx context.Context, invoiceNo string) (*ShareLink, error) {
	invoice, err := s.Get(ctx, invoiceNo)
	if err != nil {
		return nil, err
	}
	token, expiresAt, err := s.shares.Generate(invoice.InvoiceNo)
	if err != nil {
		return nil, err
	}
	return &ShareLink{
		InvoiceNo: invoice.InvoiceNo,
		URL: strings.TrimRight(s.opts.PublicBaseURL, "/") + "/api/public/invoices/" +
			url.PathEscape(invoice.InvoiceNo) + "/pdf?token=" + url.QueryEscape(token),
		ExpiresAt: expiresAt,
	}, nil
}

// OpenShared renders the PDF for a share link. An invalid or expired token
// reports the invoice as not found.
func (s *InvoiceService) OpenShared(ctx context.Context, invoiceNo, token string) (*models.Invoice, []byte, error) {
	if err := s.shares.Validate(token, invoiceNo); err != nil {
		logger.ForRequest(s.log, ctx).WithError(err).WithField("invoice_no", invoiceNo).Warn("Rejected invoice share token")
		return nil, nil, utils.NewNotFoundError("invoice", invoiceNo)
	}
	return s.RenderPDF(ctx, invoiceNo)
}

// Email sends the invoice PDF and a share link to the invoice's email address.
func (s *InvoiceService) Email(ctx context.Context, invoiceNo string) (*models.Invoice, error) {
	if s.mailer == nil {
		return nil, utils.NewValidationError("email delivery is not configured")
	}

	invoice, pdf, err := s.RenderPDF(ctx, invoiceNo)
	if err != nil {
		return nil, err
	}
	if invoice.Email == "" {
		return nil, utils.NewValidationError("invoice %s has no email address", invoice.InvoiceNo)
	}

	link, err := s.ShareLink(ctx, invoice.InvoiceNo)
	if err != nil {
		return nil, err
	}

	email, err := utils.InvoiceEmail(s.opts.ClinicName, invoice, pdf, link.URL)
	if err != nil {
		return nil, err
	}
	if err := s.mailer.Send(email); err != nil {
		return nil, err
	}

	logger.ForRequest(s.log, ctx).WithField("invoice_no", invoice.InvoiceNo).Info("Invoice emailed")
	return invoice, nil
}

// containsFold reports whether any of values contains the lower-cased term.
func containsFold(term string, values ...string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}
