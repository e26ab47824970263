package services

import (
	"ClinicDesk/models"
	"ClinicDesk/utils"
	"context"
)

// InvoiceStore persists invoices. Create assigns the invoice number.
type InvoiceStore interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*models.Invoice, error)
	GetAll(ctx context.Context) ([]models.Invoice, error)
}

type PatientStore interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetByUHID(ctx context.Context, uhid string) (*models.Patient, error)
	GetAll(ctx context.Context) ([]models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
}

type AppointmentStore interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)
}

type DoctorStore interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetAll(ctx context.Context) ([]models.Doctor, error)
}

// EmailSender delivers composed emails. *utils.Mailer implements it.
type EmailSender interface {
	Send(email utils.Email) error
}
