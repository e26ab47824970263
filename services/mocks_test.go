package services

import (
	"ClinicDesk/models"
	"ClinicDesk/utils"
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
)

type MockInvoiceStore struct {
	mock.Mock
}

func (m *MockInvoiceStore) Create(ctx context.Context, invoice *models.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceStore) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*models.Invoice, error) {
	args := m.Called(ctx, invoiceNo)
	invoice, _ := args.Get(0).(*models.Invoice)
	return invoice, args.Error(1)
}

func (m *MockInvoiceStore) GetAll(ctx context.Context) ([]models.Invoice, error) {
	args := m.Called(ctx)
	invoices, _ := args.Get(0).([]models.Invoice)
	return invoices, args.Error(1)
}

type MockPatientStore struct {
	mock.Mock
}

func (m *MockPatientStore) Create(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientStore) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	args := m.Called(ctx, id)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientStore) GetByUHID(ctx context.Context, uhid string) (*models.Patient, error) {
	args := m.Called(ctx, uhid)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientStore) GetAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *MockPatientStore) Update(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

type MockAppointmentStore struct {
	mock.Mock
}

func (m *MockAppointmentStore) Create(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentStore) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentStore) GetAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

type MockDoctorStore struct {
	mock.Mock
}

func (m *MockDoctorStore) Create(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorStore) GetAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

// recordingSender keeps every email it is asked to send.
type recordingSender struct {
	mu   sync.Mutex
	sent []utils.Email
	err  error
}

func (r *recordingSender) Send(email utils.Email) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, email)
	return r.err
}

func (r *recordingSender) emails() []utils.Email {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]utils.Email(nil), r.sent...)
}
