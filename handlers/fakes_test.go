package handlers_test

import (
	"ClinicDesk/models"
	"ClinicDesk/repositories"
	"ClinicDesk/utils"
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// memInvoiceStore numbers invoices from an in-process counter, standing in
// for the database sequence.
type memInvoiceStore struct {
	mu       sync.Mutex
	seq      int64
	invoices []models.Invoice
}

func (s *memInvoiceStore) Create(_ context.Context, invoice *models.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	invoice.ID = uuid.New().String()
	invoice.InvoiceNo = repositories.FormatInvoiceNo(s.seq)
	s.invoices = append(s.invoices, *invoice)
	return nil
}

func (s *memInvoiceStore) GetByInvoiceNo(_ context.Context, invoiceNo string) (*models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.invoices {
		if inv.InvoiceNo == invoiceNo {
			found := inv
			return &found, nil
		}
	}
	return nil, utils.NewNotFoundError("invoice", invoiceNo)
}

func (s *memInvoiceStore) GetAll(_ context.Context) ([]models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]models.Invoice(nil), s.invoices...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].InvoiceNo > out[j].InvoiceNo })
	return out, nil
}

type memPatientStore struct {
	mu       sync.Mutex
	patients map[string]models.Patient
}

func newMemPatientStore(seed ...models.Patient) *memPatientStore {
	s := &memPatientStore{patients: map[string]models.Patient{}}
	for _, p := range seed {
		s.patients[p.ID] = p
	}
	return s
}

func (s *memPatientStore) Create(_ context.Context, patient *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.patients {
		if p.UHID == patient.UHID {
			return utils.NewValidationError("uhid already exists")
		}
	}
	patient.ID = uuid.New().String()
	s.patients[patient.ID] = *patient
	return nil
}

func (s *memPatientStore) GetByID(_ context.Context, id string) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.patients[id]
	if !ok {
		return nil, utils.NewNotFoundError("patient", id)
	}
	return &p, nil
}

func (s *memPatientStore) GetByUHID(_ context.Context, uhid string) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.patients {
		if p.UHID == uhid {
			found := p
			return &found, nil
		}
	}
	return nil, utils.NewNotFoundError("patient", uhid)
}

func (s *memPatientStore) GetAll(_ context.Context) ([]models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PatientName < out[j].PatientName })
	return out, nil
}

func (s *memPatientStore) Update(_ context.Context, patient *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.patients[patient.ID]; !ok {
		return utils.NewNotFoundError("patient", patient.ID)
	}
	s.patients[patient.ID] = *patient
	return nil
}

type memAppointmentStore struct {
	mu           sync.Mutex
	appointments []models.Appointment
	failWith     error
}

func (s *memAppointmentStore) Create(_ context.Context, appointment *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.appointments = append(s.appointments, *appointment)
	return nil
}

func (s *memAppointmentStore) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.appointments {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, utils.NewNotFoundError("appointment", id)
}

func (s *memAppointmentStore) GetAll(_ context.Context) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Appointment(nil), s.appointments...), nil
}

func (s *memAppointmentStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.appointments)
}

type memDoctorStore struct {
	mu      sync.Mutex
	doctors []models.Doctor
}

func (s *memDoctorStore) Create(_ context.Context, doctor *models.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doctor.ID = uuid.New().String()
	s.doctors = append(s.doctors, *doctor)
	return nil
}

func (s *memDoctorStore) GetAll(_ context.Context) ([]models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Doctor(nil), s.doctors...), nil
}
