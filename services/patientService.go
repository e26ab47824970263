package services

import (
	"ClinicDesk/models"
	"ClinicDesk/utils"
	"context"
	"strings"
	"time"
)

type PatientService struct {
	store PatientStore
	now   func() time.Time
}

func NewPatientService(store PatientStore) *PatientService {
	return &PatientService{store: store, now: time.Now}
}

// Create validates and registers a patient.
func (s *PatientService) Create(ctx context.Context, patient *models.Patient) error {
	utils.NormalizePatient(patient)
	if err := utils.ValidatePatient(patient); err != nil {
		return err
	}
	patient.ID = ""
	if err := s.store.Create(ctx, patient); err != nil {
		return err
	}
	s.withAge(patient)
	return nil
}

func (s *PatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	patient, err := s.store.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	s.withAge(patient)
	return patient, nil
}

func (s *PatientService) GetByUHID(ctx context.Context, uhid string) (*models.Patient, error) {
	patient, err := s.store.GetByUHID(ctx, strings.TrimSpace(uhid))
	if err != nil {
		return nil, err
	}
	s.withAge(patient)
	return patient, nil
}

// List returns all patients, or those whose name, email or UHID contains
// search (case-insensitive).
func (s *PatientService) List(ctx context.Context, search string) ([]models.Patient, error) {
	patients, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(search))

	matched := make([]models.Patient, 0, len(patients))
	for _, p := range patients {
		if term != "" && !containsFold(term, p.PatientName, p.Email, p.UHID) {
			continue
		}
		s.withAge(&p)
		matched = append(matched, p)
	}
	return matched, nil
}

// Update replaces the editable fields of patient id. The UHID cannot change:
// a submitted UHID that differs from the stored one is rejected.
func (s *PatientService) Update(ctx context.Context, id string, patient *models.Patient) (*models.Patient, error) {
	existing, err := s.store.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}

	utils.NormalizePatient(patient)
	if patient.UHID == "" {
		patient.UHID = existing.UHID
	}
	if patient.UHID != existing.UHID {
		return nil, utils.NewValidationError("uhid cannot be changed")
	}
	if err := utils.ValidatePatient(patient); err != nil {
		return nil, err
	}

	patient.ID = existing.ID
	patient.CreatedAt = existing.CreatedAt
	if err := s.store.Update(ctx, patient); err != nil {
		return nil, err
	}
	s.withAge(patient)
	return patient, nil
}

func (s *PatientService) withAge(p *models.Patient) {
	p.Age = nil
	if age, ok := utils.CalculateAge(p.DateOfBirth, s.now()); ok {
		p.Age = &age
	}
}
