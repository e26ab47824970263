package repositories

import (
	"ClinicDesk/cache"
	"ClinicDesk/database"
	"ClinicDesk/logger"
	"ClinicDesk/models"
	"ClinicDesk/utils"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const patientsCacheKey = "patients_cache"

type PatientRepository struct {
	db     *gorm.DB
	cache  *cache.Cache
	locker *database.Locker
	log    *logrus.Entry
}

func NewPatientRepository(db *gorm.DB, cache *cache.Cache, locker *database.Locker, log *logger.Logger) *PatientRepository {
	return &PatientRepository{db: db, cache: cache, locker: locker, log: log.WithComponent("patient_repository")}
}

// Create registers a patient. A UHID that is already taken is a ValidationError.
func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	lockKey := fmt.Sprintf("patient_lock:%s", patient.UHID)
	release, err := r.locker.Acquire(ctx, lockKey)
	if err != nil {
		return utils.NewPersistenceError(err, "failed to lock patient registration")
	}
	defer releaseLock(ctx, r.log, lockKey, release)

	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}

	if err := r.db.WithContext(ctx).Omit("Invoices").Create(patient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.NewValidationError("uhid already exists")
		}
		return utils.NewPersistenceError(err, "failed to create patient")
	}

	logger.ForRequest(r.log, ctx).WithField("patient_id", patient.ID).Info("Patient registered")
	invalidate(ctx, r.cache, r.log, patientsCacheKey)
	return nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	var patient models.Patient
	err := readThrough(ctx, r.cache, r.log, r.getPatientCacheKey(id), &patient, func(ctx context.Context) error {
		return r.first(ctx, &patient, "id = ?", id)
	})
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// GetByUHID is not cached: the UHID lookup backs the front desk search box.
func (r *PatientRepository) GetByUHID(ctx context.Context, uhid string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.first(ctx, &patient, "uhid = ?", uhid); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepository) first(ctx context.Context, patient *models.Patient, query string, arg string) error {
	err := r.db.WithContext(ctx).First(patient, query, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NewNotFoundError("patient", arg)
	}
	if err != nil {
		return utils.NewPersistenceError(err, "failed to get patient")
	}
	return nil
}

// GetAll returns every patient ordered by name.
func (r *PatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	patients := []models.Patient{}
	err := readThrough(ctx, r.cache, r.log, patientsCacheKey, &patients, func(ctx context.Context) error {
		if err := r.db.WithContext(ctx).Order("patient_name ASC").Find(&patients).Error; err != nil {
			return utils.NewPersistenceError(err, "failed to get all patients")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// Update overwrites every editable column of the patient. The UHID and the
// creation time are never written.
func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	lockKey := fmt.Sprintf("patient_lock:%s", patient.UHID)
	release, err := r.locker.Acquire(ctx, lockKey)
	if err != nil {
		return utils.NewPersistenceError(err, "failed to lock patient record")
	}
	defer releaseLock(ctx, r.log, lockKey, release)

	result := r.db.WithContext(ctx).
		Model(&models.Patient{ID: patient.ID}).
		Select("*").
		Omit("id", "uhid", "created_at", "Invoices").
		Updates(patient)
	if result.Error != nil {
		return utils.NewPersistenceError(result.Error, "failed to update patient")
	}
	if result.RowsAffected == 0 {
		return utils.NewNotFoundError("patient", patient.ID)
	}

	invalidate(ctx, r.cache, r.log, r.getPatientCacheKey(patient.ID), patientsCacheKey)
	return nil
}

func (r *PatientRepository) getPatientCacheKey(id string) string {
	return fmt.Sprintf("patient_cache:%s", id)
}
