package repositories

import (
	"ClinicDesk/cache"
	"ClinicDesk/logger"
	"ClinicDesk/models"
	"ClinicDesk/utils"
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const appointmentsCacheKey = "appointments_cache"

type AppointmentRepository struct {
	db    *gorm.DB
	cache *cache.Cache
	log   *logrus.Entry
}

func NewAppointmentRepository(db *gorm.DB, cache *cache.Cache, log *logger.Logger) *AppointmentRepository {
	return &AppointmentRepository{db: db, cache: cache, log: log.WithComponent("appointment_repository")}
}

// Create stores a booking. Bookings are independent of each other so no lock is taken.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return utils.NewPersistenceError(err, "failed to create appointment")
	}

	logger.ForRequest(r.log, ctx).WithFields(logrus.Fields{
		"appointment_id": appointment.ID,
		"slot_date":      appointment.SlotDate,
	}).Info("Appointment booked")

	invalidate(ctx, r.cache, r.log, appointmentsCacheKey)
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := readThrough(ctx, r.cache, r.log, r.getAppointmentCacheKey(id), &appointment, func(ctx context.Context) error {
		err := r.db.WithContext(ctx).First(&appointment, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("appointment", id)
		}
		if err != nil {
			return utils.NewPersistenceError(err, "failed to get appointment")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// GetAll returns every appointment, newest first.
func (r *AppointmentRepository) GetAll(ctx context.Context) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	err := readThrough(ctx, r.cache, r.log, appointmentsCacheKey, &appointments, func(ctx context.Context) error {
		if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&appointments).Error; err != nil {
			return utils.NewPersistenceError(err, "failed to get all appointments")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentRepository) getAppointmentCacheKey(id string) string {
	return fmt.Sprintf("appointment_cache:%s", id)
}
