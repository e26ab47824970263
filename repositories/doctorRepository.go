package repositories

import (
	"ClinicDesk/cache"
	"ClinicDesk/logger"
	"ClinicDesk/models"
	"ClinicDesk/utils"
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const doctorsCacheKey = "doctors_cache"

type DoctorRepository struct {
	db    *gorm.DB
	cache *cache.Cache
	log   *logrus.Entry
}

func NewDoctorRepository(db *gorm.DB, cache *cache.Cache, log *logger.Logger) *DoctorRepository {
	return &DoctorRepository{db: db, cache: cache, log: log.WithComponent("doctor_repository")}
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		return utils.NewPersistenceError(err, "failed to create doctor")
	}
	invalidate(ctx, r.cache, r.log, doctorsCacheKey)
	return nil
}

func (r *DoctorRepository) GetAll(ctx context.Context) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	err := readThrough(ctx, r.cache, r.log, doctorsCacheKey, &doctors, func(ctx context.Context) error {
		if err := r.db.WithContext(ctx).Order("name ASC").Find(&doctors).Error; err != nil {
			return utils.NewPersistenceError(err, "failed to get all doctors")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doctors, nil
}
