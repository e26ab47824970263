package services

import (
	"ClinicDesk/models"
	"ClinicDesk/utils"
	"context"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DoctorFilter narrows and orders the public doctor directory.
type DoctorFilter struct {
	Search     string `form:"search" json:"search"`
	Speciality string `form:"speciality" json:"speciality"`
	SortBy     string `form:"sortBy" json:"sortBy"`
	Order      string `form:"order" json:"order"`
}

// Validate checks the sort options.
func (f DoctorFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.SortBy, validation.In("name", "experience")),
		validation.Field(&f.Order, validation.In("asc", "desc")),
	)
}

type DoctorService struct {
	store DoctorStore
}

func NewDoctorService(store DoctorStore) *DoctorService {
	return &DoctorService{store: store}
}

// Create validates and stores a doctor profile.
func (s *DoctorService) Create(ctx context.Context, doctor *models.Doctor) error {
	doctor.Name = strings.TrimSpace(doctor.Name)
	doctor.Speciality = strings.TrimSpace(doctor.Speciality)
	err := validation.ValidateStruct(doctor,
		validation.Field(&doctor.Name, validation.Required),
		validation.Field(&doctor.Speciality, validation.Required),
		validation.Field(&doctor.Experience, validation.Min(0)),
	)
	if err != nil {
		return utils.ToValidationError(err)
	}
	doctor.ID = ""
	return s.store.Create(ctx, doctor)
}

// List returns the doctors matching filter: Search is a substring of the name
// or speciality, Speciality an exact match. Results are ordered by SortBy.
func (s *DoctorService) List(ctx context.Context, filter DoctorFilter) ([]models.Doctor, error) {
	filter.Search = strings.ToLower(strings.TrimSpace(filter.Search))
	filter.Speciality = strings.TrimSpace(filter.Speciality)
	filter.SortBy = strings.ToLower(strings.TrimSpace(filter.SortBy))
	filter.Order = strings.ToLower(strings.TrimSpace(filter.Order))
	if err := filter.Validate(); err != nil {
		return nil, utils.ToValidationError(err)
	}

	doctors, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if filter.Search != "" && !containsFold(filter.Search, d.Name, d.Speciality) {
			continue
		}
		if filter.Speciality != "" && !strings.EqualFold(d.Speciality, filter.Speciality) {
			continue
		}
		matched = append(matched, d)
	}

	desc := filter.Order == "desc"
	switch filter.SortBy {
	case "name":
		sort.SliceStable(matched, func(i, j int) bool {
			a, b := strings.ToLower(matched[i].Name), strings.ToLower(matched[j].Name)
			if desc {
				return a > b
			}
			return a < b
		})
	case "experience":
		sort.SliceStable(matched, func(i, j int) bool {
			if desc {
				return matched[i].Experience > matched[j].Experience
			}
			return matched[i].Experience < matched[j].Experience
		})
	}
	return matched, nil
}

// Specialities returns the distinct specialities in alphabetical order.
func (s *DoctorService) Specialities(ctx context.Context) ([]string, error) {
	doctors, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(doctors))
	specialities := []string{}
	for _, d := range doctors {
		if _, ok := seen[d.Speciality]; ok || d.Speciality == "" {
			continue
		}
		seen[d.Speciality] = struct{}{}
		specialities = append(specialities, d.Speciality)
	}
	sort.Strings(specialities)
	return specialities, nil
}
