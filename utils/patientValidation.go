package utils

import (
	"ClinicDesk/models"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// NormalizePatient trims the free-text fields a registration form submits.
func NormalizePatient(p *models.Patient) {
	p.UHID = strings.TrimSpace(p.UHID)
	p.AlternateUHID = strings.TrimSpace(p.AlternateUHID)
	p.PatientName = strings.TrimSpace(p.PatientName)
	p.DateOfBirth = strings.TrimSpace(p.DateOfBirth)
	p.Gender = strings.TrimSpace(p.Gender)
	p.Address = strings.TrimSpace(p.Address)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.TrimSpace(p.Email)
	p.Occupation = strings.TrimSpace(p.Occupation)
	p.InsuranceStatus = strings.TrimSpace(p.InsuranceStatus)
	p.OrganDonorStatus = strings.TrimSpace(p.OrganDonorStatus)
}

// ValidatePatient validates patient data using ozzo-validation.
func ValidatePatient(p *models.Patient) error {
	err := validation.ValidateStruct(p,
		validation.Field(&p.UHID, validation.Required, validation.Length(1, 64)),
		validation.Field(&p.PatientName, validation.Required, validation.Length(1, 200)),
		validation.Field(&p.DateOfBirth, validation.Required, validation.Date(DateLayout).Error("must be YYYY-MM-DD")),
		validation.Field(&p.Gender, validation.Required, validation.In(toInterfaces(models.Genders)...)),
		validation.Field(&p.Address, validation.Required),
		validation.Field(&p.Email, is.Email),
		validation.Field(&p.InsuranceStatus, validation.In(toInterfaces(models.InsuranceStatuses)...)),
		validation.Field(&p.OrganDonorStatus, validation.In(toInterfaces(models.OrganDonorValues)...)),
	)
	return ToValidationError(err)
}

// CalculateAge returns the age in whole years on now. ok is false when the
// date of birth cannot be parsed or lies in the future.
func CalculateAge(dateOfBirth string, now time.Time) (age int, ok bool) {
	dob, err := time.Parse(DateLayout, strings.TrimSpace(dateOfBirth))
	if err != nil {
		return 0, false
	}
	age = now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0, false
	}
	return age, true
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
