package utils

import (
	"ClinicDesk/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPatient() *models.Patient {
	return &models.Patient{
		UHID:             " UH-1001 ",
		PatientName:      "Meera Iyer",
		DateOfBirth:      "1990-08-20",
		Gender:           "Female",
		Address:          "12 Lake Road, Chennai",
		Email:            "meera@example.com",
		InsuranceStatus:  "Insured",
		OrganDonorStatus: "Yes",
	}
}

func TestValidatePatient(t *testing.T) {
	p := validPatient()
	NormalizePatient(p)
	require.NoError(t, ValidatePatient(p))
	assert.Equal(t, "UH-1001", p.UHID)

	tests := []struct {
		name   string
		mutate func(*models.Patient)
		field  string
	}{
		{"missing uhid", func(p *models.Patient) { p.UHID = "" }, "uhid"},
		{"missing name", func(p *models.Patient) { p.PatientName = "" }, "patientName"},
		{"bad birth date", func(p *models.Patient) { p.DateOfBirth = "20-08-1990" }, "dateOfBirth"},
		{"unknown gender", func(p *models.Patient) { p.Gender = "Unknown" }, "gender"},
		{"missing address", func(p *models.Patient) { p.Address = "" }, "address"},
		{"bad email", func(p *models.Patient) { p.Email = "meera" }, "email"},
		{"bad insurance status", func(p *models.Patient) { p.InsuranceStatus = "Maybe" }, "insuranceStatus"},
		{"bad organ donor value", func(p *models.Patient) { p.OrganDonorStatus = "Undecided" }, "organDonorStatus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPatient()
			tt.mutate(p)
			NormalizePatient(p)

			err := ValidatePatient(p)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestValidatePatient_OptionalEnumsMayBeEmpty(t *testing.T) {
	p := validPatient()
	p.InsuranceStatus = ""
	p.OrganDonorStatus = ""
	p.Email = ""
	assert.NoError(t, ValidatePatient(p))
}

func TestCalculateAge(t *testing.T) {
	now := time.Date(2024, time.August, 19, 0, 0, 0, 0, time.UTC)

	age, ok := CalculateAge("1990-08-20", now)
	assert.True(t, ok)
	assert.Equal(t, 33, age)

	age, ok = CalculateAge("1990-08-19", now)
	assert.True(t, ok)
	assert.Equal(t, 34, age)

	age, ok = CalculateAge("2024-08-19", now)
	assert.True(t, ok)
	assert.Equal(t, 0, age)

	_, ok = CalculateAge("2030-01-01", now)
	assert.False(t, ok)

	_, ok = CalculateAge("not a date", now)
	assert.False(t, ok)
}
