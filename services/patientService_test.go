package services

import (
	"ClinicDesk/models"
	"ClinicDesk/utils"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPatientService() (*PatientService, *MockPatientStore) {
	store := new(MockPatientStore)
	svc := NewPatientService(store)
	svc.now = func() time.Time { return time.Date(2024, time.August, 19, 0, 0, 0, 0, time.UTC) }
	return svc, store
}

func newPatientForm() *models.Patient {
	return &models.Patient{
		UHID:        "UH-1001",
		PatientName: "Meera Iyer",
		DateOfBirth: "1990-08-20",
		Gender:      "Female",
		Address:     "12 Lake Road",
		Email:       "meera@example.com",
	}
}

func TestPatientService_Create(t *testing.T) {
	svc, store := newTestPatientService()
	store.On("Create", mock.Anything, mock.AnythingOfType("*models.Patient")).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Patient).ID = "p-1" }).
		Return(nil)

	patient := newPatientForm()
	patient.ID = "client-chosen"
	require.NoError(t, svc.Create(context.Background(), patient))

	assert.Equal(t, "p-1", patient.ID)
	require.NotNil(t, patient.Age)
	assert.Equal(t, 33, *patient.Age)
}

func TestPatientService_Create_Invalid(t *testing.T) {
	svc, store := newTestPatientService()

	patient := newPatientForm()
	patient.Gender = "Unknown"
	err := svc.Create(context.Background(), patient)
	assert.True(t, utils.IsValidationError(err))
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPatientService_Create_DuplicateUHID(t *testing.T) {
	svc, store := newTestPatientService()
	store.On("Create", mock.Anything, mock.Anything).Return(utils.NewValidationError("uhid already exists"))

	err := svc.Create(context.Background(), newPatientForm())
	require.Error(t, err)
	assert.True(t, utils.IsValidationError(err))
	assert.Equal(t, "uhid already exists", err.Error())
}

func TestPatientService_Update_UHIDIsImmutable(t *testing.T) {
	svc, store := newTestPatientService()
	existing := newPatientForm()
	existing.ID = "p-1"
	store.On("GetByID", mock.Anything, "p-1").Return(existing, nil)

	changed := newPatientForm()
	changed.UHID = "UH-2002"
	_, err := svc.Update(context.Background(), "p-1", changed)
	assert.True(t, utils.IsValidationError(err))
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPatientService_Update(t *testing.T) {
	svc, store := newTestPatientService()
	created := time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC)
	existing := newPatientForm()
	existing.ID = "p-1"
	existing.CreatedAt = created
	store.On("GetByID", mock.Anything, "p-1").Return(existing, nil)
	store.On("Update", mock.Anything, mock.AnythingOfType("*models.Patient")).Return(nil)

	form := newPatientForm()
	form.UHID = ""
	form.Address = "44 Hill Street"
	updated, err := svc.Update(context.Background(), "p-1", form)
	require.NoError(t, err)

	assert.Equal(t, "p-1", updated.ID)
	assert.Equal(t, "UH-1001", updated.UHID)
	assert.Equal(t, "44 Hill Street", updated.Address)
	assert.Equal(t, created, updated.CreatedAt)
	store.AssertExpectations(t)
}

func TestPatientService_Update_Missing(t *testing.T) {
	svc, store := newTestPatientService()
	store.On("GetByID", mock.Anything, "nope").Return(nil, utils.NewNotFoundError("patient", "nope"))

	_, err := svc.Update(context.Background(), "nope", newPatientForm())
	assert.True(t, utils.IsNotFoundError(err))
}

func TestPatientService_List(t *testing.T) {
	svc, store := newTestPatientService()
	store.On("GetAll", mock.Anything).Return([]models.Patient{
		{ID: "p-1", UHID: "UH-1001", PatientName: "Meera Iyer", Email: "meera@example.com", DateOfBirth: "1990-08-20"},
		{ID: "p-2", UHID: "UH-1002", PatientName: "Ravi Kumar", Email: "ravi@example.com", DateOfBirth: "bad"},
	}, nil)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.NotNil(t, all[0].Age)
	assert.Equal(t, 33, *all[0].Age)
	assert.Nil(t, all[1].Age)

	matched, err := svc.List(context.Background(), "uh-1002")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "p-2", matched[0].ID)
}

func TestPatientService_GetByUHID(t *testing.T) {
	svc, store := newTestPatientService()
	store.On("GetByUHID", mock.Anything, "UH-1001").Return(&models.Patient{ID: "p-1", UHID: "UH-1001", DateOfBirth: "2000-01-01"}, nil)

	patient, err := svc.GetByUHID(context.Background(), " UH-1001 ")
	require.NoError(t, err)
	require.NotNil(t, patient.Age)
	assert.Equal(t, 24, *patient.Age)
}
