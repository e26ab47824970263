package services

import (
	"ClinicDesk/logger"
	"ClinicDesk/models"
	"ClinicDesk/utils"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func publicBooking() utils.BookingInput {
	return utils.BookingInput{
		UserData: &models.BookingPatient{Name: "Asha Rao", Email: "asha@example.com"},
		DocData:  &models.BookingDoctor{Name: "Dr. Mehta", Speciality: "Cardiology"},
		SlotDate: "2024-05-10",
	}
}

func TestAppointmentService_Book(t *testing.T) {
	store := new(MockAppointmentStore)
	sender := &recordingSender{}
	svc := NewAppointmentService(store, sender, "City Clinic", logger.Discard())
	store.On("Create", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil)

	appointment, err := svc.Book(context.Background(), publicBooking())
	require.NoError(t, err)
	svc.Wait()

	assert.Equal(t, "09:00", appointment.SlotTime)
	assert.Nil(t, appointment.UserID)
	assert.Nil(t, appointment.DocID)
	store.AssertExpectations(t)

	sent := sender.emails()
	require.Len(t, sent, 1)
	assert.Equal(t, "asha@example.com", sent[0].To)
}

func TestAppointmentService_Book_MissingSpeciality(t *testing.T) {
	store := new(MockAppointmentStore)
	sender := &recordingSender{}
	svc := NewAppointmentService(store, sender, "City Clinic", logger.Discard())

	input := publicBooking()
	input.DocData.Speciality = ""

	appointment, err := svc.Book(context.Background(), input)
	svc.Wait()
	assert.Nil(t, appointment)
	assert.True(t, utils.IsValidationError(err))
	assert.Equal(t, utils.MissingBookingFieldsMessage, err.Error())
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, sender.emails())
}

func TestAppointmentService_Book_PersistenceFailureIsNotValidation(t *testing.T) {
	store := new(MockAppointmentStore)
	svc := NewAppointmentService(store, nil, "City Clinic", logger.Discard())
	store.On("Create", mock.Anything, mock.Anything).
		Return(utils.NewPersistenceError(errors.New("timeout"), "failed to create appointment"))

	_, err := svc.Book(context.Background(), publicBooking())
	assert.True(t, utils.IsPersistenceError(err))
	assert.False(t, utils.IsValidationError(err))
}

func TestAppointmentService_Book_MailFailureDoesNotFailBooking(t *testing.T) {
	store := new(MockAppointmentStore)
	sender := &recordingSender{err: errors.New("smtp down")}
	svc := NewAppointmentService(store, sender, "City Clinic", logger.Discard())
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	appointment, err := svc.Book(context.Background(), publicBooking())
	svc.Wait()
	require.NoError(t, err)
	assert.NotEmpty(t, appointment.ID)
	assert.Len(t, sender.emails(), 1)
}

func TestAppointmentService_GetAndList(t *testing.T) {
	store := new(MockAppointmentStore)
	svc := NewAppointmentService(store, nil, "City Clinic", logger.Discard())
	store.On("GetByID", mock.Anything, "a-1").Return(&models.Appointment{ID: "a-1"}, nil)
	store.On("GetByID", mock.Anything, "a-2").Return(nil, utils.NewNotFoundError("appointment", "a-2"))
	store.On("GetAll", mock.Anything).Return([]models.Appointment{{ID: "a-1"}}, nil)

	appointment, err := svc.Get(context.Background(), " a-1 ")
	require.NoError(t, err)
	assert.Equal(t, "a-1", appointment.ID)

	_, err = svc.Get(context.Background(), "a-2")
	assert.True(t, utils.IsNotFoundError(err))

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
