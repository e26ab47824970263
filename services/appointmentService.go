package services

import (
	"ClinicDesk/logger"
	"ClinicDesk/models"
	"ClinicDesk/utils"
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

type AppointmentService struct {
	store      AppointmentStore
	mailer     EmailSender
	clinicName string
	log        *logrus.Entry
	wg         sync.WaitGroup
}

// NewAppointmentService creates an AppointmentService. When mailer is nil no
// confirmation emails are sent.
func NewAppointmentService(store AppointmentStore, mailer EmailSender, clinicName string, log *logger.Logger) *AppointmentService {
	return &AppointmentService{
		store:      store,
		mailer:     mailer,
		clinicName: clinicName,
		log:        log.WithComponent("appointment_service"),
	}
}

// Book validates a public booking and stores it. The confirmation email is
// sent in the background and its failure does not affect the booking.
func (s *AppointmentService) Book(ctx context.Context, input utils.BookingInput) (*models.Appointment, error) {
	appointment, err := utils.BuildAppointment(input)
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, appointment); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		entry := logger.ForRequest(s.log, ctx).WithField("appointment_id", appointment.ID)
		booked := *appointment
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.sendConfirmation(entry, &booked)
		}()
	}
	return appointment, nil
}

func (s *AppointmentService) sendConfirmation(entry *logrus.Entry, appointment *models.Appointment) {
	email, err := utils.BookingConfirmationEmail(s.clinicName, appointment)
	if err != nil {
		entry.WithError(err).Error("Failed to compose booking confirmation")
		return
	}
	if err := s.mailer.Send(email); err != nil {
		entry.WithError(err).Warn("Failed to send booking confirmation")
		return
	}
	entry.Info("Booking confirmation sent")
}

// Wait blocks until every pending confirmation email has been handled.
func (s *AppointmentService) Wait() {
	s.wg.Wait()
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	return s.store.GetByID(ctx, strings.TrimSpace(id))
}

func (s *AppointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	return s.store.GetAll(ctx)
}
