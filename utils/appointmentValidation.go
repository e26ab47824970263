package utils

import (
	"ClinicDesk/models"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MissingBookingFieldsMessage is the single message returned for any incomplete booking.
const MissingBookingFieldsMessage = "Missing required fields for public booking."

// BookingInput is the body of a public booking request.
type BookingInput struct {
	UserData *models.BookingPatient `json:"userData"`
	DocData  *models.BookingDoctor  `json:"docData"`
	Amount   interface{}            `json:"amount"`
	SlotDate string                 `json:"slotDate"`
	SlotTime string                 `json:"slotTime"`
	Message  string                 `json:"message"`
}

// BuildAppointment validates a public booking and returns the appointment to
// store. No account lookup happens: the submitted name and speciality are kept
// as snapshots and UserID/DocID stay nil.
func BuildAppointment(input BookingInput) (*models.Appointment, error) {
	var user models.BookingPatient
	if input.UserData != nil {
		user = trimBookingPatient(*input.UserData)
	}
	var doc models.BookingDoctor
	if input.DocData != nil {
		doc = models.BookingDoctor{
			Name:       strings.TrimSpace(input.DocData.Name),
			Speciality: strings.TrimSpace(input.DocData.Speciality),
			Location:   strings.TrimSpace(input.DocData.Location),
		}
	}
	slotDate := strings.TrimSpace(input.SlotDate)

	err := validation.Errors{
		"userData":           validation.Validate(input.UserData, validation.NotNil),
		"userData.name":      validation.Validate(user.Name, validation.Required),
		"userData.email":     validation.Validate(user.Email, validation.Required),
		"slotDate":           validation.Validate(slotDate, validation.Required),
		"docData":            validation.Validate(input.DocData, validation.NotNil),
		"docData.speciality": validation.Validate(doc.Speciality, validation.Required),
	}.Filter()
	if err != nil {
		verr := ToValidationError(err)
		if v, ok := verr.(*ValidationError); ok {
			return nil, &ValidationError{Message: MissingBookingFieldsMessage, Fields: v.Fields}
		}
		return nil, verr
	}

	amount, err := coerceBookingAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	slotTime := strings.TrimSpace(input.SlotTime)
	if slotTime == "" {
		slotTime = models.DefaultSlotTime
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		message = user.Message
	}

	return &models.Appointment{
		ID:             uuid.New().String(),
		UserID:         nil,
		DocID:          nil,
		UserData:       user,
		DocData:        doc,
		Amount:         amount,
		SlotDate:       slotDate,
		SlotTime:       slotTime,
		Message:        message,
		Cancelled:      false,
		Payment:        false,
		IsCompleted:    false,
		PaymentDetails: nil,
	}, nil
}

// coerceBookingAmount reads the optional amount of a public booking. Absent,
// null, blank and false all mean no charge.
func coerceBookingAmount(value interface{}) (decimal.Decimal, error) {
	if b, ok := value.(bool); ok && !b {
		return decimal.Zero, nil
	}
	amount, err := CoerceAmount("amount", value)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, NewValidationError("amount must not be negative")
	}
	return amount.Round(2), nil
}

func trimBookingPatient(p models.BookingPatient) models.BookingPatient {
	return models.BookingPatient{
		Name:       strings.TrimSpace(p.Name),
		Email:      strings.TrimSpace(p.Email),
		Phone:      strings.TrimSpace(p.Phone),
		Location:   strings.TrimSpace(p.Location),
		Message:    strings.TrimSpace(p.Message),
		Speciality: strings.TrimSpace(p.Speciality),
		Date:       strings.TrimSpace(p.Date),
	}
}
