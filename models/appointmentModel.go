package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// DefaultSlotTime is used when a booking does not name a time.
const DefaultSlotTime = "09:00"

// BookingPatient is the requester as typed into the public booking form.
type BookingPatient struct {
	Name       string `gorm:"column:name;not null" json:"name"`
	Email      string `gorm:"column:email;not null;index" json:"email"`
	Phone      string `gorm:"column:phone" json:"phone"`
	Location   string `gorm:"column:location" json:"location"`
	Message    string `gorm:"column:message;type:text" json:"message"`
	Speciality string `gorm:"column:speciality" json:"speciality"`
	Date       string `gorm:"column:date" json:"date"`
}

// BookingDoctor is the doctor the requester picked, copied at booking time.
type BookingDoctor struct {
	Name       string `gorm:"column:name" json:"name"`
	Speciality string `gorm:"column:speciality;not null;index" json:"speciality"`
	Location   string `gorm:"column:location" json:"location"`
}

// Appointment model. Public bookings are not linked to accounts, so UserID and
// DocID stay nil and UserData/DocData carry snapshots instead.
type Appointment struct {
	ID             string          `gorm:"primaryKey;column:id" json:"id"`
	UserID         *string         `gorm:"column:user_id" json:"userId"`
	DocID          *string         `gorm:"column:doc_id" json:"docId"`
	UserData       BookingPatient  `gorm:"embedded;embeddedPrefix:user_" json:"userData"`
	DocData        BookingDoctor   `gorm:"embedded;embeddedPrefix:doc_" json:"docData"`
	Amount         decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null" json:"amount"`
	SlotDate       string          `gorm:"column:slot_date;not null;index" json:"slotDate"`
	SlotTime       string          `gorm:"column:slot_time;not null" json:"slotTime"`
	Message        string          `gorm:"column:message;type:text" json:"message"`
	Cancelled      bool            `gorm:"column:cancelled;not null" json:"cancelled"`
	Payment        bool            `gorm:"column:payment;not null" json:"payment"`
	IsCompleted    bool            `gorm:"column:is_completed;not null" json:"isCompleted"`
	PaymentDetails datatypes.JSON  `gorm:"column:payment_details;type:jsonb" json:"paymentDetails"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Appointment) TableName() string {
	return "appointment"
}
