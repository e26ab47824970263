package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts leave the API as JSON numbers, the way the billing screens read them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Invoice model. Contact fields are a snapshot of the patient at bill time.
// Subtotal and BalanceDue are cached totals derived from LineItems and the adjustments.
type Invoice struct {
	ID          string          `gorm:"primaryKey;column:id" json:"id"`
	InvoiceNo   string          `gorm:"column:invoice_no;not null;uniqueIndex" json:"invoiceNo"`
	PatientID   string          `gorm:"column:patient_id;not null;index" json:"patientId"`
	PatientName string          `gorm:"column:patient_name;not null;index" json:"patientName"`
	Address     string          `gorm:"column:address" json:"address"`
	Phone       string          `gorm:"column:phone" json:"phone"`
	Email       string          `gorm:"column:email;index" json:"email"`
	Date        string          `gorm:"column:date;not null" json:"date"`
	LineItems   []LineItem      `gorm:"foreignKey:InvoiceID;references:ID;constraint:OnDelete:CASCADE" json:"lineItems"`
	Discount    decimal.Decimal `gorm:"column:discount;type:numeric(12,2);not null" json:"discount"`
	Tax         decimal.Decimal `gorm:"column:tax;type:numeric(12,2);not null" json:"tax"`
	Shipping    decimal.Decimal `gorm:"column:shipping;type:numeric(12,2);not null" json:"shipping"`
	Subtotal    decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2);not null" json:"subtotal"`
	BalanceDue  decimal.Decimal `gorm:"column:balance_due;type:numeric(12,2);not null" json:"balanceDue"`
	Remarks     string          `gorm:"column:remarks;type:text" json:"remarks"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	Patient     Patient         `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Invoice) TableName() string {
	return "invoice"
}

// LineItem model. Position keeps the order in which the items were billed.
type LineItem struct {
	ID          uint            `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	InvoiceID   string          `gorm:"column:invoice_id;not null;index" json:"-"`
	Position    int             `gorm:"column:position;not null" json:"-"`
	Description string          `gorm:"column:description;not null" json:"description"`
	Quantity    int             `gorm:"column:quantity;not null;check:quantity >= 1" json:"qty"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null" json:"unitPrice"`
	LineTotal   decimal.Decimal `gorm:"column:line_total;type:numeric(12,2);not null" json:"lineTotal"`
}

func (LineItem) TableName() string {
	return "invoice_line_item"
}
