package utils

import (
	"ClinicDesk/models"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for invoice and birth dates.
const DateLayout = "2006-01-02"

// LineItemInput is a line item as submitted by the billing form, before numeric coercion.
type LineItemInput struct {
	Description string      `json:"description"`
	Quantity    interface{} `json:"qty"`
	UnitPrice   interface{} `json:"unitPrice"`
}

// InvoiceInput is a create-invoice submission. It has no invoice number field:
// numbers are only assigned by the invoice repository.
type InvoiceInput struct {
	PatientID   string          `json:"patientId"`
	PatientName string          `json:"patientName"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Date        string          `json:"date"`
	LineItems   []LineItemInput `json:"lineItems"`
	Discount    interface{}     `json:"discount"`
	Tax         interface{}     `json:"tax"`
	Shipping    interface{}     `json:"shipping"`
	Remarks     string          `json:"remarks"`
}

// CoerceAmount converts a submitted money value to a decimal. Absent or blank
// values count as zero; anything that is not a number is a ValidationError.
func CoerceAmount(field string, value interface{}) (decimal.Decimal, error) {
	return coerceDecimal(field, value, true)
}

func coerceDecimal(field string, value interface{}, allowEmpty bool) (decimal.Decimal, error) {
	switch v := value.(type) {
	case nil:
		if allowEmpty {
			return decimal.Zero, nil
		}
		return decimal.Zero, NewValidationError("%s is required", field)
	case decimal.Decimal:
		return v, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, NewValidationError("%s must be a number", field)
		}
		return decimal.NewFromFloat(v), nil
	case float32:
		return coerceDecimal(field, float64(v), allowEmpty)
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case json.Number:
		return coerceDecimal(field, v.String(), allowEmpty)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return coerceDecimal(field, nil, allowEmpty)
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, NewValidationError("%s must be a number", field)
		}
		return d, nil
	default:
		return decimal.Zero, NewValidationError("%s must be a number", field)
	}
}

// CoerceQuantity converts a submitted quantity to an int. Integral numbers and
// integer strings are accepted; fractions and non-numbers are not.
func CoerceQuantity(field string, value interface{}) (int, error) {
	switch v := value.(type) {
	case nil:
		return 0, NewValidationError("%s is required", field)
	case int:
		return v, nil
	case int64:
		return coerceQuantityFloat(field, float64(v))
	case float64:
		return coerceQuantityFloat(field, v)
	case json.Number:
		return CoerceQuantity(field, v.String())
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, NewValidationError("%s must be a whole number", field)
		}
		return n, nil
	default:
		return 0, NewValidationError("%s must be a whole number", field)
	}
}

func coerceQuantityFloat(field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, NewValidationError("%s must be a whole number", field)
	}
	return int(v), nil
}

// ComputeLineTotal returns quantity × unit price rounded to 2 decimal places.
func ComputeLineTotal(item models.LineItem) (decimal.Decimal, error) {
	if strings.TrimSpace(item.Description) == "" {
		return decimal.Zero, NewValidationError("description is required")
	}
	if item.Quantity < 1 {
		return decimal.Zero, NewValidationError("qty must be at least 1")
	}
	if item.UnitPrice.IsNegative() {
		return decimal.Zero, NewValidationError("unitPrice must not be negative")
	}
	return decimal.NewFromInt(int64(item.Quantity)).Mul(item.UnitPrice).Round(2), nil
}

// ComputeSubtotal sums the line totals. An empty list sums to zero; a single
// invalid item fails the whole computation.
func ComputeSubtotal(items []models.LineItem) (decimal.Decimal, error) {
	subtotal := decimal.Zero
	for i, item := range items {
		lineTotal, err := ComputeLineTotal(item)
		if err != nil {
			return decimal.Zero, prefixValidation(err, "lineItems[%d]", i)
		}
		subtotal = subtotal.Add(lineTotal)
	}
	return subtotal, nil
}

// ComputeBalanceDue returns subtotal − discount + tax + shipping. The result is
// not clamped: a discount larger than everything else yields a negative balance.
func ComputeBalanceDue(subtotal, discount, tax, shipping decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(discount).Add(tax).Add(shipping)
}

// NormalizeLineItems coerces every submitted item and fills in its line total.
// Nothing is returned unless every item is valid.
func NormalizeLineItems(inputs []LineItemInput) ([]models.LineItem, error) {
	items := make([]models.LineItem, 0, len(inputs))
	for i, in := range inputs {
		qty, err := CoerceQuantity("qty", in.Quantity)
		if err != nil {
			return nil, prefixValidation(err, "lineItems[%d]", i)
		}
		price, err := coerceDecimal("unitPrice", in.UnitPrice, false)
		if err != nil {
			return nil, prefixValidation(err, "lineItems[%d]", i)
		}
		item := models.LineItem{
			Position:    i + 1,
			Description: strings.TrimSpace(in.Description),
			Quantity:    qty,
			UnitPrice:   price.Round(2),
		}
		item.LineTotal, err = ComputeLineTotal(item)
		if err != nil {
			return nil, prefixValidation(err, "lineItems[%d]", i)
		}
		items = append(items, item)
	}
	return items, nil
}

// BuildInvoice validates a submission and returns the unnumbered invoice with
// its cached totals. today is used when the submission carries no date.
func BuildInvoice(input InvoiceInput, today time.Time) (*models.Invoice, error) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.Email = strings.TrimSpace(input.Email)
	input.Date = strings.TrimSpace(input.Date)

	err := validation.ValidateStruct(&input,
		validation.Field(&input.PatientID, validation.Required.Error("is required")),
		validation.Field(&input.LineItems, validation.Required.Error("at least one line item is required")),
		validation.Field(&input.Email, is.Email),
		validation.Field(&input.Date, validation.Date(DateLayout).Error("must be YYYY-MM-DD")),
	)
	if err != nil {
		return nil, ToValidationError(err)
	}

	items, err := NormalizeLineItems(input.LineItems)
	if err != nil {
		return nil, err
	}
	subtotal, err := ComputeSubtotal(items)
	if err != nil {
		return nil, err
	}

	adjustments := make(map[string]decimal.Decimal, 3)
	for _, adj := range []struct {
		field string
		value interface{}
	}{
		{"discount", input.Discount},
		{"tax", input.Tax},
		{"shipping", input.Shipping},
	} {
		amount, err := CoerceAmount(adj.field, adj.value)
		if err != nil {
			return nil, err
		}
		if amount.IsNegative() {
			return nil, NewValidationError("%s must not be negative", adj.field)
		}
		adjustments[adj.field] = amount.Round(2)
	}

	date := input.Date
	if date == "" {
		date = today.Format(DateLayout)
	}

	discount, tax, shipping := adjustments["discount"], adjustments["tax"], adjustments["shipping"]
	return &models.Invoice{
		PatientID:   input.PatientID,
		PatientName: strings.TrimSpace(input.PatientName),
		Address:     strings.TrimSpace(input.Address),
		Phone:       strings.TrimSpace(input.Phone),
		Email:       input.Email,
		Date:        date,
		LineItems:   items,
		Discount:    discount,
		Tax:         tax,
		Shipping:    shipping,
		Subtotal:    subtotal,
		BalanceDue:  ComputeBalanceDue(subtotal, discount, tax, shipping),
		Remarks:     strings.TrimSpace(input.Remarks),
	}, nil
}

func prefixValidation(err error, format string, args ...interface{}) error {
	verr, ok := err.(*ValidationError)
	if !ok {
		return err
	}
	prefix := fmt.Sprintf(format, args...)
	return &ValidationError{Message: prefix + "." + verr.Message, Fields: map[string]string{prefix: verr.Message}}
}
