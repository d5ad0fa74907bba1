package model

import (
	"time"

	"github.com/shopspring/decimal"

	"basera/shared/model"
)

const (
	TableName  = "invoices"
	EntityName = "invoice"

	FieldID                = "id"
	FieldBookingID         = "booking_id"
	FieldPropertyID        = "property_id"
	FieldPeriodStart       = "period_start"
	FieldPeriodEnd         = "period_end"
	FieldRentAmount        = "rent_amount"
	FieldMessAmount        = "mess_amount"
	FieldElectricityAmount = "electricity_amount"
	FieldLateFeeAmount     = "late_fee_amount"
	FieldTotalAmount       = "total_amount"
	FieldIsPaid            = "is_paid"
	FieldPaidOn            = "paid_on"
	FieldDueDate           = "due_date"
)

type Invoice struct {
	ID                string          `db:"id"`
	BookingID         string          `db:"booking_id"`
	PropertyID        string          `db:"property_id"`
	PeriodStart       time.Time       `db:"period_start"`
	PeriodEnd         time.Time       `db:"period_end"`
	RentAmount        decimal.Decimal `db:"rent_amount"`
	MessAmount        decimal.Decimal `db:"mess_amount"`
	ElectricityAmount decimal.Decimal `db:"electricity_amount"`
	LateFeeAmount     decimal.Decimal `db:"late_fee_amount"`
	TotalAmount       decimal.Decimal `db:"total_amount"`
	IsPaid            bool            `db:"is_paid"`
	PaidOn            *time.Time      `db:"paid_on"`
	DueDate           time.Time       `db:"due_date"`
	model.Metadata
}

// Overdue reports whether the invoice is unpaid past its due date.
func (i Invoice) Overdue(now time.Time) bool {
	return !i.IsPaid && now.After(i.DueDate)
}
