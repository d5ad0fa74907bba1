package model

import (
	"github.com/shopspring/decimal"

	"basera/shared/model"
)

const (
	TableName  = "transactions"
	EntityName = "transaction"

	FieldID                  = "id"
	FieldUserID              = "user_id"
	FieldPropertyID          = "property_id"
	FieldBookingID           = "booking_id"
	FieldInvoiceID           = "invoice_id"
	FieldCategory            = "category"
	FieldAmount              = "amount"
	FieldIsCredit            = "is_credit"
	FieldDescription         = "description"
	FieldPaymentGatewayTxnID = "payment_gateway_txn_id"
)

// Transaction is an append-only ledger entry. Rows are never updated or
// deleted; corrections are posted as compensating entries. UserID is the
// tenant the money belongs to, or the acting staff member for property-level
// entries; wallet balances are reconstructed per user, not per booking.
type Transaction struct {
	ID                  string          `db:"id"`
	UserID              string          `db:"user_id"`
	PropertyID          string          `db:"property_id"`
	BookingID           *string         `db:"booking_id"`
	InvoiceID           *string         `db:"invoice_id"`
	Category            string          `db:"category"`
	Amount              decimal.Decimal `db:"amount"`
	IsCredit            bool            `db:"is_credit"`
	Description         string          `db:"description"`
	PaymentGatewayTxnID *string         `db:"payment_gateway_txn_id"`
	model.Metadata
}
