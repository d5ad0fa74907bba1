package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"basera/internal/domains/transaction/model"
	"basera/shared"
	gDto "basera/shared/dto"
	gModel "basera/shared/model"
	"basera/shared/timezone"
)

type RecordTransactionRequest struct {
	UserID              string `json:"user_id"                validate:"omitempty,uuid"`
	PropertyID          string `json:"property_id"            validate:"required,uuid"`
	BookingID           string `json:"booking_id"             validate:"omitempty,uuid"`
	InvoiceID           string `json:"invoice_id"             validate:"omitempty,uuid"`
	Category            string `json:"category"               validate:"required,oneof=RENT WALLET_RECHARGE MESS_DEBIT REFUND EXPENSE SALARY"`
	Amount              string `json:"amount"                 validate:"required"`
	IsCredit            bool   `json:"is_credit"`
	Description         string `json:"description"            validate:"omitempty,max=255"`
	PaymentGatewayTxnID string `json:"payment_gateway_txn_id" validate:"omitempty,max=128"`
}

func (c *RecordTransactionRequest) ToModel(user string) (model.Transaction, error) {
	amount, err := decimal.NewFromString(c.Amount)
	if err != nil {
		return model.Transaction{}, err
	}

	var bookingID, invoiceID, gatewayTxnID *string
	if c.BookingID != "" {
		bookingID = &c.BookingID
	}

	if c.InvoiceID != "" {
		invoiceID = &c.InvoiceID
	}

	if c.PaymentGatewayTxnID != "" {
		gatewayTxnID = &c.PaymentGatewayTxnID
	}

	// Property-level entries default to the acting user as the ledger owner.
	userID := c.UserID
	if userID == "" {
		userID = user
	}

	return model.Transaction{
		ID:                  uuid.NewString(),
		UserID:              userID,
		PropertyID:          c.PropertyID,
		BookingID:           bookingID,
		InvoiceID:           invoiceID,
		Category:            c.Category,
		Amount:              amount,
		IsCredit:            c.IsCredit,
		Description:         c.Description,
		PaymentGatewayTxnID: gatewayTxnID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type WalletRechargeRequest struct {
	Amount              string `json:"amount"                 validate:"required"`
	PaymentGatewayTxnID string `json:"payment_gateway_txn_id" validate:"omitempty,max=128"`
}

type TransactionResponse struct {
	ID                  string `json:"id"`
	UserID              string `json:"user_id"`
	PropertyID          string `json:"property_id"`
	BookingID           string `json:"booking_id,omitempty"`
	InvoiceID           string `json:"invoice_id,omitempty"`
	Category            string `json:"category"`
	Amount              string `json:"amount"`
	IsCredit            bool   `json:"is_credit"`
	Description         string `json:"description,omitempty"`
	PaymentGatewayTxnID string `json:"payment_gateway_txn_id,omitempty"`
	gDto.Metadata
}

func (r *TransactionResponse) FromModel(mod model.Transaction) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.PropertyID = mod.PropertyID

	if mod.BookingID != nil {
		r.BookingID = *mod.BookingID
	}

	if mod.InvoiceID != nil {
		r.InvoiceID = *mod.InvoiceID
	}

	r.Category = mod.Category
	r.Amount = mod.Amount.StringFixed(2)
	r.IsCredit = mod.IsCredit
	r.Description = mod.Description

	if mod.PaymentGatewayTxnID != nil {
		r.PaymentGatewayTxnID = *mod.PaymentGatewayTxnID
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTransactionsResponse) FromModels(models []model.Transaction, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Transactions = make([]TransactionResponse, len(models))
	for i, mod := range models {
		r.Transactions[i].FromModel(mod)
	}
}

type BalanceResponse struct {
	BookingID string `json:"booking_id"`
	TenantID  string `json:"tenant_id"`
	Balance   string `json:"balance"`
}
