package dto

import (
	"basera/internal/domains/invoice/model"
	"basera/shared"
	"basera/shared/constant"
	gDto "basera/shared/dto"
)

type GenerateInvoiceRequest struct {
	BookingID   string `json:"booking_id"   validate:"required,uuid"`
	PeriodStart string `json:"period_start" validate:"required,datetime=2006-01-02"`
}

type InvoiceResponse struct {
	ID                string `json:"id"`
	BookingID         string `json:"booking_id"`
	PropertyID        string `json:"property_id"`
	PeriodStart       string `json:"period_start"`
	PeriodEnd         string `json:"period_end"`
	RentAmount        string `json:"rent_amount"`
	MessAmount        string `json:"mess_amount"`
	ElectricityAmount string `json:"electricity_amount"`
	LateFeeAmount     string `json:"late_fee_amount"`
	TotalAmount       string `json:"total_amount"`
	IsPaid            bool   `json:"is_paid"`
	PaidOn            string `json:"paid_on,omitempty"`
	DueDate           string `json:"due_date"`
	gDto.Metadata
}

func (r *InvoiceResponse) FromModel(mod model.Invoice) {
	r.ID = mod.ID
	r.BookingID = mod.BookingID
	r.PropertyID = mod.PropertyID
	r.PeriodStart = mod.PeriodStart.Format(constant.DateOnlyLayout)
	r.PeriodEnd = mod.PeriodEnd.Format(constant.DateOnlyLayout)
	r.RentAmount = mod.RentAmount.StringFixed(2)
	r.MessAmount = mod.MessAmount.StringFixed(2)
	r.ElectricityAmount = mod.ElectricityAmount.StringFixed(2)
	r.LateFeeAmount = mod.LateFeeAmount.StringFixed(2)
	r.TotalAmount = mod.TotalAmount.StringFixed(2)
	r.IsPaid = mod.IsPaid

	if mod.PaidOn != nil {
		r.PaidOn = mod.PaidOn.Format(constant.DateOnlyLayout)
	}

	r.DueDate = mod.DueDate.Format(constant.DateOnlyLayout)
	r.Metadata.FromModel(mod.Metadata)
}

type GetInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInvoicesResponse) FromModels(models []model.Invoice, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Invoices = make([]InvoiceResponse, len(models))
	for i, mod := range models {
		r.Invoices[i].FromModel(mod)
	}
}

type MarkPaidRequest struct {
	PaymentGatewayTxnID string `json:"payment_gateway_txn_id" validate:"omitempty,max=128"`
}

type GenerateForPeriodResponse struct {
	PropertyID  string   `json:"property_id"`
	PeriodStart string   `json:"period_start"`
	Generated   int      `json:"generated"`
	Skipped     int      `json:"skipped"`
	InvoiceIDs  []string `json:"invoice_ids"`
}

type GenerateForPeriodRequest struct {
	PropertyID  string `json:"property_id"  validate:"required,uuid"`
	PeriodStart string `json:"period_start" validate:"required,datetime=2006-01-02"`
}
