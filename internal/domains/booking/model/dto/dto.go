package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"basera/internal/domains/booking/model"
	"basera/shared"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	gModel "basera/shared/model"
	"basera/shared/timezone"
)

type CreateBookingRequest struct {
	TenantID           string `json:"tenant_id"            validate:"required,uuid"`
	BedID              string `json:"bed_id"               validate:"required,uuid"`
	DepositAmount      string `json:"deposit_amount"       validate:"required"`
	StartDate          string `json:"start_date"           validate:"required,datetime=2006-01-02"`
	MonthlyRent        string `json:"monthly_rent"         validate:"omitempty"`
	IsZeroDeposit      bool   `json:"is_zero_deposit"`
	FintechPartnerName string `json:"fintech_partner_name" validate:"omitempty,max=100"`
	FintechLoanID      string `json:"fintech_loan_id"      validate:"omitempty,max=128"`
}

func (c *CreateBookingRequest) ToModel(user, propertyID string, monthlyRent, deposit decimal.Decimal, startDate time.Time) model.Booking {
	var fintechPartner, fintechLoanID *string
	if c.FintechPartnerName != "" {
		fintechPartner = &c.FintechPartnerName
	}

	if c.FintechLoanID != "" {
		fintechLoanID = &c.FintechLoanID
	}

	return model.Booking{
		ID:             uuid.NewString(),
		TenantID:       c.TenantID,
		PropertyID:     propertyID,
		BedID:          c.BedID,
		Status:         constant.BookingStatusActive,
		MonthlyRent:    monthlyRent,
		DepositAmount:  deposit,
		StartDate:      startDate,
		IsZeroDeposit:  c.IsZeroDeposit,
		FintechPartner: fintechPartner,
		FintechLoanID:  fintechLoanID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type GiveNoticeRequest struct {
	NoticeDate string `json:"notice_date" validate:"omitempty,datetime=2006-01-02"`
}

type ExitRequest struct {
	ExitDate string `json:"exit_date" validate:"omitempty,datetime=2006-01-02"`
}

type BookingResponse struct {
	ID                string `json:"id"`
	TenantID          string `json:"tenant_id"`
	PropertyID        string `json:"property_id"`
	BedID             string `json:"bed_id"`
	Status            string `json:"status"`
	MonthlyRent       string `json:"monthly_rent"`
	DepositAmount     string `json:"deposit_amount"`
	StartDate         string `json:"start_date"`
	IsZeroDeposit     bool   `json:"is_zero_deposit"`
	FintechPartner    string `json:"fintech_partner_name,omitempty"`
	FintechLoanID     string `json:"fintech_loan_id,omitempty"`
	NoticeGivenDate   string `json:"notice_given_date,omitempty"`
	ExpectedExitDate  string `json:"expected_exit_date,omitempty"`
	ActualExitDate    string `json:"actual_exit_date,omitempty"`
	RefundAmount      string `json:"refund_amount,omitempty"`
	RefundProcessedAt string `json:"refund_processed_at,omitempty"`
	AgreementURL      string `json:"agreement_url,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.TenantID = mod.TenantID
	r.PropertyID = mod.PropertyID
	r.BedID = mod.BedID
	r.Status = mod.Status
	r.MonthlyRent = mod.MonthlyRent.StringFixed(2)
	r.DepositAmount = mod.DepositAmount.StringFixed(2)
	r.StartDate = mod.StartDate.Format(constant.DateOnlyLayout)
	r.IsZeroDeposit = mod.IsZeroDeposit

	if mod.FintechPartner != nil {
		r.FintechPartner = *mod.FintechPartner
	}

	if mod.FintechLoanID != nil {
		r.FintechLoanID = *mod.FintechLoanID
	}

	if mod.NoticeGivenDate != nil {
		r.NoticeGivenDate = mod.NoticeGivenDate.Format(constant.DateOnlyLayout)
	}

	if mod.ExpectedExitDate != nil {
		r.ExpectedExitDate = mod.ExpectedExitDate.Format(constant.DateOnlyLayout)
	}

	if mod.ActualExitDate != nil {
		r.ActualExitDate = mod.ActualExitDate.Format(constant.DateOnlyLayout)
	}

	if mod.RefundAmount != nil {
		r.RefundAmount = mod.RefundAmount.StringFixed(2)
	}

	if mod.RefundProcessedAt != nil {
		r.RefundProcessedAt = timezone.Format(*mod.RefundProcessedAt, constant.DateFormat)
	}

	if mod.AgreementURL != nil {
		r.AgreementURL = *mod.AgreementURL
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type RefundPreviewResponse struct {
	BookingID     string `json:"booking_id"`
	DepositAmount string `json:"deposit_amount"`
	Dues          string `json:"dues"`
	Penalty       string `json:"penalty"`
	RefundAmount  string `json:"refund_amount"`
}
