package model

import (
	"time"

	"github.com/shopspring/decimal"

	"basera/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                = "id"
	FieldTenantID          = "tenant_id"
	FieldPropertyID        = "property_id"
	FieldBedID             = "bed_id"
	FieldStatus            = "status"
	FieldMonthlyRent       = "monthly_rent"
	FieldDepositAmount     = "deposit_amount"
	FieldStartDate         = "start_date"
	FieldIsZeroDeposit     = "is_zero_deposit"
	FieldFintechPartner    = "fintech_partner_name"
	FieldFintechLoanID     = "fintech_loan_id"
	FieldNoticeGivenDate   = "notice_given_date"
	FieldExpectedExitDate  = "expected_exit_date"
	FieldActualExitDate    = "actual_exit_date"
	FieldRefundAmount      = "refund_amount"
	FieldRefundProcessedAt = "refund_processed_at"
	FieldAgreementURL      = "agreement_url"
)

type Booking struct {
	ID                string           `db:"id"`
	TenantID          string           `db:"tenant_id"`
	PropertyID        string           `db:"property_id"`
	BedID             string           `db:"bed_id"`
	Status            string           `db:"status"`
	MonthlyRent       decimal.Decimal  `db:"monthly_rent"`
	DepositAmount     decimal.Decimal  `db:"deposit_amount"`
	StartDate         time.Time        `db:"start_date"`
	IsZeroDeposit     bool             `db:"is_zero_deposit"`
	FintechPartner    *string          `db:"fintech_partner_name"`
	FintechLoanID     *string          `db:"fintech_loan_id"`
	NoticeGivenDate   *time.Time       `db:"notice_given_date"`
	ExpectedExitDate  *time.Time       `db:"expected_exit_date"`
	ActualExitDate    *time.Time       `db:"actual_exit_date"`
	RefundAmount      *decimal.Decimal `db:"refund_amount"`
	RefundProcessedAt *time.Time       `db:"refund_processed_at"`
	AgreementURL      *string          `db:"agreement_url"`
	model.Metadata
}
