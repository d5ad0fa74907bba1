package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"basera/internal/domains/booking/service"
	"basera/shared/failure"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeRefund(t *testing.T) {
	noticeServed := date(2025, time.May, 1)
	shortNotice := date(2025, time.June, 20)
	earlyNotice := date(2025, time.May, 25)
	uninvoicedFrom := date(2025, time.June, 1)

	tests := []struct {
		name        string
		in          service.RefundInput
		wantDues    string
		wantPenalty string
		wantRefund  string
	}{
		{
			name: "unpaid invoices deducted from deposit",
			in: service.RefundInput{
				DepositAmount:    decimal.RequireFromString("20000"),
				MonthlyRent:      decimal.RequireFromString("10000"),
				UnpaidInvoices:   decimal.RequireFromString("5000"),
				NoticeGivenDate:  &noticeServed,
				ExitDate:         date(2025, time.May, 31),
				NoticePeriodDays: 30,
			},
			wantDues:    "5000",
			wantPenalty: "0",
			wantRefund:  "15000",
		},
		{
			name: "no dues and full notice refunds the whole deposit",
			in: service.RefundInput{
				DepositAmount:    decimal.RequireFromString("20000"),
				MonthlyRent:      decimal.RequireFromString("10000"),
				NoticeGivenDate:  &noticeServed,
				ExitDate:         date(2025, time.May, 31),
				NoticePeriodDays: 30,
			},
			wantDues:    "0",
			wantPenalty: "0",
			wantRefund:  "20000",
		},
		{
			name: "no notice charges the full notice period",
			in: service.RefundInput{
				DepositAmount:    decimal.RequireFromString("10000"),
				MonthlyRent:      decimal.RequireFromString("3000"),
				ExitDate:         date(2025, time.June, 30),
				NoticePeriodDays: 30,
			},
			wantDues:    "0",
			wantPenalty: "3000",
			wantRefund:  "7000",
		},
		{
			name: "short notice charges the unserved days",
			in: service.RefundInput{
				DepositAmount:    decimal.RequireFromString("10000"),
				MonthlyRent:      decimal.RequireFromString("3000"),
				NoticeGivenDate:  &shortNotice,
				ExitDate:         date(2025, time.June, 30),
				NoticePeriodDays: 30,
			},
			wantDues:    "0",
			wantPenalty: "2000",
			wantRefund:  "8000",
		},
		{
			name: "negative meal wallet adds to dues",
			in: service.RefundInput{
				DepositAmount:    decimal.RequireFromString("20000"),
				MonthlyRent:      decimal.RequireFromString("10000"),
				WalletBalance:    decimal.RequireFromString("-500"),
				NoticeGivenDate:  &noticeServed,
				ExitDate:         date(2025, time.May, 31),
				NoticePeriodDays: 30,
			},
			wantDues:    "500",
			wantPenalty: "0",
			wantRefund:  "19500",
		},
		{
			name: "uninvoiced days of the exit month are prorated into dues",
			in: service.RefundInput{
				DepositAmount:    decimal.RequireFromString("20000"),
				MonthlyRent:      decimal.RequireFromString("3000"),
				NoticeGivenDate:  &earlyNotice,
				ExitDate:         date(2025, time.June, 30),
				NoticePeriodDays: 30,
				UninvoicedFrom:   &uninvoicedFrom,
			},
			wantDues:    "3000",
			wantPenalty: "0",
			wantRefund:  "17000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ComputeRefund(tt.in)

			assert.NoError(t, err)
			assert.True(t, got.Dues.Equal(decimal.RequireFromString(tt.wantDues)), "dues %s", got.Dues)
			assert.True(t, got.Penalty.Equal(decimal.RequireFromString(tt.wantPenalty)), "penalty %s", got.Penalty)
			assert.True(t, got.Refund.Equal(decimal.RequireFromString(tt.wantRefund)), "refund %s", got.Refund)
		})
	}
}

func TestComputeRefundShortfall(t *testing.T) {
	noticeServed := date(2025, time.May, 1)

	_, err := service.ComputeRefund(service.RefundInput{
		DepositAmount:    decimal.RequireFromString("20000"),
		MonthlyRent:      decimal.RequireFromString("10000"),
		UnpaidInvoices:   decimal.RequireFromString("25000"),
		NoticeGivenDate:  &noticeServed,
		ExitDate:         date(2025, time.May, 31),
		NoticePeriodDays: 30,
	})

	assert.Error(t, err)

	var dues *failure.OutstandingDues
	assert.True(t, errors.As(err, &dues))
	assert.True(t, dues.Shortfall.Equal(decimal.RequireFromString("5000")))
}
