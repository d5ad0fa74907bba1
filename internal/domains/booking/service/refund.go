package service

import (
	"time"

	"github.com/shopspring/decimal"

	"basera/shared/failure"
	"basera/shared/money"
)

// RefundInput carries everything the settlement needs, gathered by the
// caller so the computation itself stays deterministic.
type RefundInput struct {
	DepositAmount    decimal.Decimal
	MonthlyRent      decimal.Decimal
	UnpaidInvoices   decimal.Decimal
	WalletBalance    decimal.Decimal
	NoticeGivenDate  *time.Time
	ExitDate         time.Time
	NoticePeriodDays int

	// UninvoicedFrom, when set, marks the first day of the exit month not
	// yet covered by an invoice; rent from there through ExitDate is added
	// to the dues.
	UninvoicedFrom *time.Time
}

// RefundBreakdown is the settled deposit split.
type RefundBreakdown struct {
	Dues    decimal.Decimal
	Penalty decimal.Decimal
	Refund  decimal.Decimal
}

// ComputeRefund settles the deposit on exit: dues and the short-notice
// penalty are deducted, and a deposit that cannot cover them is a failure
// carrying the shortfall, never a negative refund.
func ComputeRefund(in RefundInput) (RefundBreakdown, error) {
	dues := in.UnpaidInvoices

	if in.UninvoicedFrom != nil && !in.UninvoicedFrom.After(in.ExitDate) {
		dues = dues.Add(money.ProrateMonth(in.MonthlyRent, *in.UninvoicedFrom, in.ExitDate))
	}

	// A negative wallet means mess charges outran recharges.
	if in.WalletBalance.Sign() < 0 {
		dues = dues.Add(in.WalletBalance.Neg())
	}

	penalty := shortNoticePenalty(in)

	dues = money.Round(dues)
	refund := money.Round(in.DepositAmount.Sub(dues).Sub(penalty))

	if refund.Sign() < 0 {
		return RefundBreakdown{}, failure.OutstandingDuesShortfall(refund.Neg())
	}

	return RefundBreakdown{
		Dues:    dues,
		Penalty: penalty,
		Refund:  refund,
	}, nil
}

// shortNoticePenalty charges one daily rate for each notice day not served.
func shortNoticePenalty(in RefundInput) decimal.Decimal {
	if in.NoticeGivenDate == nil {
		return money.Round(money.DailyRate(in.MonthlyRent, in.ExitDate).Mul(decimal.NewFromInt(int64(in.NoticePeriodDays))))
	}

	served := int(in.ExitDate.Sub(*in.NoticeGivenDate).Hours() / 24)
	if served >= in.NoticePeriodDays {
		return decimal.Zero
	}

	shortfall := in.NoticePeriodDays - served

	return money.Round(money.DailyRate(in.MonthlyRent, in.ExitDate).Mul(decimal.NewFromInt(int64(shortfall))))
}
