package service

import (
	"time"

	"github.com/shopspring/decimal"

	"basera/internal/domains/pricing/model"
	"basera/shared/money"
)

var multiplierOne = decimal.NewFromInt(1)

// SelectRule picks the rule that governs the given month. When several
// seasons overlap, the highest multiplier wins; among equal multipliers the
// most recently created rule wins. Returns nil when no rule covers the month.
func SelectRule(rules []model.PricingRule, month time.Month) *model.PricingRule {
	var selected *model.PricingRule

	for i := range rules {
		rule := &rules[i]
		if !rule.Active || !rule.AppliesTo(month) {
			continue
		}

		if selected == nil {
			selected = rule

			continue
		}

		switch rule.PriceMultiplier.Cmp(selected.PriceMultiplier) {
		case 1:
			selected = rule
		case 0:
			if rule.CreatedAt.After(selected.CreatedAt) {
				selected = rule
			}
		}
	}

	return selected
}

// EffectiveRent applies the governing seasonal multiplier to a base rent and
// rounds to currency precision. Months with no covering rule charge the base
// rent unchanged.
func EffectiveRent(baseRent decimal.Decimal, rules []model.PricingRule, month time.Month) (decimal.Decimal, *model.PricingRule) {
	rule := SelectRule(rules, month)
	if rule == nil {
		return money.Round(baseRent), nil
	}

	return money.Round(baseRent.Mul(rule.PriceMultiplier)), rule
}

// Multiplier returns the governing multiplier for the month, defaulting to 1.
func Multiplier(rules []model.PricingRule, month time.Month) decimal.Decimal {
	rule := SelectRule(rules, month)
	if rule == nil {
		return multiplierOne
	}

	return rule.PriceMultiplier
}
