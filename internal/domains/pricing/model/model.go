package model

import (
	"time"

	"github.com/shopspring/decimal"

	"basera/shared/model"
)

const (
	TableName  = "pricing_rules"
	EntityName = "pricing_rule"

	FieldID              = "id"
	FieldPropertyID      = "property_id"
	FieldName            = "name"
	FieldStartMonth      = "start_month"
	FieldEndMonth        = "end_month"
	FieldPriceMultiplier = "price_multiplier"
	FieldActive          = "active"
)

type PricingRule struct {
	ID              string          `db:"id"`
	PropertyID      *string         `db:"property_id"`
	Name            string          `db:"name"`
	StartMonth      int             `db:"start_month"`
	EndMonth        int             `db:"end_month"`
	PriceMultiplier decimal.Decimal `db:"price_multiplier"`
	Active          bool            `db:"active"`
	model.Metadata
}

// AppliesTo reports whether the rule's season covers the given month. A rule
// whose end month precedes its start month wraps across the year boundary,
// e.g. start 11, end 2 covers Nov through Feb.
func (r PricingRule) AppliesTo(month time.Month) bool {
	m := int(month)

	if r.StartMonth <= r.EndMonth {
		return m >= r.StartMonth && m <= r.EndMonth
	}

	return m >= r.StartMonth || m <= r.EndMonth
}
