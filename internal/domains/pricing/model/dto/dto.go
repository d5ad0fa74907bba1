package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"basera/internal/domains/pricing/model"
	"basera/shared"
	gDto "basera/shared/dto"
	gModel "basera/shared/model"
	"basera/shared/timezone"
)

type CreatePricingRuleRequest struct {
	PropertyID      string `json:"property_id"      validate:"omitempty,uuid"`
	Name            string `json:"name"             validate:"required,max=100"`
	StartMonth      int    `json:"start_month"      validate:"required,min=1,max=12"`
	EndMonth        int    `json:"end_month"        validate:"required,min=1,max=12"`
	PriceMultiplier string `json:"price_multiplier" validate:"required"`
}

func (c *CreatePricingRuleRequest) ToModel(user string) (model.PricingRule, error) {
	multiplier, err := decimal.NewFromString(c.PriceMultiplier)
	if err != nil {
		return model.PricingRule{}, err
	}

	var propertyID *string
	if c.PropertyID != "" {
		propertyID = &c.PropertyID
	}

	return model.PricingRule{
		ID:              uuid.NewString(),
		PropertyID:      propertyID,
		Name:            c.Name,
		StartMonth:      c.StartMonth,
		EndMonth:        c.EndMonth,
		PriceMultiplier: multiplier,
		Active:          true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdatePricingRuleRequest struct {
	Name            string `db:"name"             json:"name"             validate:"omitempty,max=100"`
	StartMonth      int    `db:"start_month"      json:"start_month"      validate:"omitempty,min=1,max=12"`
	EndMonth        int    `db:"end_month"        json:"end_month"        validate:"omitempty,min=1,max=12"`
	PriceMultiplier string `db:"price_multiplier" json:"price_multiplier" validate:"omitempty"`
}

type PricingRuleResponse struct {
	ID              string `json:"id"`
	PropertyID      string `json:"property_id,omitempty"`
	Name            string `json:"name"`
	StartMonth      int    `json:"start_month"`
	EndMonth        int    `json:"end_month"`
	PriceMultiplier string `json:"price_multiplier"`
	Active          bool   `json:"active"`
	gDto.Metadata
}

func (r *PricingRuleResponse) FromModel(mod model.PricingRule) {
	r.ID = mod.ID

	if mod.PropertyID != nil {
		r.PropertyID = *mod.PropertyID
	}

	r.Name = mod.Name
	r.StartMonth = mod.StartMonth
	r.EndMonth = mod.EndMonth
	r.PriceMultiplier = mod.PriceMultiplier.String()
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetPricingRulesResponse struct {
	Rules     []PricingRuleResponse `json:"rules"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetPricingRulesResponse) FromModels(models []model.PricingRule, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rules = make([]PricingRuleResponse, len(models))
	for i, mod := range models {
		r.Rules[i].FromModel(mod)
	}
}

type ResolveRentResponse struct {
	BaseRent      string `json:"base_rent"`
	Multiplier    string `json:"multiplier"`
	EffectiveRent string `json:"effective_rent"`
	RuleID        string `json:"rule_id,omitempty"`
	RuleName      string `json:"rule_name,omitempty"`
}
