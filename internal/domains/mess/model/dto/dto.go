package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"basera/internal/domains/mess/model"
	"basera/shared"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	gModel "basera/shared/model"
	"basera/shared/timezone"
)

type CreateMenuRequest struct {
	PropertyID     string `json:"property_id"     validate:"required,uuid"`
	MenuDate       string `json:"menu_date"       validate:"required,datetime=2006-01-02"`
	BreakfastPrice string `json:"breakfast_price" validate:"required"`
	LunchPrice     string `json:"lunch_price"     validate:"required"`
	DinnerPrice    string `json:"dinner_price"    validate:"required"`
}

func (c *CreateMenuRequest) ToModel(user string) (model.MessMenu, error) {
	menuDate, err := time.Parse(constant.DateOnlyLayout, c.MenuDate)
	if err != nil {
		return model.MessMenu{}, err
	}

	breakfast, err := decimal.NewFromString(c.BreakfastPrice)
	if err != nil {
		return model.MessMenu{}, err
	}

	lunch, err := decimal.NewFromString(c.LunchPrice)
	if err != nil {
		return model.MessMenu{}, err
	}

	dinner, err := decimal.NewFromString(c.DinnerPrice)
	if err != nil {
		return model.MessMenu{}, err
	}

	return model.MessMenu{
		ID:             uuid.NewString(),
		PropertyID:     c.PropertyID,
		MenuDate:       menuDate,
		BreakfastPrice: breakfast,
		LunchPrice:     lunch,
		DinnerPrice:    dinner,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type SetSelectionRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	MenuID    string `json:"menu_id"    validate:"required,uuid"`
	Breakfast string `json:"breakfast"  validate:"omitempty,oneof=EATING SKIPPING"`
	Lunch     string `json:"lunch"      validate:"omitempty,oneof=EATING SKIPPING"`
	Dinner    string `json:"dinner"     validate:"omitempty,oneof=EATING SKIPPING"`
}

func (c *SetSelectionRequest) ToModel(user, tenantID string) model.DailyMealSelection {
	status := func(s string) string {
		if s == "" {
			return constant.MealStatusEating
		}

		return s
	}

	return model.DailyMealSelection{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		BookingID: c.BookingID,
		MenuID:    c.MenuID,
		Breakfast: status(c.Breakfast),
		Lunch:     status(c.Lunch),
		Dinner:    status(c.Dinner),
		IsBilled:  false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type MenuResponse struct {
	ID             string `json:"id"`
	PropertyID     string `json:"property_id"`
	MenuDate       string `json:"menu_date"`
	BreakfastPrice string `json:"breakfast_price"`
	LunchPrice     string `json:"lunch_price"`
	DinnerPrice    string `json:"dinner_price"`
	gDto.Metadata
}

func (r *MenuResponse) FromModel(mod model.MessMenu) {
	r.ID = mod.ID
	r.PropertyID = mod.PropertyID
	r.MenuDate = mod.MenuDate.Format(constant.DateOnlyLayout)
	r.BreakfastPrice = mod.BreakfastPrice.StringFixed(2)
	r.LunchPrice = mod.LunchPrice.StringFixed(2)
	r.DinnerPrice = mod.DinnerPrice.StringFixed(2)
	r.Metadata.FromModel(mod.Metadata)
}

type GetMenusResponse struct {
	Menus     []MenuResponse `json:"menus"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetMenusResponse) FromModels(models []model.MessMenu, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Menus = make([]MenuResponse, len(models))
	for i, mod := range models {
		r.Menus[i].FromModel(mod)
	}
}

type SelectionResponse struct {
	ID        string `json:"id"`
	TenantID  string `json:"tenant_id"`
	BookingID string `json:"booking_id"`
	MenuID    string `json:"menu_id"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	IsBilled  bool   `json:"is_billed"`
	gDto.Metadata
}

func (r *SelectionResponse) FromModel(mod model.DailyMealSelection) {
	r.ID = mod.ID
	r.TenantID = mod.TenantID
	r.BookingID = mod.BookingID
	r.MenuID = mod.MenuID
	r.Breakfast = mod.Breakfast
	r.Lunch = mod.Lunch
	r.Dinner = mod.Dinner
	r.IsBilled = mod.IsBilled
	r.Metadata.FromModel(mod.Metadata)
}

type BillDayResponse struct {
	PropertyID   string `json:"property_id"`
	Date         string `json:"date"`
	BilledCount  int    `json:"billed_count"`
	SkippedCount int    `json:"skipped_count"`
	TotalAmount  string `json:"total_amount"`
}

type BillDayRequest struct {
	PropertyID string `json:"property_id" validate:"required,uuid"`
	Date       string `json:"date"        validate:"required,datetime=2006-01-02"`
}
