package model

import (
	"time"

	"github.com/shopspring/decimal"

	"basera/shared/model"
)

const (
	MenuTableName  = "mess_menus"
	MenuEntityName = "mess_menu"

	MenuFieldID             = "id"
	MenuFieldPropertyID     = "property_id"
	MenuFieldMenuDate       = "menu_date"
	MenuFieldBreakfastPrice = "breakfast_price"
	MenuFieldLunchPrice     = "lunch_price"
	MenuFieldDinnerPrice    = "dinner_price"
)

const (
	SelectionTableName  = "daily_meal_selections"
	SelectionEntityName = "daily_meal_selection"

	SelectionFieldID        = "id"
	SelectionFieldTenantID  = "tenant_id"
	SelectionFieldBookingID = "booking_id"
	SelectionFieldMenuID    = "menu_id"
	SelectionFieldBreakfast = "breakfast"
	SelectionFieldLunch     = "lunch"
	SelectionFieldDinner    = "dinner"
	SelectionFieldIsBilled  = "is_billed"
)

type MessMenu struct {
	ID             string          `db:"id"`
	PropertyID     string          `db:"property_id"`
	MenuDate       time.Time       `db:"menu_date"`
	BreakfastPrice decimal.Decimal `db:"breakfast_price"`
	LunchPrice     decimal.Decimal `db:"lunch_price"`
	DinnerPrice    decimal.Decimal `db:"dinner_price"`
	model.Metadata
}

type DailyMealSelection struct {
	ID        string `db:"id"`
	TenantID  string `db:"tenant_id"`
	BookingID string `db:"booking_id"`
	MenuID    string `db:"menu_id"`
	Breakfast string `db:"breakfast"`
	Lunch     string `db:"lunch"`
	Dinner    string `db:"dinner"`
	IsBilled  bool   `db:"is_billed"`
	model.Metadata
}

// SlotCharge is one meal slot the tenant ate, priced from the menu.
type SlotCharge struct {
	Slot  string
	Price decimal.Decimal
}

// EatingSlots lists the slots the tenant ate with their menu prices. Each
// slot bills as its own ledger row.
func (s DailyMealSelection) EatingSlots(menu MessMenu, eatingStatus string) []SlotCharge {
	var slots []SlotCharge

	if s.Breakfast == eatingStatus {
		slots = append(slots, SlotCharge{Slot: "breakfast", Price: menu.BreakfastPrice})
	}

	if s.Lunch == eatingStatus {
		slots = append(slots, SlotCharge{Slot: "lunch", Price: menu.LunchPrice})
	}

	if s.Dinner == eatingStatus {
		slots = append(slots, SlotCharge{Slot: "dinner", Price: menu.DinnerPrice})
	}

	return slots
}

// BillableSelection pairs a selection with its menu for billing runs.
type BillableSelection struct {
	DailyMealSelection
	PropertyID     string          `db:"property_id"     table:"mess_menus"`
	MenuDate       time.Time       `db:"menu_date"       table:"mess_menus"`
	BreakfastPrice decimal.Decimal `db:"breakfast_price" table:"mess_menus"`
	LunchPrice     decimal.Decimal `db:"lunch_price"     table:"mess_menus"`
	DinnerPrice    decimal.Decimal `db:"dinner_price"    table:"mess_menus"`
}

func (b BillableSelection) Menu() MessMenu {
	return MessMenu{
		ID:             b.MenuID,
		PropertyID:     b.PropertyID,
		MenuDate:       b.MenuDate,
		BreakfastPrice: b.BreakfastPrice,
		LunchPrice:     b.LunchPrice,
		DinnerPrice:    b.DinnerPrice,
	}
}
