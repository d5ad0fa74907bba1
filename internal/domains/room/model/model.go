package model

import (
	"basera/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID             = "id"
	FieldPropertyID     = "property_id"
	FieldNumber         = "number"
	FieldFloor          = "floor"
	FieldCapacity       = "capacity"
	FieldBaseRentPerBed = "base_rent_per_bed"
)

type Room struct {
	ID             string          `db:"id"`
	PropertyID     string          `db:"property_id"`
	Number         string          `db:"number"`
	Floor          int             `db:"floor"`
	Capacity       int             `db:"capacity"`
	BaseRentPerBed decimal.Decimal `db:"base_rent_per_bed"`
	model.Metadata
}
