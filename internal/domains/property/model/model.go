package model

import (
	"basera/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID                = "id"
	FieldName              = "name"
	FieldAddress           = "address"
	FieldOwnerID           = "owner_id"
	FieldManagerID         = "manager_id"
	FieldHygieneRating     = "hygiene_rating"
	FieldPreferredLanguage = "preferred_language"
	FieldActive            = "active"
)

type Property struct {
	ID                string          `db:"id"`
	Name              string          `db:"name"`
	Address           string          `db:"address"`
	OwnerID           string          `db:"owner_id"`
	ManagerID         *string         `db:"manager_id"`
	HygieneRating     decimal.Decimal `db:"hygiene_rating"`
	PreferredLanguage string          `db:"preferred_language"`
	Active            bool            `db:"active"`
	model.Metadata
}
