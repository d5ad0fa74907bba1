package model

import (
	"time"

	"github.com/shopspring/decimal"

	"basera/shared/model"
)

const (
	TableName  = "beds"
	EntityName = "bed"

	FieldID         = "id"
	FieldRoomID     = "room_id"
	FieldNumber     = "number"
	FieldIsOccupied = "is_occupied"
	FieldIoTMeterID = "iot_meter_id"
)

const (
	ReadingTableName  = "electricity_readings"
	ReadingEntityName = "electricity_reading"

	ReadingFieldID          = "id"
	ReadingFieldBedID       = "bed_id"
	ReadingFieldReadingDate = "reading_date"
	ReadingFieldUnits       = "units"
)

type Bed struct {
	ID         string  `db:"id"`
	RoomID     string  `db:"room_id"`
	Number     string  `db:"number"`
	IsOccupied bool    `db:"is_occupied"`
	IoTMeterID *string `db:"iot_meter_id"`
	model.Metadata
}

type ElectricityReading struct {
	ID          string          `db:"id"`
	BedID       string          `db:"bed_id"`
	ReadingDate time.Time       `db:"reading_date"`
	Units       decimal.Decimal `db:"units"`
	model.Metadata
}
