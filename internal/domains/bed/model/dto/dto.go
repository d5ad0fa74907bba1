package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"basera/internal/domains/bed/model"
	"basera/shared"
	gDto "basera/shared/dto"
	gModel "basera/shared/model"
	"basera/shared/timezone"
)

type CreateBedRequest struct {
	RoomID     string `json:"room_id"      validate:"required,uuid"`
	Number     string `json:"number"       validate:"required,max=20"`
	IoTMeterID string `json:"iot_meter_id" validate:"omitempty,max=64"`
}

func (c *CreateBedRequest) ToModel(user string) model.Bed {
	var meterID *string
	if c.IoTMeterID != "" {
		meterID = &c.IoTMeterID
	}

	return model.Bed{
		ID:         uuid.NewString(),
		RoomID:     c.RoomID,
		Number:     c.Number,
		IsOccupied: false,
		IoTMeterID: meterID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBedRequest struct {
	Number     string `db:"number"       json:"number"       validate:"omitempty,max=20"`
	IoTMeterID string `db:"iot_meter_id" json:"iot_meter_id" validate:"omitempty,max=64"`
}

type RecordReadingRequest struct {
	ReadingDate string `json:"reading_date" validate:"required,datetime=2006-01-02"`
	Units       string `json:"units"        validate:"required"`
}

func (c *RecordReadingRequest) ToModel(bedID, user string) (model.ElectricityReading, error) {
	units, err := decimal.NewFromString(c.Units)
	if err != nil {
		return model.ElectricityReading{}, err
	}

	readingDate, err := time.Parse("2006-01-02", c.ReadingDate)
	if err != nil {
		return model.ElectricityReading{}, err
	}

	return model.ElectricityReading{
		ID:          uuid.NewString(),
		BedID:       bedID,
		ReadingDate: readingDate,
		Units:       units,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type BedResponse struct {
	ID         string `json:"id"`
	RoomID     string `json:"room_id"`
	Number     string `json:"number"`
	IsOccupied bool   `json:"is_occupied"`
	IoTMeterID string `json:"iot_meter_id,omitempty"`
	gDto.Metadata
}

func (r *BedResponse) FromModel(mod model.Bed) {
	r.ID = mod.ID
	r.RoomID = mod.RoomID
	r.Number = mod.Number
	r.IsOccupied = mod.IsOccupied

	if mod.IoTMeterID != nil {
		r.IoTMeterID = *mod.IoTMeterID
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetBedsResponse struct {
	Beds      []BedResponse `json:"beds"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetBedsResponse) FromModels(models []model.Bed, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Beds = make([]BedResponse, len(models))
	for i, mod := range models {
		r.Beds[i].FromModel(mod)
	}
}
