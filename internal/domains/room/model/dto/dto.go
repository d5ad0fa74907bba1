package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"basera/internal/domains/room/model"
	"basera/shared"
	gDto "basera/shared/dto"
	gModel "basera/shared/model"
	"basera/shared/timezone"
)

type CreateRoomRequest struct {
	PropertyID     string `json:"property_id"       validate:"required,uuid"`
	Number         string `json:"number"            validate:"required,max=20"`
	Floor          int    `json:"floor"             validate:"omitempty,min=0"`
	Capacity       int    `json:"capacity"          validate:"required,min=1,max=12"`
	BaseRentPerBed string `json:"base_rent_per_bed" validate:"required"`
}

func (c *CreateRoomRequest) ToModel(user string) (model.Room, error) {
	rent, err := decimal.NewFromString(c.BaseRentPerBed)
	if err != nil {
		return model.Room{}, err
	}

	return model.Room{
		ID:             uuid.NewString(),
		PropertyID:     c.PropertyID,
		Number:         c.Number,
		Floor:          c.Floor,
		Capacity:       c.Capacity,
		BaseRentPerBed: rent,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateRoomRequest struct {
	Number         string `db:"number"            json:"number"            validate:"omitempty,max=20"`
	Floor          int    `db:"floor"             json:"floor"             validate:"omitempty,min=0"`
	Capacity       int    `db:"capacity"          json:"capacity"          validate:"omitempty,min=1,max=12"`
	BaseRentPerBed string `db:"base_rent_per_bed" json:"base_rent_per_bed" validate:"omitempty"`
}

type RoomResponse struct {
	ID             string `json:"id"`
	PropertyID     string `json:"property_id"`
	Number         string `json:"number"`
	Floor          int    `json:"floor"`
	Capacity       int    `json:"capacity"`
	BaseRentPerBed string `json:"base_rent_per_bed"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.PropertyID = mod.PropertyID
	r.Number = mod.Number
	r.Floor = mod.Floor
	r.Capacity = mod.Capacity
	r.BaseRentPerBed = mod.BaseRentPerBed.StringFixed(2)
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
