package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"basera/internal/domains/property/model"
	"basera/shared"
	gDto "basera/shared/dto"
	gModel "basera/shared/model"
	"basera/shared/timezone"
)

type CreatePropertyRequest struct {
	Name              string `json:"name"               validate:"required,max=100"`
	Address           string `json:"address"            validate:"required"`
	OwnerID           string `json:"owner_id"           validate:"required,uuid"`
	ManagerID         string `json:"manager_id"         validate:"omitempty,uuid"`
	PreferredLanguage string `json:"preferred_language" validate:"omitempty,oneof=EN HI TE"`
}

func (c *CreatePropertyRequest) ToModel(user string) model.Property {
	language := "EN"
	if c.PreferredLanguage != "" {
		language = c.PreferredLanguage
	}

	var managerID *string
	if c.ManagerID != "" {
		managerID = &c.ManagerID
	}

	return model.Property{
		ID:                uuid.NewString(),
		Name:              c.Name,
		Address:           c.Address,
		OwnerID:           c.OwnerID,
		ManagerID:         managerID,
		HygieneRating:     decimal.Zero,
		PreferredLanguage: language,
		Active:            true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePropertyRequest struct {
	Name              string `db:"name"               json:"name"               validate:"omitempty,max=100"`
	Address           string `db:"address"            json:"address"            validate:"omitempty"`
	ManagerID         string `db:"manager_id"         json:"manager_id"         validate:"omitempty,uuid"`
	PreferredLanguage string `db:"preferred_language" json:"preferred_language" validate:"omitempty,oneof=EN HI TE"`
}

type PropertyResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Address           string `json:"address"`
	OwnerID           string `json:"owner_id"`
	ManagerID         string `json:"manager_id,omitempty"`
	HygieneRating     string `json:"hygiene_rating"`
	PreferredLanguage string `json:"preferred_language"`
	Active            bool   `json:"active"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(mod model.Property) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Address = mod.Address
	r.OwnerID = mod.OwnerID

	if mod.ManagerID != nil {
		r.ManagerID = *mod.ManagerID
	}

	r.HygieneRating = mod.HygieneRating.StringFixed(2)
	r.PreferredLanguage = mod.PreferredLanguage
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}
