package dto

import (
	"pms/internal/domains/hotel/model"
	gDto "pms/shared/dto"
)

type HotelResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(mod model.Hotel) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Address = mod.Address
	r.City = mod.City
	r.Country = mod.Country
	r.Metadata.FromModel(mod.Metadata)
}

type UpdateHotelRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Address string `db:"address" json:"address" validate:"omitempty,max=200"`
	City    string `db:"city"    json:"city"    validate:"omitempty,max=100"`
	Country string `db:"country" json:"country" validate:"omitempty,max=100"`
}
