package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"pms/internal/domains/room/model"
	"pms/shared"
	gDto "pms/shared/dto"
	gModel "pms/shared/model"
	"pms/shared/timezone"
)

type CreateRoomRequest struct {
	Name          string                `json:"name"            validate:"required,max=100"`
	Type          string                `json:"type"            validate:"required,oneof=simple double suite deluxe"`
	PricePerNight int                   `json:"price_per_night" validate:"required,gt=0"`
	Status        string                `json:"status"          validate:"omitempty,oneof=available occupied"`
	Image         *multipart.FileHeader `json:"image"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile     multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user, hotelID, imageURL string) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Type:          c.Type,
		PricePerNight: c.PricePerNight,
		Status:        status,
		HotelID:       hotelID,
		ImageURL:      imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name          string                `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Type          string                `db:"type"            json:"type"            validate:"omitempty,oneof=simple double suite deluxe"`
	PricePerNight *int                  `db:"price_per_night" json:"price_per_night" validate:"omitempty,gt=0"`
	Status        string                `db:"status"          json:"status"          validate:"omitempty,oneof=available occupied"`
	Image         *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile     multipart.File        `json:"-"`
}

type RoomResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	PricePerNight int    `json:"price_per_night"`
	Status        string `json:"status"`
	HotelID       string `json:"hotel_id"`
	ImageURL      string `json:"image_url,omitempty"`
	// Available reports whether the room is free for the requested stay; nil
	// when the caller did not ask for a date range.
	Available  *bool `json:"available,omitempty"`
	TotalPrice *int  `json:"total_price,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Type = mod.Type
	r.PricePerNight = mod.PricePerNight
	r.Status = mod.Status
	r.HotelID = mod.HotelID
	r.ImageURL = mod.ImageURL
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
