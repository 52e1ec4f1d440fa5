package model

import "pms/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldName          = "name"
	FieldType          = "type"
	FieldPricePerNight = "price_per_night"
	FieldStatus        = "status"
	FieldHotelID       = "hotel_id"
	FieldImageURL      = "image_url"
)

const (
	TypeSimple = "simple"
	TypeDouble = "double"
	TypeSuite  = "suite"
	TypeDeluxe = "deluxe"
)

const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
)

type Room struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Type          string `db:"type"`
	PricePerNight int    `db:"price_per_night"`
	Status        string `db:"status"`
	HotelID       string `db:"hotel_id"`
	ImageURL      string `db:"image_url"`
	model.Metadata
}
