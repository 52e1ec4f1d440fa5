package model

import (
	"time"

	"pms/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldRoomID        = "room_id"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
	FieldStatus        = "status"
	FieldTotalPrice    = "total_price"
	FieldNotes         = "notes"
)

// Booking statuses form a closed set: cancelled is terminal and never blocks
// room availability.
const (
	EventCreated   = "booking.created"
	EventCancelled = "booking.cancelled"
)

const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID            string    `db:"id"`
	RoomID        string    `db:"room_id"`
	CustomerName  string    `db:"customer_name"`
	CustomerEmail string    `db:"customer_email"`
	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
	Status        string    `db:"status"`
	TotalPrice    int       `db:"total_price"`
	Notes         string    `db:"notes"`
	model.Metadata
}
