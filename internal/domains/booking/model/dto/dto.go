package dto

import (
	"time"

	"github.com/google/uuid"

	"pms/internal/domains/booking/model"
	"pms/shared"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	gModel "pms/shared/model"
	"pms/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID        string `json:"room_id"        validate:"required"`
	CustomerName  string `json:"customer_name"  validate:"required,max=100"`
	CustomerEmail string `json:"customer_email" validate:"required,email,max=100"`
	CheckIn       string `json:"check_in"       validate:"required,dateonly"`
	CheckOut      string `json:"check_out"      validate:"required,dateonly"`
	Notes         string `json:"notes"          validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) ToModel(user string, totalPrice int) (model.Booking, error) {
	startDate, err := time.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	endDate, err := time.Parse(constant.DateOnlyFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        c.RoomID,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        model.StatusConfirmed,
		TotalPrice:    totalPrice,
		Notes:         c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type CancelBookingRequest struct {
	Status string `db:"status" validate:"required,oneof=cancelled"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	RoomID        string `json:"room_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Nights        int    `json:"nights"`
	Status        string `json:"status"`
	TotalPrice    int    `json:"total_price"`
	Notes         string `json:"notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.RoomID = mod.RoomID
	r.CustomerName = mod.CustomerName
	r.CustomerEmail = mod.CustomerEmail
	r.StartDate = mod.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = mod.EndDate.Format(constant.DateOnlyFormat)
	r.Nights = nights(mod)
	r.Status = mod.Status
	r.TotalPrice = mod.TotalPrice
	r.Notes = mod.Notes
	r.Metadata.FromModel(mod.Metadata)
}

func nights(mod model.Booking) int {
	n := int(mod.EndDate.Sub(mod.StartDate).Hours() / 24)
	if n < 1 {
		return 1
	}

	return n
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// CalendarCell is one room/day slot of the occupancy grid. BookingID is empty
// when the room is free that day.
type CalendarCell struct {
	Date         string `json:"date"`
	BookingID    string `json:"booking_id,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
	Status       string `json:"status,omitempty"`
}

type CalendarRow struct {
	RoomID   string         `json:"room_id"`
	RoomName string         `json:"room_name"`
	RoomType string         `json:"room_type"`
	Cells    []CalendarCell `json:"cells"`
}

type CalendarResponse struct {
	Days []string      `json:"days"`
	Rows []CalendarRow `json:"rows"`
}

// BookingEvent is the payload published to Kafka when a booking is created or
// cancelled.
type BookingEvent struct {
	Type          string    `json:"type"`
	BookingID     string    `json:"booking_id"`
	RoomID        string    `json:"room_id"`
	CustomerEmail string    `json:"customer_email"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	TotalPrice    int       `json:"total_price"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewBookingEvent(eventType string, mod model.Booking) BookingEvent {
	return BookingEvent{
		Type:          eventType,
		BookingID:     mod.ID,
		RoomID:        mod.RoomID,
		CustomerEmail: mod.CustomerEmail,
		CheckIn:       mod.StartDate.Format(constant.DateOnlyFormat),
		CheckOut:      mod.EndDate.Format(constant.DateOnlyFormat),
		TotalPrice:    mod.TotalPrice,
		OccurredAt:    timezone.Now(),
	}
}
