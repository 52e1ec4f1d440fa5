package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pms/internal/domains/booking/model"
	"pms/internal/domains/booking/schedule"
	"pms/shared/constant"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(constant.DateOnlyFormat, value)
	assert.NoError(t, err)

	return parsed
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{
			name:  "valid interval",
			start: "2026-03-10",
			end:   "2026-03-12",
		},
		{
			name:    "empty start",
			start:   "",
			end:     "2026-03-12",
			wantErr: true,
		},
		{
			name:    "empty end",
			start:   "2026-03-10",
			end:     "",
			wantErr: true,
		},
		{
			name:    "malformed start",
			start:   "10-03-2026",
			end:     "2026-03-12",
			wantErr: true,
		},
		{
			name:    "malformed end",
			start:   "2026-03-10",
			end:     "not-a-date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval, err := schedule.ParseInterval(tt.start, tt.end)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, interval.IsZero())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.start, interval.Start)
				assert.Equal(t, tt.end, interval.End)
			}
		})
	}
}

func TestInterval_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		interval schedule.Interval
		want     bool
	}{
		{
			name:     "one night",
			interval: schedule.Interval{Start: "2026-03-10", End: "2026-03-11"},
			want:     true,
		},
		{
			name:     "equal endpoints cover no night",
			interval: schedule.Interval{Start: "2026-03-10", End: "2026-03-10"},
			want:     false,
		},
		{
			name:     "reversed endpoints",
			interval: schedule.Interval{Start: "2026-03-12", End: "2026-03-10"},
			want:     false,
		},
		{
			name:     "zero interval",
			interval: schedule.Interval{},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.interval.IsValid())
		})
	}
}

func TestInterval_Overlaps(t *testing.T) {
	base := schedule.Interval{Start: "2026-03-10", End: "2026-03-15"}

	tests := []struct {
		name  string
		other schedule.Interval
		want  bool
	}{
		{
			name:  "identical interval",
			other: schedule.Interval{Start: "2026-03-10", End: "2026-03-15"},
			want:  true,
		},
		{
			name:  "contained interval",
			other: schedule.Interval{Start: "2026-03-11", End: "2026-03-13"},
			want:  true,
		},
		{
			name:  "partial overlap at front",
			other: schedule.Interval{Start: "2026-03-08", End: "2026-03-11"},
			want:  true,
		},
		{
			name:  "partial overlap at back",
			other: schedule.Interval{Start: "2026-03-14", End: "2026-03-20"},
			want:  true,
		},
		{
			name:  "starts on checkout day",
			other: schedule.Interval{Start: "2026-03-15", End: "2026-03-18"},
			want:  false,
		},
		{
			name:  "ends on checkin day",
			other: schedule.Interval{Start: "2026-03-05", End: "2026-03-10"},
			want:  false,
		},
		{
			name:  "disjoint before",
			other: schedule.Interval{Start: "2026-03-01", End: "2026-03-05"},
			want:  false,
		},
		{
			name:  "disjoint after",
			other: schedule.Interval{Start: "2026-03-20", End: "2026-03-25"},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestInterval_Covers(t *testing.T) {
	interval := schedule.Interval{Start: "2026-03-10", End: "2026-03-12"}

	assert.True(t, interval.Covers("2026-03-10"))
	assert.True(t, interval.Covers("2026-03-11"))
	assert.False(t, interval.Covers("2026-03-12"))
	assert.False(t, interval.Covers("2026-03-09"))
}

func TestInterval_Nights(t *testing.T) {
	tests := []struct {
		name     string
		interval schedule.Interval
		want     int
	}{
		{
			name:     "two nights",
			interval: schedule.Interval{Start: "2024-01-01", End: "2024-01-03"},
			want:     2,
		},
		{
			name:     "single night",
			interval: schedule.Interval{Start: "2026-03-10", End: "2026-03-11"},
			want:     1,
		},
		{
			name:     "across month boundary",
			interval: schedule.Interval{Start: "2026-02-27", End: "2026-03-02"},
			want:     3,
		},
		{
			name:     "equal endpoints floor to one",
			interval: schedule.Interval{Start: "2026-03-10", End: "2026-03-10"},
			want:     1,
		},
		{
			name:     "unparsable endpoint floors to one",
			interval: schedule.Interval{Start: "garbage", End: "2026-03-10"},
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.interval.Nights())
		})
	}
}

func TestIsAvailable(t *testing.T) {
	booked := func(t *testing.T, roomID, start, end, status string) model.Booking {
		t.Helper()

		return model.Booking{
			ID:        "booking-" + roomID + start,
			RoomID:    roomID,
			StartDate: mustDate(t, start),
			EndDate:   mustDate(t, end),
			Status:    status,
		}
	}

	tests := []struct {
		name      string
		roomID    string
		candidate schedule.Interval
		bookings  []model.Booking
		want      bool
	}{
		{
			name:      "no bookings at all",
			roomID:    "room-1",
			candidate: schedule.Interval{Start: "2026-03-10", End: "2026-03-12"},
			want:      true,
		},
		{
			name:      "overlapping booking blocks the stay",
			roomID:    "room-1",
			candidate: schedule.Interval{Start: "2026-03-10", End: "2026-03-12"},
			bookings: []model.Booking{
				booked(t, "room-1", "2026-03-11", "2026-03-14", model.StatusConfirmed),
			},
			want: false,
		},
		{
			name:      "back to back stays do not collide",
			roomID:    "room-1",
			candidate: schedule.Interval{Start: "2026-03-12", End: "2026-03-14"},
			bookings: []model.Booking{
				booked(t, "room-1", "2026-03-10", "2026-03-12", model.StatusConfirmed),
			},
			want: true,
		},
		{
			name:      "cancelled booking frees the room",
			roomID:    "room-1",
			candidate: schedule.Interval{Start: "2026-03-10", End: "2026-03-12"},
			bookings: []model.Booking{
				booked(t, "room-1", "2026-03-10", "2026-03-12", model.StatusCancelled),
			},
			want: true,
		},
		{
			name:      "other rooms never block",
			roomID:    "room-1",
			candidate: schedule.Interval{Start: "2026-03-10", End: "2026-03-12"},
			bookings: []model.Booking{
				booked(t, "room-2", "2026-03-10", "2026-03-12", model.StatusConfirmed),
			},
			want: true,
		},
		{
			name:      "zero candidate fails closed",
			roomID:    "room-1",
			candidate: schedule.Interval{},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.IsAvailable(tt.roomID, tt.candidate, tt.bookings))
		})
	}
}

func TestBookingOnDay(t *testing.T) {
	bookings := []model.Booking{
		{
			ID:        "booking-1",
			RoomID:    "room-1",
			StartDate: mustDate(t, "2026-03-10"),
			EndDate:   mustDate(t, "2026-03-12"),
			Status:    model.StatusConfirmed,
		},
		{
			ID:        "booking-2",
			RoomID:    "room-1",
			StartDate: mustDate(t, "2026-03-12"),
			EndDate:   mustDate(t, "2026-03-14"),
			Status:    model.StatusCancelled,
		},
	}

	t.Run("day inside stay", func(t *testing.T) {
		found := schedule.BookingOnDay("room-1", "2026-03-11", bookings)
		assert.NotNil(t, found)
		assert.Equal(t, "booking-1", found.ID)
	})

	t.Run("checkout day is free", func(t *testing.T) {
		assert.Nil(t, schedule.BookingOnDay("room-1", "2026-03-12", bookings))
	})

	t.Run("cancelled booking is invisible", func(t *testing.T) {
		assert.Nil(t, schedule.BookingOnDay("room-1", "2026-03-13", bookings))
	})

	t.Run("unknown room", func(t *testing.T) {
		assert.Nil(t, schedule.BookingOnDay("room-9", "2026-03-11", bookings))
	})
}

func TestWindow(t *testing.T) {
	from := mustDate(t, "2026-02-27")

	days := schedule.Window(from, 4)

	assert.Equal(t, []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}, days)
}
