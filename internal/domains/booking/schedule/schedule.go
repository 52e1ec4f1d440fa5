// Package schedule holds the date arithmetic behind room availability and the
// occupancy calendar. Stays are half-open intervals [start, end): a booking
// ending on a day never conflicts with one starting on that same day.
package schedule

import (
	"time"

	"pms/internal/domains/booking/model"
	"pms/shared/constant"
	"pms/shared/failure"
)

// Interval is a date-only half-open range. Both endpoints are YYYY-MM-DD
// strings; the format is fixed-width and zero-padded, so lexicographic
// comparison is equivalent to date comparison.
type Interval struct {
	Start string
	End   string
}

// ParseInterval validates both endpoints as calendar dates. It fails closed:
// an empty or malformed endpoint yields an error, never a zero interval that
// could slip through an availability check.
func ParseInterval(start, end string) (Interval, error) {
	if start == constant.Empty || end == constant.Empty {
		return Interval{}, failure.BadRequestFromString("check-in and check-out dates are required")
	}

	if _, err := time.Parse(constant.DateOnlyFormat, start); err != nil {
		return Interval{}, failure.BadRequestFromString("check-in date must be a calendar date in YYYY-MM-DD form")
	}

	if _, err := time.Parse(constant.DateOnlyFormat, end); err != nil {
		return Interval{}, failure.BadRequestFromString("check-out date must be a calendar date in YYYY-MM-DD form")
	}

	return Interval{Start: start, End: end}, nil
}

// IntervalOf projects a booking's stay onto a date-only interval.
func IntervalOf(booking model.Booking) Interval {
	return Interval{
		Start: booking.StartDate.Format(constant.DateOnlyFormat),
		End:   booking.EndDate.Format(constant.DateOnlyFormat),
	}
}

// IsZero reports whether the interval is missing either endpoint.
func (i Interval) IsZero() bool {
	return i.Start == constant.Empty || i.End == constant.Empty
}

// IsValid reports whether the interval covers at least one night.
func (i Interval) IsValid() bool {
	return !i.IsZero() && i.Start < i.End
}

// Overlaps is the single overlap predicate shared by the availability check
// and the calendar grid. Two half-open intervals overlap iff each starts
// before the other ends.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Covers reports whether the given day falls inside the interval. The end
// date is excluded: a departure day is free for the next arrival.
func (i Interval) Covers(day string) bool {
	return i.Start <= day && day < i.End
}

// Nights returns the length of the stay in nights, floored to 1 so that a
// degenerate interval never produces a zero or negative price.
func (i Interval) Nights() int {
	start, err := time.Parse(constant.DateOnlyFormat, i.Start)
	if err != nil {
		return 1
	}

	end, err := time.Parse(constant.DateOnlyFormat, i.End)
	if err != nil {
		return 1
	}

	nights := int(end.Sub(start).Hours() / 24)
	if nights < 1 {
		return 1
	}

	return nights
}

// IsAvailable decides whether a room is free for the candidate stay given the
// bookings visible to the caller. It filters by room itself, ignores
// cancelled bookings, and fails closed on a zero-value candidate. Pure
// function of its inputs; callers must re-evaluate it against a fresh booking
// set immediately before persisting, because the snapshot may be stale
// relative to concurrent writers.
func IsAvailable(roomID string, candidate Interval, bookings []model.Booking) bool {
	if candidate.IsZero() {
		return false
	}

	for _, booking := range bookings {
		if booking.RoomID != roomID {
			continue
		}

		if booking.Status == model.StatusCancelled {
			continue
		}

		if IntervalOf(booking).Overlaps(candidate) {
			return false
		}
	}

	return true
}

// BookingOnDay returns the non-cancelled booking covering the room on the
// given day, or nil. Under the no-overlap invariant at most one booking
// matches; if the invariant has been violated by a concurrent write the first
// match wins, which degrades the calendar view but never crashes it.
func BookingOnDay(roomID, day string, bookings []model.Booking) *model.Booking {
	for idx := range bookings {
		booking := &bookings[idx]

		if booking.RoomID != roomID {
			continue
		}

		if booking.Status == model.StatusCancelled {
			continue
		}

		if IntervalOf(*booking).Covers(day) {
			return booking
		}
	}

	return nil
}

// Window returns the date keys of n consecutive days starting at from.
func Window(from time.Time, n int) []string {
	days := make([]string, 0, n)

	for i := range n {
		days = append(days, from.AddDate(0, 0, i).Format(constant.DateOnlyFormat))
	}

	return days
}
