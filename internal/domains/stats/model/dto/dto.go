package dto

// OverviewResponse holds the dashboard counters shown on the staff landing
// page.
type OverviewResponse struct {
	TotalRooms     int     `json:"total_rooms"`
	AvailableRooms int     `json:"available_rooms"`
	ActiveBookings int     `json:"active_bookings"`
	Customers      int     `json:"customers"`
	OccupancyRate  float64 `json:"occupancy_rate"`
}
