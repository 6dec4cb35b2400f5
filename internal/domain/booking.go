package domain

import "time"

// Booking reserves a room for a user between two dates.
// TotalCost and TotalDays are computed by the database.
type Booking struct {
	ID        int64
	RoomID    *int64
	UserID    *int64
	DateFrom  time.Time
	DateTo    time.Time
	Price     int
	TotalCost int
	TotalDays int
}
