package domain

// Room is a room type offered by a hotel.
type Room struct {
	ID          int64
	HotelID     int64
	Name        string
	Description *string
	Price       int
	Services    []string
	Quantity    int
	ImageID     *int
}
