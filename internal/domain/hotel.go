package domain

// Hotel is a bookable property.
type Hotel struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Services      []string `json:"services"`
	RoomsQuantity int      `json:"rooms_quantity"`
	ImageID       *int     `json:"image_id,omitempty"`
}

// HotelFilter narrows hotel listings.
type HotelFilter struct {
	Location string
}
