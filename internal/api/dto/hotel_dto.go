package dto

import "github.com/spec-kit/booking-service/internal/domain"

// HotelResponse is the public view of a hotel.
type HotelResponse struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Services      []string `json:"services"`
	RoomsQuantity int      `json:"rooms_quantity"`
	ImageID       *int     `json:"image_id"`
}

// RoomResponse is the public view of a room type.
type RoomResponse struct {
	ID          int64    `json:"id"`
	HotelID     int64    `json:"hotel_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       int      `json:"price"`
	Services    []string `json:"services"`
	Quantity    int      `json:"quantity"`
	ImageID     *int     `json:"image_id"`
}

// NewHotelResponse maps a domain hotel.
func NewHotelResponse(h *domain.Hotel) HotelResponse {
	return HotelResponse{
		ID:            h.ID,
		Name:          h.Name,
		Location:      h.Location,
		Services:      nonNil(h.Services),
		RoomsQuantity: h.RoomsQuantity,
		ImageID:       h.ImageID,
	}
}

// NewHotelListResponse maps domain hotels.
func NewHotelListResponse(hotels []domain.Hotel) []HotelResponse {
	result := make([]HotelResponse, 0, len(hotels))
	for i := range hotels {
		result = append(result, NewHotelResponse(&hotels[i]))
	}
	return result
}

// NewRoomListResponse maps domain rooms.
func NewRoomListResponse(rooms []domain.Room) []RoomResponse {
	result := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, RoomResponse{
			ID:          r.ID,
			HotelID:     r.HotelID,
			Name:        r.Name,
			Description: r.Description,
			Price:       r.Price,
			Services:    nonNil(r.Services),
			Quantity:    r.Quantity,
			ImageID:     r.ImageID,
		})
	}
	return result
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
