package response

import "hotel-booking/internal/data/entity"

// BookingResponse is the body of GET /booking.
type BookingResponse struct {
	ID   int          `json:"id"`
	Room *entity.Room `json:"Room"`
}

// BookingIDResponse is the body of POST /booking and PUT /booking/{bookingId}.
type BookingIDResponse struct {
	BookingID int `json:"bookingId"`
}
