package request

// BookingRequest is the body of POST /booking and PUT /booking/{bookingId}.
// RoomID is a pointer so a missing field fails validation while an explicit
// 0 reaches the service and is reported as not found.
type BookingRequest struct {
	RoomID *int `json:"roomId" validate:"required,min=0"`
}
