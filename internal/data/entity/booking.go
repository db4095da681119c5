package entity

type Booking struct {
	Base
	UserID int `db:"user_id"`
	RoomID int `db:"room_id"`

	// Room is populated when the booking is loaded together with its room.
	Room *Room `db:"-"`
}
