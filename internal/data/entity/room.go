package entity

// Room belongs to the hotel catalogue; this service only reads it.
type Room struct {
	Base
	Name     string `db:"name" json:"name"`
	Capacity int    `db:"capacity" json:"capacity"`
	HotelID  int    `db:"hotel_id" json:"hotelId"`
}
