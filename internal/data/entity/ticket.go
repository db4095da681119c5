package entity

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type TicketType struct {
	Base
	Name          string `db:"name"`
	Price         int    `db:"price"`
	IsRemote      bool   `db:"is_remote"`
	IncludesHotel bool   `db:"includes_hotel"`
}

type Ticket struct {
	Base
	EnrollmentID int          `db:"enrollment_id"`
	TicketTypeID int          `db:"ticket_type_id"`
	Status       TicketStatus `db:"status"`

	// TicketType is populated by TicketRepository.FindWithTypeByID.
	TicketType *TicketType `db:"-"`
}
