package usecase

type ResultKind int

const (
	ResultCreated ResultKind = iota + 1
	ResultUpdated
	ResultForbidden
)

func (k ResultKind) String() string {
	switch k {
	case ResultCreated:
		return "created"
	case ResultUpdated:
		return "updated"
	case ResultForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// ForbiddenReason says which business rule rejected a booking action.
type ForbiddenReason string

const (
	ReasonNoTicket      ForbiddenReason = "user has no ticket"
	ReasonTicketNotPaid ForbiddenReason = "ticket is not paid"
	ReasonNoHotel       ForbiddenReason = "ticket type does not include hotel"
	ReasonRemoteTicket  ForbiddenReason = "ticket type is remote"
	ReasonAlreadyBooked ForbiddenReason = "user already has a booking"
	ReasonRoomFull      ForbiddenReason = "room is at full capacity"
	ReasonNoBooking     ForbiddenReason = "user has no booking"
	ReasonNotOwner      ForbiddenReason = "booking does not belong to user"
)

// BookingResult is the outcome of a booking write that did not error.
// BookingID is set for ResultCreated and ResultUpdated, Reason for
// ResultForbidden.
type BookingResult struct {
	Kind      ResultKind
	BookingID int
	Reason    ForbiddenReason
}

func created(bookingID int) BookingResult {
	return BookingResult{Kind: ResultCreated, BookingID: bookingID}
}

func updated(bookingID int) BookingResult {
	return BookingResult{Kind: ResultUpdated, BookingID: bookingID}
}

func forbidden(reason ForbiddenReason) BookingResult {
	return BookingResult{Kind: ResultForbidden, Reason: reason}
}

func (r BookingResult) Forbidden() bool {
	return r.Kind == ResultForbidden
}
