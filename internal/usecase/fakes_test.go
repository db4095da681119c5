package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
)

// memStore backs the fake repositories below.
type memStore struct {
	rooms       map[int]*entity.Room
	bookings    map[int]*entity.Booking
	enrollments map[int]*entity.Enrollment // by user id
	tickets     map[int]*entity.Ticket     // by enrollment id
	ticketTypes map[int]*entity.TicketType
	nextID      int

	failBookingLookup error
	txCalls           int
	lockedRooms       []int
}

func newMemStore() *memStore {
	return &memStore{
		rooms:       map[int]*entity.Room{},
		bookings:    map[int]*entity.Booking{},
		enrollments: map[int]*entity.Enrollment{},
		tickets:     map[int]*entity.Ticket{},
		ticketTypes: map[int]*entity.TicketType{},
		nextID:      100,
	}
}

func (m *memStore) repository() *repository.Repository {
	return &repository.Repository{
		Booking:    &fakeBookingRepo{m},
		Room:       &fakeRoomRepo{m},
		Enrollment: &fakeEnrollmentRepo{m},
		Ticket:     &fakeTicketRepo{m},
		Tx:         &fakeTx{m},
	}
}

func (m *memStore) id() int {
	m.nextID++
	return m.nextID
}

func (m *memStore) addRoom(capacity int) *entity.Room {
	room := &entity.Room{Base: entity.Base{ID: m.id()}, Name: "Room", Capacity: capacity, HotelID: 1}
	m.rooms[room.ID] = room
	return room
}

func (m *memStore) addBooking(userID, roomID int) *entity.Booking {
	booking := &entity.Booking{Base: entity.Base{ID: m.id()}, UserID: userID, RoomID: roomID}
	m.bookings[booking.ID] = booking
	return booking
}

// addTicket enrolls userID and gives them a ticket of the given kind.
func (m *memStore) addTicket(userID int, status entity.TicketStatus, includesHotel, isRemote bool) {
	enrollment := &entity.Enrollment{Base: entity.Base{ID: m.id()}, UserID: userID}
	m.enrollments[userID] = enrollment

	ticketType := &entity.TicketType{Base: entity.Base{ID: m.id()}, IncludesHotel: includesHotel, IsRemote: isRemote}
	m.ticketTypes[ticketType.ID] = ticketType

	m.tickets[enrollment.ID] = &entity.Ticket{
		Base:         entity.Base{ID: m.id()},
		EnrollmentID: enrollment.ID,
		TicketTypeID: ticketType.ID,
		Status:       status,
	}
}

func (m *memStore) addEligibleUser(userID int) {
	m.addTicket(userID, entity.TicketStatusPaid, true, false)
}

type fakeBookingRepo struct{ m *memStore }

func (r *fakeBookingRepo) FindByUserID(_ context.Context, userID int) (*entity.Booking, error) {
	if r.m.failBookingLookup != nil {
		return nil, r.m.failBookingLookup
	}
	ids := make([]int, 0, len(r.m.bookings))
	for id := range r.m.bookings {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if b := r.m.bookings[id]; b.UserID == userID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) Create(_ context.Context, roomID, userID int) (*entity.Booking, error) {
	for _, b := range r.m.bookings {
		if b.UserID == userID {
			return nil, repository.ErrDuplicate
		}
	}
	b := r.m.addBooking(userID, roomID)
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) UpdateRoom(_ context.Context, roomID, bookingID int) (*entity.Booking, error) {
	b, ok := r.m.bookings[bookingID]
	if !ok {
		return nil, nil
	}
	b.RoomID = roomID
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) FindByRoomID(_ context.Context, roomID int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range r.m.bookings {
		if b.RoomID == roomID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeRoomRepo struct{ m *memStore }

func (r *fakeRoomRepo) FindByID(_ context.Context, id int) (*entity.Room, error) {
	if id > math.MaxInt32 || id < math.MinInt32 {
		return nil, fmt.Errorf("unable to encode %d into binary format for int4", id)
	}
	room, ok := r.m.rooms[id]
	if !ok {
		return nil, nil
	}
	cp := *room
	return &cp, nil
}

func (r *fakeRoomRepo) FindByIDForUpdate(ctx context.Context, id int) (*entity.Room, error) {
	if !inFakeTx(ctx) {
		return nil, errors.New("room lock outside transaction")
	}
	r.m.lockedRooms = append(r.m.lockedRooms, id)
	return r.FindByID(ctx, id)
}

type fakeEnrollmentRepo struct{ m *memStore }

func (r *fakeEnrollmentRepo) FindByUserID(_ context.Context, userID int) (*entity.Enrollment, error) {
	return r.m.enrollments[userID], nil
}

type fakeTicketRepo struct{ m *memStore }

func (r *fakeTicketRepo) FindByEnrollmentID(_ context.Context, enrollmentID int) (*entity.Ticket, error) {
	ticket, ok := r.m.tickets[enrollmentID]
	if !ok {
		return nil, nil
	}
	cp := *ticket
	cp.TicketType = nil
	return &cp, nil
}

func (r *fakeTicketRepo) FindWithTypeByID(_ context.Context, id int) (*entity.Ticket, error) {
	for _, ticket := range r.m.tickets {
		if ticket.ID == id {
			cp := *ticket
			cp.TicketType = r.m.ticketTypes[ticket.TicketTypeID]
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeTxKey struct{}

type fakeTx struct{ m *memStore }

func (t *fakeTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.m.txCalls++
	return fn(context.WithValue(ctx, fakeTxKey{}, true))
}

func inFakeTx(ctx context.Context) bool {
	v, _ := ctx.Value(fakeTxKey{}).(bool)
	return v
}
