package booking

import (
	"time"
)

// Booking is an appointment linking a customer to a service and a time range.
// The service reference is nullable because services may be removed later.
type Booking struct {
	id         int64
	customer   Customer
	serviceID  *int64
	slot       TimeSlot
	numPeople  int
	status     Status
	adminNotes Note
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking creates a booking in the pending state. The id is assigned by the store.
func NewBooking(customer Customer, serviceID *int64, slot TimeSlot, numPeople int, now time.Time) (*Booking, error) {
	if numPeople == 0 {
		numPeople = 1
	}
	if numPeople < 1 || numPeople > MaxPartySize {
		return nil, ErrInvalidPartySize
	}

	return &Booking{
		customer:  customer,
		serviceID: serviceID,
		slot:      slot,
		numPeople: numPeople,
		status:    StatusPending,
		createdAt: now.UTC(),
		updatedAt: now.UTC(),
	}, nil
}

func ReconstructBooking(
	id int64,
	customer Customer,
	serviceID *int64,
	slot TimeSlot,
	numPeople int,
	status Status,
	adminNotes Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		customer:   customer,
		serviceID:  serviceID,
		slot:       slot,
		numPeople:  numPeople,
		status:     status,
		adminNotes: adminNotes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ChangeStatus applies any valid status; admins may move a booking freely between states.
func (b *Booking) ChangeStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	b.status = status
	b.updatedAt = now.UTC()
	return nil
}

func (b *Booking) Cancel(now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	b.updatedAt = now.UTC()
	return nil
}

func (b *Booking) Reschedule(slot TimeSlot, now time.Time) {
	b.slot = slot
	b.updatedAt = now.UTC()
}

func (b *Booking) UpdateDetails(customer Customer, serviceID *int64, numPeople int, now time.Time) error {
	if numPeople == 0 {
		numPeople = 1
	}
	if numPeople < 1 || numPeople > MaxPartySize {
		return ErrInvalidPartySize
	}
	b.customer = customer
	b.serviceID = serviceID
	b.numPeople = numPeople
	b.updatedAt = now.UTC()
	return nil
}

func (b *Booking) AnnotateForAdmin(note Note, now time.Time) {
	b.adminNotes = note
	b.updatedAt = now.UTC()
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) Customer() Customer   { return b.customer }
func (b *Booking) ServiceID() *int64    { return b.serviceID }
func (b *Booking) TimeSlot() TimeSlot   { return b.slot }
func (b *Booking) NumPeople() int       { return b.numPeople }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) AdminNotes() Note     { return b.adminNotes }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
