//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/booking"
	reqdto "github.com/Zolbayar-hub/holisticweb/internal/handler/dto/request"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

type BookingBuilder struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	ServiceID *int64
	Start     time.Time
	End       time.Time
	NumPeople int
	Status    string
	Now       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	serviceID := int64(1)
	return &BookingBuilder{
		ID:        1,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "5551234567",
		ServiceID: &serviceID,
		Start:     start,
		End:       start.Add(time.Hour),
		NumPeople: 1,
		Status:    string(booking.StatusPending),
		Now:       start.Add(-48 * time.Hour),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	customer, err := booking.NewCustomer(b.Name, b.Email, b.Phone)
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewTimeSlot(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(customer, b.ServiceID, slot, b.NumPeople, b.Now)
}

// BuildStored returns a booking as it would come back from the repository.
func (b *BookingBuilder) BuildStored() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID,
		booking.ReconstructCustomer(b.Name, b.Email, b.Phone),
		b.ServiceID,
		booking.ReconstructTimeSlot(b.Start, b.End),
		b.NumPeople,
		booking.Status(b.Status),
		booking.Note{},
		b.Now,
		b.Now,
	)
}

func (b *BookingBuilder) BuildInput() commands.BookingInput {
	return commands.BookingInput{
		CustomerName: b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		ServiceID:    b.ServiceID,
		Start:        b.Start,
		End:          b.End,
		NumPeople:    b.NumPeople,
		Status:       b.Status,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	phone := b.Phone
	numPeople := b.NumPeople
	return reqdto.CreateBookingRequest{
		UserName:    b.Name,
		Email:       b.Email,
		PhoneNumber: &phone,
		ServiceID:   b.ServiceID,
		StartTime:   b.Start.Format(time.RFC3339),
		EndTime:     b.End.Format(time.RFC3339),
		NumPeople:   &numPeople,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	phone := b.Phone
	name := "Reiki Session"
	price := int64(5000)
	return &queries.BookingView{
		ID:                b.ID,
		CustomerName:      b.Name,
		Email:             b.Email,
		Phone:             &phone,
		ServiceID:         b.ServiceID,
		ServiceName:       &name,
		ServicePriceCents: &price,
		StartTime:         b.Start,
		EndTime:           b.End,
		NumPeople:         int32(b.NumPeople),
		Status:            b.Status,
		CreatedAt:         b.Now,
		UpdatedAt:         b.Now,
	}
}

func (b *BookingBuilder) BuildReminderCandidate() *queries.ReminderCandidate {
	phone := b.Phone
	name := "Reiki Session"
	return &queries.ReminderCandidate{
		BookingID:    b.ID,
		CustomerName: b.Name,
		Email:        b.Email,
		Phone:        &phone,
		ServiceName:  &name,
		StartTime:    b.Start,
		EndTime:      b.End,
		Status:       b.Status,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithName(name string) *BookingBuilder {
	b.Name = name
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithPhone(phone string) *BookingBuilder {
	b.Phone = phone
	return b
}

func (b *BookingBuilder) WithoutService() *BookingBuilder {
	b.ServiceID = nil
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithNumPeople(n int) *BookingBuilder {
	b.NumPeople = n
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}
