package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/booking"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/metrics"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/shared"
)

const eventPublishTimeout = 5 * time.Second

// BookingCreatedEvent is published to the broker after a booking commits.
type BookingCreatedEvent struct {
	BookingID    int64     `json:"booking_id"`
	CustomerName string    `json:"user_name"`
	Email        string    `json:"email"`
	ServiceID    *int64    `json:"service_id,omitempty"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error
}

type BookingNotifier interface {
	BookingCreated(ctx context.Context, customerEmail, phone string, tokens notification.Tokens) (int, error)
}

type BookingInput struct {
	CustomerName string
	Email        string
	Phone        string
	ServiceID    *int64
	Start        time.Time
	End          time.Time
	NumPeople    int
	// Status and AdminNotes are only honored on admin paths.
	Status     string
	AdminNotes string
}

type BookingResult struct {
	ID     int64
	Status string
}

type BookingCommands interface {
	// Create stores a pending booking and queues its notifications.
	Create(ctx context.Context, in BookingInput) (*BookingResult, error)
	// AdminCreate stores a booking entered from the back office without notifying anyone.
	AdminCreate(ctx context.Context, in BookingInput) (*BookingResult, error)
	Update(ctx context.Context, id int64, in BookingInput) error
	ChangeStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	notifier  BookingNotifier
	publisher EventPublisher
	formatter *notify.TokenFormatter
	clock     clock.Clock
	logger    *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	notifier BookingNotifier,
	publisher EventPublisher,
	formatter *notify.TokenFormatter,
	clock clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:       uow,
		notifier:  notifier,
		publisher: publisher,
		formatter: formatter,
		clock:     clock,
		logger:    logger,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, in BookingInput) (*BookingResult, error) {
	in.Status = ""
	in.AdminNotes = ""

	b, svc, err := c.build(ctx, in)
	if err != nil {
		return nil, err
	}

	id, err := c.insert(ctx, b)
	if err != nil {
		return nil, err
	}

	c.afterCreate(ctx, id, b, svc)
	return &BookingResult{ID: id, Status: b.Status().String()}, nil
}

func (c *bookingCommandsImpl) AdminCreate(ctx context.Context, in BookingInput) (*BookingResult, error) {
	b, _, err := c.build(ctx, in)
	if err != nil {
		return nil, err
	}

	id, err := c.insert(ctx, b)
	if err != nil {
		return nil, err
	}
	return &BookingResult{ID: id, Status: b.Status().String()}, nil
}

func (c *bookingCommandsImpl) Update(ctx context.Context, id int64, in BookingInput) error {
	customer, slot, err := parseBookingParts(in)
	if err != nil {
		return err
	}
	if _, err := c.lookupService(ctx, in.ServiceID); err != nil {
		return err
	}
	note, err := booking.NewNote(in.AdminNotes)
	if err != nil {
		return validationErr(err)
	}

	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return mapRepoErr(err, errs.ErrBookingNotFound)
		}

		if err := b.UpdateDetails(customer, in.ServiceID, in.NumPeople, now); err != nil {
			return validationErr(err)
		}
		b.Reschedule(slot, now)
		b.AnnotateForAdmin(note, now)
		if in.Status != "" {
			status, err := booking.NewStatus(in.Status)
			if err != nil {
				return validationErr(err)
			}
			if err := b.ChangeStatus(status, now); err != nil {
				return validationErr(err)
			}
		}

		return mapRepoErr(tx.Bookings().Update(ctx, tx.DB(), b), errs.ErrBookingNotFound)
	})
}

func (c *bookingCommandsImpl) ChangeStatus(ctx context.Context, id int64, status string) error {
	s, err := booking.NewStatus(status)
	if err != nil {
		return validationErr(err)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Bookings().UpdateStatus(ctx, tx.DB(), id, s, c.clock.Now())
		return mapRepoErr(err, errs.ErrBookingNotFound)
	})
}

func (c *bookingCommandsImpl) Delete(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapRepoErr(tx.Bookings().Delete(ctx, tx.DB(), id), errs.ErrBookingNotFound)
	})
}

func (c *bookingCommandsImpl) build(ctx context.Context, in BookingInput) (*booking.Booking, *shared.ServiceSnapshot, error) {
	customer, slot, err := parseBookingParts(in)
	if err != nil {
		return nil, nil, err
	}

	svc, err := c.lookupService(ctx, in.ServiceID)
	if err != nil {
		return nil, nil, err
	}

	now := c.clock.Now()
	b, err := booking.NewBooking(customer, in.ServiceID, slot, in.NumPeople, now)
	if err != nil {
		return nil, nil, validationErr(err)
	}

	if in.Status != "" {
		status, err := booking.NewStatus(in.Status)
		if err != nil {
			return nil, nil, validationErr(err)
		}
		_ = b.ChangeStatus(status, now)
	}
	if in.AdminNotes != "" {
		note, err := booking.NewNote(in.AdminNotes)
		if err != nil {
			return nil, nil, validationErr(err)
		}
		b.AnnotateForAdmin(note, now)
	}
	return b, svc, nil
}

func (c *bookingCommandsImpl) insert(ctx context.Context, b *booking.Booking) (int64, error) {
	var id int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, errs.ErrServiceNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	metrics.IncBookingCreated(b.Status().String())
	return id, nil
}

func (c *bookingCommandsImpl) lookupService(ctx context.Context, serviceID *int64) (*shared.ServiceSnapshot, error) {
	if serviceID == nil {
		return nil, nil
	}
	svc, err := c.uow.CommandReads().ServiceByID(ctx, *serviceID)
	if err != nil {
		return nil, mapRepoErr(err, errs.ErrServiceNotFound)
	}
	return svc, nil
}

// afterCreate never fails the request: the booking is already committed.
func (c *bookingCommandsImpl) afterCreate(ctx context.Context, id int64, b *booking.Booking, svc *shared.ServiceSnapshot) {
	details := notify.BookingDetails{
		BookingID:    id,
		CustomerName: b.Customer().Name(),
		Email:        b.Customer().Email(),
		Phone:        b.Customer().Phone(),
		Start:        b.TimeSlot().Start(),
		End:          b.TimeSlot().End(),
		Status:       b.Status().String(),
		NumPeople:    b.NumPeople(),
	}
	if svc != nil {
		details.ServiceName = svc.Name
		details.ServiceDescription = svc.Description
		details.ServicePriceCents = &svc.PriceCents
	}

	if _, err := c.notifier.BookingCreated(ctx, details.Email, details.Phone, c.formatter.BookingTokens(details)); err != nil {
		c.logger.Error("failed to queue booking notifications", "booking_id", id, "error", err.Error())
	}

	event := BookingCreatedEvent{
		BookingID:    id,
		CustomerName: details.CustomerName,
		Email:        details.Email,
		ServiceID:    b.ServiceID(),
		StartTime:    details.Start,
		EndTime:      details.End,
		Status:       details.Status,
		CreatedAt:    b.CreatedAt(),
	}
	go func() {
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
		defer cancel()
		if err := c.publisher.PublishBookingCreated(pubCtx, event); err != nil {
			c.logger.Warn("failed to publish booking event", "booking_id", id, "error", err.Error())
		}
	}()
}

func parseBookingParts(in BookingInput) (booking.Customer, booking.TimeSlot, error) {
	customer, err := booking.NewCustomer(in.CustomerName, in.Email, in.Phone)
	if err != nil {
		return booking.Customer{}, booking.TimeSlot{}, validationErr(err)
	}
	slot, err := booking.NewTimeSlot(in.Start, in.End)
	if err != nil {
		return booking.Customer{}, booking.TimeSlot{}, validationErr(err)
	}
	return customer, slot, nil
}
