package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/booking"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
)

var ErrInvalidStatusFilter = errs.New("invalid booking status filter")

type BookingFilter struct {
	ListParams
	Status string
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
	ListCalendar(ctx context.Context, from, to *time.Time) ([]*CalendarEvent, error)
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]*ReminderCandidate, error)
}

type BookingQueries interface {
	Get(ctx context.Context, id int64) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
	Calendar(ctx context.Context, from, to *time.Time) ([]*CalendarEvent, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) Get(ctx context.Context, id int64) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter) ([]*BookingView, error) {
	filter.ListParams = filter.ListParams.Normalize()
	if filter.Status != "" {
		if _, err := booking.NewStatus(filter.Status); err != nil {
			return nil, errs.Mark(ErrInvalidStatusFilter, errs.ErrDomainValidation)
		}
	}
	return q.readStore.List(ctx, filter)
}

func (q *bookingQueriesImpl) Calendar(ctx context.Context, from, to *time.Time) ([]*CalendarEvent, error) {
	return q.readStore.ListCalendar(ctx, from, to)
}

// CalendarTitle renders the event label shown on the booking calendar.
func CalendarTitle(customerName, status string) string {
	return fmt.Sprintf("%s (%s)", customerName, status)
}
