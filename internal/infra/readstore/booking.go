package readstore

import (
	"context"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookingByIDRow, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.ListBookingsRow, error)
	ListCalendarBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCalendarBookingsParams) ([]sqlc.ListCalendarBookingsRow, error)
	FindBookingsStartingBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.FindBookingsStartingBetweenParams) ([]sqlc.FindBookingsStartingBetweenRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}

	return &queries.BookingView{
		ID:                 row.ID,
		CustomerName:       row.UserName,
		Email:              row.Email,
		Phone:              pgconv.StringPtrFromPgtype(row.PhoneNumber),
		ServiceID:          pgconv.Int64PtrFromPgtype(row.ServiceID),
		ServiceName:        pgconv.StringPtrFromPgtype(row.ServiceName),
		ServicePriceCents:  pgconv.Int64PtrFromPgtype(row.ServicePriceCents),
		ServiceDescription: pgconv.StringPtrFromPgtype(row.ServiceDescription),
		StartTime:          pgconv.TimeFromPgtype(row.StartTime),
		EndTime:            pgconv.TimeFromPgtype(row.EndTime),
		NumPeople:          row.NumPeople,
		Status:             row.Status,
		AdminNotes:         pgconv.StringPtrFromPgtype(row.AdminNotes),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	search, limit, offset := pageArgs(filter.ListParams)
	rows, err := r.queries.ListBookings(ctx, r.db, sqlc.ListBookingsParams{
		Search:     search,
		Status:     pgconv.OptionalStringToPgtype(filter.Status),
		PageLimit:  limit,
		PageOffset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.BookingView{
			ID:           row.ID,
			CustomerName: row.UserName,
			Email:        row.Email,
			Phone:        pgconv.StringPtrFromPgtype(row.PhoneNumber),
			ServiceID:    pgconv.Int64PtrFromPgtype(row.ServiceID),
			ServiceName:  pgconv.StringPtrFromPgtype(row.ServiceName),
			StartTime:    pgconv.TimeFromPgtype(row.StartTime),
			EndTime:      pgconv.TimeFromPgtype(row.EndTime),
			NumPeople:    row.NumPeople,
			Status:       row.Status,
			AdminNotes:   pgconv.StringPtrFromPgtype(row.AdminNotes),
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views, nil
}

// ListCalendar returns bookings overlapping the range; nil bounds are open.
func (r *BookingReadStore) ListCalendar(ctx context.Context, from, to *time.Time) ([]*queries.CalendarEvent, error) {
	rows, err := r.queries.ListCalendarBookings(ctx, r.db, sqlc.ListCalendarBookingsParams{
		FromTime: pgconv.TimePtrToPgtype(from),
		ToTime:   pgconv.TimePtrToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list calendar bookings", err)
	}

	events := make([]*queries.CalendarEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, &queries.CalendarEvent{
			ID:    row.ID,
			Title: queries.CalendarTitle(row.UserName, row.Status),
			Start: pgconv.TimeFromPgtype(row.StartTime),
			End:   pgconv.TimeFromPgtype(row.EndTime),
		})
	}
	return events, nil
}

func (r *BookingReadStore) FindStartingBetween(ctx context.Context, from, to time.Time) ([]*queries.ReminderCandidate, error) {
	rows, err := r.queries.FindBookingsStartingBetween(ctx, r.db, sqlc.FindBookingsStartingBetweenParams{
		WindowStart: pgconv.TimeToPgtype(from),
		WindowEnd:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings in reminder window", err)
	}

	candidates := make([]*queries.ReminderCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, &queries.ReminderCandidate{
			BookingID:          row.ID,
			CustomerName:       row.UserName,
			Email:              row.Email,
			Phone:              pgconv.StringPtrFromPgtype(row.PhoneNumber),
			ServiceName:        pgconv.StringPtrFromPgtype(row.ServiceName),
			ServicePriceCents:  pgconv.Int64PtrFromPgtype(row.ServicePriceCents),
			ServiceDescription: pgconv.StringPtrFromPgtype(row.ServiceDescription),
			StartTime:          pgconv.TimeFromPgtype(row.StartTime),
			EndTime:            pgconv.TimeFromPgtype(row.EndTime),
			NumPeople:          int(row.NumPeople),
			Status:             row.Status,
		})
	}
	return candidates, nil
}
