package repository

import (
	"context"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/booking"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	"github.com/Zolbayar-hub/holisticweb/internal/infra/repository/converter"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookingByIDRow, error)
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error) {
	row, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return row.ID, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingRepository) Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBooking(ctx, tx, converter.BookingToUpdateParams(b))
	return affectedOne("booking", "update", n, err)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id int64, status booking.Status, now time.Time) error {
	n, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		ID:        id,
		Status:    status.String(),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	return affectedOne("booking", "update status of", n, err)
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.DeleteBooking(ctx, tx, id)
	return affectedOne("booking", "delete", n, err)
}
