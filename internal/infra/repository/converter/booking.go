package converter

import (
	"github.com/Zolbayar-hub/holisticweb/internal/domain/booking"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		UserName:    b.Customer().Name(),
		Email:       b.Customer().Email(),
		PhoneNumber: pgconv.OptionalStringToPgtype(b.Customer().Phone()),
		ServiceID:   pgconv.Int64PtrToPgtype(b.ServiceID()),
		StartTime:   pgconv.TimeToPgtype(b.TimeSlot().Start()),
		EndTime:     pgconv.TimeToPgtype(b.TimeSlot().End()),
		NumPeople:   int32(b.NumPeople()), // #nosec G115 -- bounded by MaxPartySize
		Status:      b.Status().String(),
		AdminNotes:  pgconv.OptionalStringToPgtype(b.AdminNotes().String()),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:          b.ID(),
		UserName:    b.Customer().Name(),
		Email:       b.Customer().Email(),
		PhoneNumber: pgconv.OptionalStringToPgtype(b.Customer().Phone()),
		ServiceID:   pgconv.Int64PtrToPgtype(b.ServiceID()),
		StartTime:   pgconv.TimeToPgtype(b.TimeSlot().Start()),
		EndTime:     pgconv.TimeToPgtype(b.TimeSlot().End()),
		NumPeople:   int32(b.NumPeople()), // #nosec G115 -- bounded by MaxPartySize
		Status:      b.Status().String(),
		AdminNotes:  pgconv.OptionalStringToPgtype(b.AdminNotes().String()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.GetBookingByIDRow) *booking.Booking {
	return booking.ReconstructBooking(
		row.ID,
		booking.ReconstructCustomer(row.UserName, row.Email, pgconv.StringFromPgtype(row.PhoneNumber)),
		pgconv.Int64PtrFromPgtype(row.ServiceID),
		booking.ReconstructTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime)),
		int(row.NumPeople),
		booking.Status(row.Status),
		booking.ReconstructNote(pgconv.StringFromPgtype(row.AdminNotes)),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
