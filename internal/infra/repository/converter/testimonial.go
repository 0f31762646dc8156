package converter

import (
	"github.com/Zolbayar-hub/holisticweb/internal/domain/testimonial"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
)

func TestimonialToCreateParams(t *testimonial.Testimonial) sqlc.CreateTestimonialParams {
	return sqlc.CreateTestimonialParams{
		ClientName:      t.ClientName(),
		ClientTitle:     pgconv.OptionalStringToPgtype(t.ClientTitle()),
		TestimonialText: t.Text().String(),
		Rating:          int16(t.Rating().Value()), // #nosec G115 -- rating is 1..5
		Email:           pgconv.OptionalStringToPgtype(t.Email()),
		IsApproved:      t.IsApproved(),
		IsFeatured:      t.IsFeatured(),
		ApprovedAt:      pgconv.TimePtrToPgtype(t.ApprovedAt()),
		ApprovedBy:      pgconv.OptionalStringToPgtype(t.ApprovedBy()),
		CreatedAt:       pgconv.TimeToPgtype(t.CreatedAt()),
	}
}

func TestimonialToUpdateParams(t *testimonial.Testimonial) sqlc.UpdateTestimonialParams {
	return sqlc.UpdateTestimonialParams{
		ID:              t.ID(),
		ClientName:      t.ClientName(),
		ClientTitle:     pgconv.OptionalStringToPgtype(t.ClientTitle()),
		TestimonialText: t.Text().String(),
		Rating:          int16(t.Rating().Value()), // #nosec G115 -- rating is 1..5
		Email:           pgconv.OptionalStringToPgtype(t.Email()),
		IsApproved:      t.IsApproved(),
		IsFeatured:      t.IsFeatured(),
		ApprovedAt:      pgconv.TimePtrToPgtype(t.ApprovedAt()),
		ApprovedBy:      pgconv.OptionalStringToPgtype(t.ApprovedBy()),
		UpdatedAt:       pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}

func TestimonialFromRow(row sqlc.Testimonials) *testimonial.Testimonial {
	return testimonial.ReconstructTestimonial(
		row.ID,
		row.ClientName,
		pgconv.StringFromPgtype(row.ClientTitle),
		testimonial.ReconstructText(row.TestimonialText),
		testimonial.ReconstructRating(int(row.Rating)),
		pgconv.StringFromPgtype(row.Email),
		row.IsApproved,
		row.IsFeatured,
		pgconv.TimePtrFromPgtype(row.ApprovedAt),
		pgconv.StringFromPgtype(row.ApprovedBy),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
