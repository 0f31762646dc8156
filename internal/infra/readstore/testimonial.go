package readstore

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

type TestimonialViewQueries interface {
	GetTestimonialByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Testimonials, error)
	ListApprovedTestimonials(ctx context.Context, db sqlc.DBTX, arg sqlc.ListApprovedTestimonialsParams) ([]sqlc.Testimonials, error)
	ListTestimonials(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTestimonialsParams) ([]sqlc.Testimonials, error)
}

type TestimonialReadStore struct {
	queries TestimonialViewQueries
	db      sqlc.DBTX
}

func NewTestimonialReadStore(queries TestimonialViewQueries, db sqlc.DBTX) *TestimonialReadStore {
	return &TestimonialReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TestimonialReadStore) FindByID(ctx context.Context, id int64) (*queries.TestimonialView, error) {
	row, err := r.queries.GetTestimonialByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("testimonial not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get testimonial by id", err)
	}
	return toTestimonialView(row), nil
}

func (r *TestimonialReadStore) ListApproved(ctx context.Context, featuredOnly bool, limit int32) ([]*queries.TestimonialView, error) {
	rows, err := r.queries.ListApprovedTestimonials(ctx, r.db, sqlc.ListApprovedTestimonialsParams{
		FeaturedOnly: featuredOnly,
		PageLimit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved testimonials", err)
	}
	return mapTestimonialRows(rows), nil
}

func (r *TestimonialReadStore) List(ctx context.Context, filter queries.TestimonialFilter) ([]*queries.TestimonialView, error) {
	search, limit, offset := pageArgs(filter.ListParams)
	rows, err := r.queries.ListTestimonials(ctx, r.db, sqlc.ListTestimonialsParams{
		Search:     search,
		Approved:   pgconv.BoolPtrToPgtype(filter.Approved),
		PageLimit:  limit,
		PageOffset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list testimonials", err)
	}
	return mapTestimonialRows(rows), nil
}

func mapTestimonialRows(rows []sqlc.Testimonials) []*queries.TestimonialView {
	views := make([]*queries.TestimonialView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toTestimonialView(row))
	}
	return views
}

func toTestimonialView(row sqlc.Testimonials) *queries.TestimonialView {
	return &queries.TestimonialView{
		ID:          row.ID,
		ClientName:  row.ClientName,
		ClientTitle: pgconv.StringPtrFromPgtype(row.ClientTitle),
		Text:        row.TestimonialText,
		Rating:      row.Rating,
		Email:       pgconv.StringPtrFromPgtype(row.Email),
		IsApproved:  row.IsApproved,
		IsFeatured:  row.IsFeatured,
		ApprovedAt:  pgconv.TimePtrFromPgtype(row.ApprovedAt),
		ApprovedBy:  pgconv.StringPtrFromPgtype(row.ApprovedBy),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
