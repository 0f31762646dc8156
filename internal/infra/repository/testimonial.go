package repository

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/testimonial"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	"github.com/Zolbayar-hub/holisticweb/internal/infra/repository/converter"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
)

type TestimonialWriteQueries interface {
	CreateTestimonial(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTestimonialParams) (sqlc.Testimonials, error)
	GetTestimonialByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Testimonials, error)
	UpdateTestimonial(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTestimonialParams) (int64, error)
	DeleteTestimonial(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type TestimonialRepository struct {
	queries TestimonialWriteQueries
	db      sqlc.DBTX
}

func NewTestimonialRepository(queries TestimonialWriteQueries, db sqlc.DBTX) *TestimonialRepository {
	return &TestimonialRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TestimonialRepository) Create(ctx context.Context, tx sqlc.DBTX, t *testimonial.Testimonial) (int64, error) {
	row, err := r.queries.CreateTestimonial(ctx, tx, converter.TestimonialToCreateParams(t))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create testimonial", err)
	}
	return row.ID, nil
}

func (r *TestimonialRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*testimonial.Testimonial, error) {
	row, err := r.queries.GetTestimonialByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("testimonial not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get testimonial", err)
	}
	return converter.TestimonialFromRow(row), nil
}

func (r *TestimonialRepository) Update(ctx context.Context, tx sqlc.DBTX, t *testimonial.Testimonial) error {
	n, err := r.queries.UpdateTestimonial(ctx, tx, converter.TestimonialToUpdateParams(t))
	return affectedOne("testimonial", "update", n, err)
}

func (r *TestimonialRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.DeleteTestimonial(ctx, tx, id)
	return affectedOne("testimonial", "delete", n, err)
}
