package queries

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
)

const PublicTestimonialLimit = 50

type TestimonialFilter struct {
	ListParams
	Approved *bool
}

type TestimonialReadStore interface {
	FindByID(ctx context.Context, id int64) (*TestimonialView, error)
	ListApproved(ctx context.Context, featuredOnly bool, limit int32) ([]*TestimonialView, error)
	List(ctx context.Context, filter TestimonialFilter) ([]*TestimonialView, error)
}

type TestimonialQueries interface {
	ListPublic(ctx context.Context, featuredOnly bool) ([]*TestimonialView, error)
	Get(ctx context.Context, id int64) (*TestimonialView, error)
	List(ctx context.Context, filter TestimonialFilter) ([]*TestimonialView, error)
}

type testimonialQueriesImpl struct {
	readStore TestimonialReadStore
}

func NewTestimonialQueries(readStore TestimonialReadStore) TestimonialQueries {
	return &testimonialQueriesImpl{readStore: readStore}
}

func (q *testimonialQueriesImpl) ListPublic(ctx context.Context, featuredOnly bool) ([]*TestimonialView, error) {
	return q.readStore.ListApproved(ctx, featuredOnly, PublicTestimonialLimit)
}

func (q *testimonialQueriesImpl) Get(ctx context.Context, id int64) (*TestimonialView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTestimonialNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *testimonialQueriesImpl) List(ctx context.Context, filter TestimonialFilter) ([]*TestimonialView, error) {
	filter.ListParams = filter.ListParams.Normalize()
	return q.readStore.List(ctx, filter)
}
