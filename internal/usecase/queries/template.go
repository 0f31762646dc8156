package queries

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
)

type TemplateReadStore interface {
	FindByID(ctx context.Context, id int64) (*TemplateView, error)
	FindByName(ctx context.Context, name string) (*TemplateView, error)
	List(ctx context.Context, params ListParams) ([]*TemplateView, error)
}

type TemplateQueries interface {
	Get(ctx context.Context, id int64) (*TemplateView, error)
	List(ctx context.Context, params ListParams) ([]*TemplateView, error)
}

type templateQueriesImpl struct {
	readStore TemplateReadStore
}

func NewTemplateQueries(readStore TemplateReadStore) TemplateQueries {
	return &templateQueriesImpl{readStore: readStore}
}

func (q *templateQueriesImpl) Get(ctx context.Context, id int64) (*TemplateView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTemplateNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *templateQueriesImpl) List(ctx context.Context, params ListParams) ([]*TemplateView, error) {
	return q.readStore.List(ctx, params.Normalize())
}
