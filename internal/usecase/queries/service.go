package queries

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/locale"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
)

type ServiceReadStore interface {
	FindByID(ctx context.Context, id int64) (*ServiceView, error)
	ListActive(ctx context.Context, language string) ([]*ServiceView, error)
	List(ctx context.Context, params ListParams) ([]*ServiceView, error)
}

type ServiceQueries interface {
	ListPublic(ctx context.Context, language locale.Language) ([]*ServiceView, error)
	Get(ctx context.Context, id int64) (*ServiceView, error)
	List(ctx context.Context, params ListParams) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	readStore ServiceReadStore
}

func NewServiceQueries(readStore ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{readStore: readStore}
}

func (q *serviceQueriesImpl) ListPublic(ctx context.Context, language locale.Language) ([]*ServiceView, error) {
	if !language.IsValid() {
		language = locale.Default
	}
	return q.readStore.ListActive(ctx, language.String())
}

func (q *serviceQueriesImpl) Get(ctx context.Context, id int64) (*ServiceView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrServiceNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *serviceQueriesImpl) List(ctx context.Context, params ListParams) ([]*ServiceView, error) {
	return q.readStore.List(ctx, params.Normalize())
}
