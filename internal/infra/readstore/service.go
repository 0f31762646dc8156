package readstore

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/shared"
)

type ServiceViewQueries interface {
	GetServiceByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Services, error)
	ListActiveServicesByLanguage(ctx context.Context, db sqlc.DBTX, language string) ([]sqlc.Services, error)
	ListServices(ctx context.Context, db sqlc.DBTX, arg sqlc.ListServicesParams) ([]sqlc.Services, error)
}

type ServiceReadStore struct {
	queries ServiceViewQueries
	db      sqlc.DBTX
}

func NewServiceReadStore(queries ServiceViewQueries, db sqlc.DBTX) *ServiceReadStore {
	return &ServiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id int64) (*queries.ServiceView, error) {
	row, err := r.queries.GetServiceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service view by id", err)
	}
	return toServiceView(row), nil
}

// FindSnapshot serves command-side reads that run inside a transaction.
func (r *ServiceReadStore) FindSnapshot(ctx context.Context, db sqlc.DBTX, id int64) (*shared.ServiceSnapshot, error) {
	row, err := r.queries.GetServiceByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service snapshot", err)
	}
	return &shared.ServiceSnapshot{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		PriceCents:  row.PriceCents,
		DurationMin: row.DurationMin,
		IsActive:    row.IsActive,
	}, nil
}

func (r *ServiceReadStore) ListActive(ctx context.Context, language string) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListActiveServicesByLanguage(ctx, r.db, language)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active services", err)
	}
	return mapServiceRows(rows), nil
}

func (r *ServiceReadStore) List(ctx context.Context, params queries.ListParams) ([]*queries.ServiceView, error) {
	search, limit, offset := pageArgs(params)
	rows, err := r.queries.ListServices(ctx, r.db, sqlc.ListServicesParams{
		Search:     search,
		PageLimit:  limit,
		PageOffset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	return mapServiceRows(rows), nil
}

func mapServiceRows(rows []sqlc.Services) []*queries.ServiceView {
	views := make([]*queries.ServiceView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toServiceView(row))
	}
	return views
}

func toServiceView(row sqlc.Services) *queries.ServiceView {
	return &queries.ServiceView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		PriceCents:  row.PriceCents,
		DurationMin: row.DurationMin,
		Language:    row.Language,
		ImagePath:   pgconv.StringPtrFromPgtype(row.ImagePath),
		IsActive:    row.IsActive,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
