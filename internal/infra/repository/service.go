package repository

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/service"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	"github.com/Zolbayar-hub/holisticweb/internal/infra/repository/converter"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
)

type ServiceWriteQueries interface {
	CreateService(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceParams) (sqlc.Services, error)
	GetServiceByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Services, error)
	UpdateService(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateServiceParams) (int64, error)
	DeleteService(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type ServiceRepository struct {
	queries ServiceWriteQueries
	db      sqlc.DBTX
}

func NewServiceRepository(queries ServiceWriteQueries, db sqlc.DBTX) *ServiceRepository {
	return &ServiceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, tx sqlc.DBTX, s *service.Service) (int64, error) {
	row, err := r.queries.CreateService(ctx, tx, converter.ServiceToCreateParams(s))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create service", err)
	}
	return row.ID, nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*service.Service, error) {
	row, err := r.queries.GetServiceByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service", err)
	}
	return converter.ServiceFromRow(row), nil
}

func (r *ServiceRepository) Update(ctx context.Context, tx sqlc.DBTX, s *service.Service) error {
	n, err := r.queries.UpdateService(ctx, tx, converter.ServiceToUpdateParams(s))
	return affectedOne("service", "update", n, err)
}

func (r *ServiceRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.DeleteService(ctx, tx, id)
	return affectedOne("service", "delete", n, err)
}
