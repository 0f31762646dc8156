package repository

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/sitesetting"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	"github.com/Zolbayar-hub/holisticweb/internal/infra/repository/converter"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
)

type SettingWriteQueries interface {
	UpsertSiteSetting(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSiteSettingParams) (sqlc.SiteSettings, error)
	GetSiteSettingByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.SiteSettings, error)
	UpdateSiteSetting(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSiteSettingParams) (int64, error)
	DeleteSiteSetting(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type SettingRepository struct {
	queries SettingWriteQueries
	db      sqlc.DBTX
}

func NewSettingRepository(queries SettingWriteQueries, db sqlc.DBTX) *SettingRepository {
	return &SettingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SettingRepository) Upsert(ctx context.Context, tx sqlc.DBTX, s *sitesetting.Setting) (int64, error) {
	row, err := r.queries.UpsertSiteSetting(ctx, tx, converter.SettingToUpsertParams(s))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to upsert site setting", err)
	}
	return row.ID, nil
}

func (r *SettingRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*sitesetting.Setting, error) {
	row, err := r.queries.GetSiteSettingByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("site setting not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get site setting", err)
	}
	return converter.SettingFromRow(row), nil
}

func (r *SettingRepository) Update(ctx context.Context, tx sqlc.DBTX, s *sitesetting.Setting) error {
	n, err := r.queries.UpdateSiteSetting(ctx, tx, converter.SettingToUpdateParams(s))
	return affectedOne("site setting", "update", n, err)
}

func (r *SettingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.DeleteSiteSetting(ctx, tx, id)
	return affectedOne("site setting", "delete", n, err)
}
