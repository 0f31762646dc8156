package readstore

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

type SettingViewQueries interface {
	GetSiteSettingByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.SiteSettings, error)
	ListSiteSettingsByLanguage(ctx context.Context, db sqlc.DBTX, language string) ([]sqlc.SiteSettings, error)
	ListSiteSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSiteSettingsParams) ([]sqlc.SiteSettings, error)
}

type SettingReadStore struct {
	queries SettingViewQueries
	db      sqlc.DBTX
}

func NewSettingReadStore(queries SettingViewQueries, db sqlc.DBTX) *SettingReadStore {
	return &SettingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SettingReadStore) FindByID(ctx context.Context, id int64) (*queries.SettingView, error) {
	row, err := r.queries.GetSiteSettingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("site setting not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get site setting by id", err)
	}
	return toSettingView(row), nil
}

func (r *SettingReadStore) ListByLanguage(ctx context.Context, language string) ([]*queries.SettingView, error) {
	rows, err := r.queries.ListSiteSettingsByLanguage(ctx, r.db, language)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list site settings by language", err)
	}
	return mapSettingRows(rows), nil
}

func (r *SettingReadStore) List(ctx context.Context, params queries.ListParams) ([]*queries.SettingView, error) {
	search, limit, offset := pageArgs(params)
	rows, err := r.queries.ListSiteSettings(ctx, r.db, sqlc.ListSiteSettingsParams{
		Search:     search,
		PageLimit:  limit,
		PageOffset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list site settings", err)
	}
	return mapSettingRows(rows), nil
}

func mapSettingRows(rows []sqlc.SiteSettings) []*queries.SettingView {
	views := make([]*queries.SettingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toSettingView(row))
	}
	return views
}

func toSettingView(row sqlc.SiteSettings) *queries.SettingView {
	return &queries.SettingView{
		ID:          row.ID,
		Key:         row.Key,
		Value:       row.Value,
		Language:    row.Language,
		Description: pgconv.StringPtrFromPgtype(row.Description),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
