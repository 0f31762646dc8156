package converter

import (
	"github.com/Zolbayar-hub/holisticweb/internal/domain/locale"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/sitesetting"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
)

func SettingToUpsertParams(s *sitesetting.Setting) sqlc.UpsertSiteSettingParams {
	return sqlc.UpsertSiteSettingParams{
		Key:         s.Key(),
		Value:       s.Value(),
		Language:    s.Language().String(),
		Description: pgconv.OptionalStringToPgtype(s.Description()),
		UpdatedAt:   pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func SettingToUpdateParams(s *sitesetting.Setting) sqlc.UpdateSiteSettingParams {
	return sqlc.UpdateSiteSettingParams{
		ID:          s.ID(),
		Key:         s.Key(),
		Value:       s.Value(),
		Language:    s.Language().String(),
		Description: pgconv.OptionalStringToPgtype(s.Description()),
		UpdatedAt:   pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func SettingFromRow(row sqlc.SiteSettings) *sitesetting.Setting {
	return sitesetting.ReconstructSetting(
		row.ID,
		row.Key,
		row.Value,
		locale.Language(row.Language),
		pgconv.StringFromPgtype(row.Description),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
