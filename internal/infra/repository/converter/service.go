package converter

import (
	"github.com/Zolbayar-hub/holisticweb/internal/domain/locale"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/service"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
)

func ServiceToCreateParams(s *service.Service) sqlc.CreateServiceParams {
	return sqlc.CreateServiceParams{
		Name:        s.Name(),
		Description: s.Description(),
		PriceCents:  s.Price().Cents(),
		DurationMin: int32(s.DurationMin()), // #nosec G115 -- bounded by MaxDurationMinute
		Language:    s.Language().String(),
		ImagePath:   pgconv.StringPtrToPgtype(s.ImagePath()),
		IsActive:    s.IsActive(),
		CreatedAt:   pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func ServiceToUpdateParams(s *service.Service) sqlc.UpdateServiceParams {
	return sqlc.UpdateServiceParams{
		ID:          s.ID(),
		Name:        s.Name(),
		Description: s.Description(),
		PriceCents:  s.Price().Cents(),
		DurationMin: int32(s.DurationMin()), // #nosec G115 -- bounded by MaxDurationMinute
		Language:    s.Language().String(),
		ImagePath:   pgconv.StringPtrToPgtype(s.ImagePath()),
		IsActive:    s.IsActive(),
		UpdatedAt:   pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func ServiceFromRow(row sqlc.Services) *service.Service {
	return service.ReconstructService(
		row.ID,
		row.Name,
		row.Description,
		service.ReconstructMoney(row.PriceCents),
		int(row.DurationMin),
		locale.Language(row.Language),
		pgconv.StringPtrFromPgtype(row.ImagePath),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
