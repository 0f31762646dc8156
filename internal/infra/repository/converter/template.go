package converter

import (
	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
)

func TemplateToCreateParams(t *notification.Template) sqlc.CreateEmailTemplateParams {
	return sqlc.CreateEmailTemplateParams{
		Name:        t.Name(),
		Subject:     t.Subject(),
		Body:        t.Body(),
		Description: pgconv.OptionalStringToPgtype(t.Description()),
		CreatedAt:   pgconv.TimeToPgtype(t.CreatedAt()),
	}
}

func TemplateToUpdateParams(t *notification.Template) sqlc.UpdateEmailTemplateParams {
	return sqlc.UpdateEmailTemplateParams{
		ID:          t.ID(),
		Name:        t.Name(),
		Subject:     t.Subject(),
		Body:        t.Body(),
		Description: pgconv.OptionalStringToPgtype(t.Description()),
		UpdatedAt:   pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}

func TemplateFromRow(row sqlc.EmailTemplates) *notification.Template {
	return notification.ReconstructTemplate(
		row.ID,
		row.Name,
		row.Subject,
		row.Body,
		pgconv.StringFromPgtype(row.Description),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
