package repository

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	"github.com/Zolbayar-hub/holisticweb/internal/infra/repository/converter"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
)

type TemplateWriteQueries interface {
	CreateEmailTemplate(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEmailTemplateParams) (sqlc.EmailTemplates, error)
	GetEmailTemplateByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.EmailTemplates, error)
	UpdateEmailTemplate(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEmailTemplateParams) (int64, error)
	DeleteEmailTemplate(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type TemplateRepository struct {
	queries TemplateWriteQueries
	db      sqlc.DBTX
}

func NewTemplateRepository(queries TemplateWriteQueries, db sqlc.DBTX) *TemplateRepository {
	return &TemplateRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TemplateRepository) Create(ctx context.Context, tx sqlc.DBTX, t *notification.Template) (int64, error) {
	row, err := r.queries.CreateEmailTemplate(ctx, tx, converter.TemplateToCreateParams(t))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create email template", err)
	}
	return row.ID, nil
}

func (r *TemplateRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*notification.Template, error) {
	row, err := r.queries.GetEmailTemplateByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("email template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get email template", err)
	}
	return converter.TemplateFromRow(row), nil
}

func (r *TemplateRepository) Update(ctx context.Context, tx sqlc.DBTX, t *notification.Template) error {
	n, err := r.queries.UpdateEmailTemplate(ctx, tx, converter.TemplateToUpdateParams(t))
	return affectedOne("email template", "update", n, err)
}

func (r *TemplateRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.DeleteEmailTemplate(ctx, tx, id)
	return affectedOne("email template", "delete", n, err)
}
