package readstore

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/pgconv"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

type TemplateViewQueries interface {
	GetEmailTemplateByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.EmailTemplates, error)
	GetEmailTemplateByName(ctx context.Context, db sqlc.DBTX, name string) (sqlc.EmailTemplates, error)
	ListEmailTemplates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListEmailTemplatesParams) ([]sqlc.EmailTemplates, error)
}

type TemplateReadStore struct {
	queries TemplateViewQueries
	db      sqlc.DBTX
}

func NewTemplateReadStore(queries TemplateViewQueries, db sqlc.DBTX) *TemplateReadStore {
	return &TemplateReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TemplateReadStore) FindByID(ctx context.Context, id int64) (*queries.TemplateView, error) {
	row, err := r.queries.GetEmailTemplateByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("email template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get email template by id", err)
	}
	return toTemplateView(row), nil
}

func (r *TemplateReadStore) FindByName(ctx context.Context, name string) (*queries.TemplateView, error) {
	row, err := r.queries.GetEmailTemplateByName(ctx, r.db, name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("email template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get email template by name", err)
	}
	return toTemplateView(row), nil
}

func (r *TemplateReadStore) List(ctx context.Context, params queries.ListParams) ([]*queries.TemplateView, error) {
	search, limit, offset := pageArgs(params)
	rows, err := r.queries.ListEmailTemplates(ctx, r.db, sqlc.ListEmailTemplatesParams{
		Search:     search,
		PageLimit:  limit,
		PageOffset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list email templates", err)
	}

	views := make([]*queries.TemplateView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toTemplateView(row))
	}
	return views, nil
}

func toTemplateView(row sqlc.EmailTemplates) *queries.TemplateView {
	return &queries.TemplateView{
		ID:          row.ID,
		Name:        row.Name,
		Subject:     row.Subject,
		Body:        row.Body,
		Description: pgconv.StringPtrFromPgtype(row.Description),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
