package notify

import (
	"context"
	"log/slog"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
)

// Resolver renders a stored template by name, falling back to the built-in
// default when the store has no row or cannot be reached.
type Resolver struct {
	templates TemplateLookup
	logger    *slog.Logger
}

func NewResolver(templates TemplateLookup, logger *slog.Logger) *Resolver {
	return &Resolver{templates: templates, logger: logger}
}

func (r *Resolver) Resolve(ctx context.Context, name string, tokens notification.Tokens) (subject, body string) {
	return r.template(ctx, name).Render(tokens)
}

func (r *Resolver) template(ctx context.Context, name string) *notification.Template {
	view, err := r.templates.FindByName(ctx, name)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			r.logger.Warn("template lookup failed, using default", "template", name, "error", err.Error())
		}
		return notification.DefaultTemplate(name)
	}

	var description string
	if view.Description != nil {
		description = *view.Description
	}
	return notification.ReconstructTemplate(view.ID, view.Name, view.Subject, view.Body, description, view.CreatedAt, view.UpdatedAt)
}
