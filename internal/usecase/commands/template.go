package commands

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/shared"
)

type TemplateInput struct {
	Name        string
	Subject     string
	Body        string
	Description string
}

type TemplateCommands interface {
	Create(ctx context.Context, in TemplateInput) (int64, error)
	Update(ctx context.Context, id int64, in TemplateInput) error
	Delete(ctx context.Context, id int64) error
}

type templateCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTemplateCommands(uow shared.UnitOfWork, clock clock.Clock) TemplateCommands {
	return &templateCommandsImpl{uow: uow, clock: clock}
}

func (c *templateCommandsImpl) Create(ctx context.Context, in TemplateInput) (int64, error) {
	t, err := notification.NewTemplate(in.Name, in.Subject, in.Body, in.Description, c.clock.Now())
	if err != nil {
		return 0, validationErr(err)
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Templates().Create(ctx, tx.DB(), t)
		return templateRepoErr(err)
	})
	return id, err
}

func (c *templateCommandsImpl) Update(ctx context.Context, id int64, in TemplateInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Templates().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return templateRepoErr(err)
		}
		if err := t.Update(in.Name, in.Subject, in.Body, in.Description, c.clock.Now()); err != nil {
			return validationErr(err)
		}
		return templateRepoErr(tx.Templates().Update(ctx, tx.DB(), t))
	})
}

// Delete falls back to the built-in default for that name on the next send.
func (c *templateCommandsImpl) Delete(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return templateRepoErr(tx.Templates().Delete(ctx, tx.DB(), id))
	})
}

func templateRepoErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, errs.ErrDuplicateTemplateName)
	}
	return mapRepoErr(err, errs.ErrTemplateNotFound)
}
