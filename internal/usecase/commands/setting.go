package commands

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/locale"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/sitesetting"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/shared"
)

type SettingInput struct {
	Key         string
	Value       string
	Language    string
	Description string
}

type SettingCommands interface {
	// Upsert creates the (key, language) pair or overwrites its value.
	Upsert(ctx context.Context, in SettingInput) (int64, error)
	Update(ctx context.Context, id int64, in SettingInput) error
	Delete(ctx context.Context, id int64) error
}

type settingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSettingCommands(uow shared.UnitOfWork, clock clock.Clock) SettingCommands {
	return &settingCommandsImpl{uow: uow, clock: clock}
}

func (c *settingCommandsImpl) Upsert(ctx context.Context, in SettingInput) (int64, error) {
	s, err := sitesetting.NewSetting(in.Key, in.Value, locale.Parse(in.Language), in.Description, c.clock.Now())
	if err != nil {
		return 0, validationErr(err)
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Settings().Upsert(ctx, tx.DB(), s)
		return settingRepoErr(err)
	})
	return id, err
}

func (c *settingCommandsImpl) Update(ctx context.Context, id int64, in SettingInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Settings().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return settingRepoErr(err)
		}
		if err := s.Update(in.Key, in.Value, locale.Parse(in.Language), in.Description, c.clock.Now()); err != nil {
			return validationErr(err)
		}
		return settingRepoErr(tx.Settings().Update(ctx, tx.DB(), s))
	})
}

func (c *settingCommandsImpl) Delete(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return settingRepoErr(tx.Settings().Delete(ctx, tx.DB(), id))
	})
}

func settingRepoErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, errs.ErrDuplicateSetting)
	}
	return mapRepoErr(err, errs.ErrSettingNotFound)
}
