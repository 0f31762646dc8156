package commands

import (
	"context"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/locale"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/service"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/shared"
)

type ServiceInput struct {
	Name        string
	Description string
	PriceCents  int64
	DurationMin int
	Language    string
	ImagePath   *string
	IsActive    *bool
}

type ServiceCommands interface {
	Create(ctx context.Context, in ServiceInput) (int64, error)
	Update(ctx context.Context, id int64, in ServiceInput) error
	Delete(ctx context.Context, id int64) error
}

type serviceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewServiceCommands(uow shared.UnitOfWork, clock clock.Clock) ServiceCommands {
	return &serviceCommandsImpl{uow: uow, clock: clock}
}

func (c *serviceCommandsImpl) Create(ctx context.Context, in ServiceInput) (int64, error) {
	price, err := service.NewMoney(in.PriceCents)
	if err != nil {
		return 0, validationErr(err)
	}
	s, err := service.NewService(in.Name, in.Description, price, in.DurationMin, locale.Parse(in.Language), in.ImagePath, c.clock.Now())
	if err != nil {
		return 0, validationErr(err)
	}
	if in.IsActive != nil && !*in.IsActive {
		s.Deactivate(c.clock.Now())
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Services().Create(ctx, tx.DB(), s)
		return mapRepoErr(err, errs.ErrServiceNotFound)
	})
	return id, err
}

func (c *serviceCommandsImpl) Update(ctx context.Context, id int64, in ServiceInput) error {
	price, err := service.NewMoney(in.PriceCents)
	if err != nil {
		return validationErr(err)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Services().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return mapRepoErr(err, errs.ErrServiceNotFound)
		}

		active := s.IsActive()
		if in.IsActive != nil {
			active = *in.IsActive
		}
		if err := s.Update(in.Name, in.Description, price, in.DurationMin, locale.Parse(in.Language), in.ImagePath, active, c.clock.Now()); err != nil {
			return validationErr(err)
		}
		return mapRepoErr(tx.Services().Update(ctx, tx.DB(), s), errs.ErrServiceNotFound)
	})
}

// Delete leaves existing bookings in place; their service reference becomes null.
func (c *serviceCommandsImpl) Delete(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapRepoErr(tx.Services().Delete(ctx, tx.DB(), id), errs.ErrServiceNotFound)
	})
}
