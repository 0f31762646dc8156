package commands

import (
	"context"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/testimonial"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/shared"
)

type TestimonialInput struct {
	ClientName  string
	ClientTitle string
	Text        string
	Rating      int
	Email       string
	IsApproved  bool
	IsFeatured  bool
}

type TestimonialCommands interface {
	// Submit stores a public submission awaiting moderation.
	Submit(ctx context.Context, in TestimonialInput) (int64, error)
	// Create stores a testimonial entered by an admin, optionally pre-approved.
	Create(ctx context.Context, in TestimonialInput, by string) (int64, error)
	Update(ctx context.Context, id int64, in TestimonialInput, by string) error
	Approve(ctx context.Context, id int64, by string) error
	Disapprove(ctx context.Context, id int64) error
	ToggleFeatured(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type testimonialCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTestimonialCommands(uow shared.UnitOfWork, clock clock.Clock) TestimonialCommands {
	return &testimonialCommandsImpl{uow: uow, clock: clock}
}

func (c *testimonialCommandsImpl) Submit(ctx context.Context, in TestimonialInput) (int64, error) {
	in.IsApproved = false
	in.IsFeatured = false
	return c.Create(ctx, in, "")
}

func (c *testimonialCommandsImpl) Create(ctx context.Context, in TestimonialInput, by string) (int64, error) {
	now := c.clock.Now()
	t, err := testimonial.NewTestimonial(in.ClientName, in.ClientTitle, in.Text, in.Rating, in.Email, now)
	if err != nil {
		return 0, validationErr(err)
	}
	if err := applyModeration(t, in, by, now); err != nil {
		return 0, err
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Testimonials().Create(ctx, tx.DB(), t)
		return mapRepoErr(err, errs.ErrTestimonialNotFound)
	})
	return id, err
}

func (c *testimonialCommandsImpl) Update(ctx context.Context, id int64, in TestimonialInput, by string) error {
	return c.modify(ctx, id, func(t *testimonial.Testimonial) error {
		now := c.clock.Now()
		if err := t.Edit(in.ClientName, in.ClientTitle, in.Text, in.Rating, in.Email, now); err != nil {
			return validationErr(err)
		}
		return applyModeration(t, in, by, now)
	})
}

func (c *testimonialCommandsImpl) Approve(ctx context.Context, id int64, by string) error {
	return c.modify(ctx, id, func(t *testimonial.Testimonial) error {
		t.Approve(by, c.clock.Now())
		return nil
	})
}

func (c *testimonialCommandsImpl) Disapprove(ctx context.Context, id int64) error {
	return c.modify(ctx, id, func(t *testimonial.Testimonial) error {
		t.Disapprove(c.clock.Now())
		return nil
	})
}

func (c *testimonialCommandsImpl) ToggleFeatured(ctx context.Context, id int64) error {
	return c.modify(ctx, id, func(t *testimonial.Testimonial) error {
		if err := t.ToggleFeatured(c.clock.Now()); err != nil {
			return validationErr(err)
		}
		return nil
	})
}

func (c *testimonialCommandsImpl) Delete(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapRepoErr(tx.Testimonials().Delete(ctx, tx.DB(), id), errs.ErrTestimonialNotFound)
	})
}

func (c *testimonialCommandsImpl) modify(ctx context.Context, id int64, change func(t *testimonial.Testimonial) error) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Testimonials().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return mapRepoErr(err, errs.ErrTestimonialNotFound)
		}
		if err := change(t); err != nil {
			return err
		}
		return mapRepoErr(tx.Testimonials().Update(ctx, tx.DB(), t), errs.ErrTestimonialNotFound)
	})
}

func applyModeration(t *testimonial.Testimonial, in TestimonialInput, by string, now time.Time) error {
	switch {
	case in.IsApproved && !t.IsApproved():
		t.Approve(by, now)
	case !in.IsApproved && t.IsApproved():
		t.Disapprove(now)
	}
	if in.IsFeatured != t.IsFeatured() {
		if err := t.ToggleFeatured(now); err != nil {
			return validationErr(err)
		}
	}
	return nil
}
