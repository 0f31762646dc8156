//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/testimonial"
	reqdto "github.com/Zolbayar-hub/holisticweb/internal/handler/dto/request"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

type TestimonialBuilder struct {
	ID          int64
	ClientName  string
	ClientTitle string
	Text        string
	Rating      int
	Email       string
	IsApproved  bool
	IsFeatured  bool
	Now         time.Time
}

func NewTestimonialBuilder() *TestimonialBuilder {
	return &TestimonialBuilder{
		ID:          1,
		ClientName:  "Sarah Johnson",
		ClientTitle: "Yoga Teacher",
		Text:        "The sound healing session was deeply relaxing.",
		Rating:      5,
		Email:       "sarah@example.com",
		Now:         time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *TestimonialBuilder) With(mutate func(*TestimonialBuilder)) *TestimonialBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *TestimonialBuilder) BuildDomain() (*testimonial.Testimonial, error) {
	return testimonial.NewTestimonial(b.ClientName, b.ClientTitle, b.Text, b.Rating, b.Email, b.Now)
}

func (b *TestimonialBuilder) BuildStored() *testimonial.Testimonial {
	var approvedAt *time.Time
	approvedBy := ""
	if b.IsApproved {
		at := b.Now
		approvedAt = &at
		approvedBy = "admin"
	}
	return testimonial.ReconstructTestimonial(
		b.ID, b.ClientName, b.ClientTitle,
		testimonial.ReconstructText(b.Text),
		testimonial.ReconstructRating(b.Rating),
		b.Email, b.IsApproved, b.IsFeatured, approvedAt, approvedBy, b.Now, b.Now,
	)
}

func (b *TestimonialBuilder) BuildSubmitRequestDTO() reqdto.SubmitTestimonialRequest {
	rating := b.Rating
	return reqdto.SubmitTestimonialRequest{
		ClientName:  b.ClientName,
		ClientTitle: b.ClientTitle,
		Text:        b.Text,
		Rating:      &rating,
		Email:       b.Email,
	}
}

func (b *TestimonialBuilder) BuildView() *queries.TestimonialView {
	title := b.ClientTitle
	email := b.Email
	return &queries.TestimonialView{
		ID:          b.ID,
		ClientName:  b.ClientName,
		ClientTitle: &title,
		Text:        b.Text,
		Rating:      int16(b.Rating),
		Email:       &email,
		IsApproved:  b.IsApproved,
		IsFeatured:  b.IsFeatured,
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
}

// Fluent builder methods
func (b *TestimonialBuilder) WithClientName(name string) *TestimonialBuilder {
	b.ClientName = name
	return b
}

func (b *TestimonialBuilder) WithText(text string) *TestimonialBuilder {
	b.Text = text
	return b
}

func (b *TestimonialBuilder) WithRating(rating int) *TestimonialBuilder {
	b.Rating = rating
	return b
}

func (b *TestimonialBuilder) AsApproved() *TestimonialBuilder {
	b.IsApproved = true
	return b
}

func (b *TestimonialBuilder) AsFeatured() *TestimonialBuilder {
	b.IsApproved = true
	b.IsFeatured = true
	return b
}
