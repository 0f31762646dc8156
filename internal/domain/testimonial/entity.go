package testimonial

import (
	"strings"
	"time"
)

// Testimonial is a customer quote. Public submissions start unapproved and
// only approved testimonials are shown on the site.
type Testimonial struct {
	id          int64
	clientName  string
	clientTitle string
	text        Text
	rating      Rating
	email       string
	isApproved  bool
	isFeatured  bool
	approvedAt  *time.Time
	approvedBy  string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTestimonial(clientName, clientTitle, text string, rating int, email string, now time.Time) (*Testimonial, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" || len(clientName) > MaxClientNameLength {
		return nil, ErrInvalidClientName
	}
	t, err := NewText(text)
	if err != nil {
		return nil, err
	}
	r, err := NewRating(rating)
	if err != nil {
		return nil, err
	}

	return &Testimonial{
		clientName:  clientName,
		clientTitle: strings.TrimSpace(clientTitle),
		text:        t,
		rating:      r,
		email:       strings.TrimSpace(email),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTestimonial(
	id int64,
	clientName, clientTitle string,
	text Text,
	rating Rating,
	email string,
	isApproved, isFeatured bool,
	approvedAt *time.Time,
	approvedBy string,
	createdAt, updatedAt time.Time,
) *Testimonial {
	return &Testimonial{
		id:          id,
		clientName:  clientName,
		clientTitle: clientTitle,
		text:        text,
		rating:      rating,
		email:       email,
		isApproved:  isApproved,
		isFeatured:  isFeatured,
		approvedAt:  approvedAt,
		approvedBy:  approvedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Edit replaces the submitted content; moderation state is left untouched.
func (t *Testimonial) Edit(clientName, clientTitle, text string, rating int, email string, now time.Time) error {
	next, err := NewTestimonial(clientName, clientTitle, text, rating, email, now)
	if err != nil {
		return err
	}
	t.clientName = next.clientName
	t.clientTitle = next.clientTitle
	t.text = next.text
	t.rating = next.rating
	t.email = next.email
	t.updatedAt = now
	return nil
}

func (t *Testimonial) Approve(by string, now time.Time) {
	t.isApproved = true
	t.approvedAt = &now
	t.approvedBy = by
	t.updatedAt = now
}

// Disapprove also un-features the testimonial.
func (t *Testimonial) Disapprove(now time.Time) {
	t.isApproved = false
	t.isFeatured = false
	t.approvedAt = nil
	t.approvedBy = ""
	t.updatedAt = now
}

func (t *Testimonial) ToggleFeatured(now time.Time) error {
	if !t.isFeatured && !t.isApproved {
		return ErrFeatureUnapproved
	}
	t.isFeatured = !t.isFeatured
	t.updatedAt = now
	return nil
}

func (t *Testimonial) ID() int64              { return t.id }
func (t *Testimonial) ClientName() string     { return t.clientName }
func (t *Testimonial) ClientTitle() string    { return t.clientTitle }
func (t *Testimonial) Text() Text             { return t.text }
func (t *Testimonial) Rating() Rating         { return t.rating }
func (t *Testimonial) Email() string          { return t.email }
func (t *Testimonial) IsApproved() bool       { return t.isApproved }
func (t *Testimonial) IsFeatured() bool       { return t.isFeatured }
func (t *Testimonial) ApprovedAt() *time.Time { return t.approvedAt }
func (t *Testimonial) ApprovedBy() string     { return t.approvedBy }
func (t *Testimonial) CreatedAt() time.Time   { return t.createdAt }
func (t *Testimonial) UpdatedAt() time.Time   { return t.updatedAt }
