package request

import (
	"strings"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/service"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/patch"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"
)

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"required"`
	Price       string  `json:"price" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	Language    string  `json:"language" binding:"omitempty,lang"`
	ImagePath   *string `json:"image_path" binding:"omitempty,max=255"`
	IsActive    *bool   `json:"is_active"`
}

func (r *ServiceRequest) ToInput() (commands.ServiceInput, error) {
	price, err := service.ParseMoney(r.Price)
	if err != nil {
		return commands.ServiceInput{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	return commands.ServiceInput{
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  price.Cents(),
		DurationMin: r.DurationMin,
		Language:    strings.ToUpper(r.Language),
		ImagePath:   r.ImagePath,
		IsActive:    r.IsActive,
	}, nil
}

type TemplateRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Subject     string `json:"subject" binding:"required,max=200"`
	Body        string `json:"body" binding:"required"`
	Description string `json:"description"`
}

func (r *TemplateRequest) ToInput() commands.TemplateInput {
	return commands.TemplateInput{
		Name:        r.Name,
		Subject:     r.Subject,
		Body:        r.Body,
		Description: r.Description,
	}
}

// SubmitTestimonialRequest is the public form; moderation flags are never read from it.
type SubmitTestimonialRequest struct {
	ClientName  string `json:"client_name" binding:"required,max=100"`
	ClientTitle string `json:"client_title" binding:"max=100"`
	Text        string `json:"testimonial_text" binding:"required"`
	Rating      *int   `json:"rating" binding:"omitempty,min=1,max=5"`
	Email       string `json:"email" binding:"omitempty,email"`
}

func (r *SubmitTestimonialRequest) ToInput() commands.TestimonialInput {
	return commands.TestimonialInput{
		ClientName:  r.ClientName,
		ClientTitle: r.ClientTitle,
		Text:        r.Text,
		Rating:      patch.Coalesce(r.Rating, 5),
		Email:       r.Email,
	}
}

type AdminTestimonialRequest struct {
	SubmitTestimonialRequest
	IsApproved bool `json:"is_approved"`
	IsFeatured bool `json:"is_featured"`
}

func (r *AdminTestimonialRequest) ToInput() commands.TestimonialInput {
	in := r.SubmitTestimonialRequest.ToInput()
	in.IsApproved = r.IsApproved
	in.IsFeatured = r.IsFeatured
	return in
}

type SettingRequest struct {
	Key         string `json:"key" binding:"required,max=100"`
	Value       string `json:"value"`
	Language    string `json:"language" binding:"omitempty,lang"`
	Description string `json:"description" binding:"max=255"`
}

func (r *SettingRequest) ToInput() commands.SettingInput {
	return commands.SettingInput{
		Key:         r.Key,
		Value:       r.Value,
		Language:    strings.ToUpper(r.Language),
		Description: r.Description,
	}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=5000"`
}

func (r *ContactRequest) ToInput() commands.ContactInput {
	return commands.ContactInput{Name: r.Name, Email: r.Email, Message: r.Message}
}
