package response

import (
	"github.com/Zolbayar-hub/holisticweb/internal/domain/service"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

type ServiceResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	PriceCents  int64   `json:"price_cents"`
	DurationMin int32   `json:"duration_min"`
	Language    string  `json:"language"`
	ImagePath   *string `json:"image_path,omitempty"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	var res ServiceResponse
	copyView(&res, v)
	res.Price = service.ReconstructMoney(v.PriceCents).String()
	return &res
}

func FromServiceList(items []*queries.ServiceView) []*ServiceResponse {
	res := make([]*ServiceResponse, len(items))
	for i, it := range items {
		res[i] = FromServiceView(it)
	}
	return res
}

type TemplateResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Subject      string   `json:"subject"`
	Body         string   `json:"body"`
	Description  *string  `json:"description,omitempty"`
	Placeholders []string `json:"placeholders"`
	CreatedAt    int64    `json:"created_at"`
	UpdatedAt    int64    `json:"updated_at"`
}

func FromTemplateView(v *queries.TemplateView, placeholders []string) *TemplateResponse {
	var res TemplateResponse
	copyView(&res, v)
	res.Placeholders = placeholders
	if res.Placeholders == nil {
		res.Placeholders = []string{}
	}
	return &res
}

type TestimonialResponse struct {
	ID          int64   `json:"id"`
	ClientName  string  `json:"client_name"`
	ClientTitle *string `json:"client_title,omitempty"`
	Text        string  `json:"testimonial_text"`
	Rating      int16   `json:"rating"`
	IsFeatured  bool    `json:"is_featured"`
	CreatedAt   int64   `json:"created_at"`
}

// AdminTestimonialResponse adds the contact and moderation fields hidden from the public list.
type AdminTestimonialResponse struct {
	TestimonialResponse
	Email      *string `json:"email,omitempty"`
	IsApproved bool    `json:"is_approved"`
	ApprovedAt int64   `json:"approved_at,omitempty"`
	ApprovedBy *string `json:"approved_by,omitempty"`
	UpdatedAt  int64   `json:"updated_at"`
}

func FromTestimonialList(items []*queries.TestimonialView) []*TestimonialResponse {
	res := make([]*TestimonialResponse, len(items))
	for i, it := range items {
		var r TestimonialResponse
		copyView(&r, it)
		res[i] = &r
	}
	return res
}

func FromTestimonialViewAdmin(v *queries.TestimonialView) *AdminTestimonialResponse {
	var res AdminTestimonialResponse
	copyView(&res, v)
	return &res
}

type SettingResponse struct {
	ID          int64   `json:"id"`
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Language    string  `json:"language"`
	Description *string `json:"description,omitempty"`
	UpdatedAt   int64   `json:"updated_at"`
}

func FromSettingView(v *queries.SettingView) *SettingResponse {
	var res SettingResponse
	copyView(&res, v)
	return &res
}

type LocalizedSettingsResponse struct {
	Language string            `json:"language"`
	Settings map[string]string `json:"settings"`
}

type NotificationJobResponse struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Topic       string  `json:"topic"`
	Recipient   string  `json:"recipient"`
	Template    string  `json:"template"`
	RunAt       int64   `json:"run_at"`
	Attempts    int32   `json:"attempts"`
	MaxAttempts int32   `json:"max_attempts"`
	Status      string  `json:"status"`
	LastError   *string `json:"last_error,omitempty"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
}

func FromNotificationJobs(items []*queries.NotificationJobView) []*NotificationJobResponse {
	res := make([]*NotificationJobResponse, len(items))
	for i, it := range items {
		var r NotificationJobResponse
		copyView(&r, it)
		res[i] = &r
	}
	return res
}

type NotificationStatusResponse struct {
	EmailEnabled bool `json:"email_enabled"`
	SMSEnabled   bool `json:"sms_enabled"`
}
