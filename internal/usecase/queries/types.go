package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data joined with its service
type BookingView struct {
	ID                 int64     `json:"id"`
	CustomerName       string    `json:"user_name"`
	Email              string    `json:"email"`
	Phone              *string   `json:"phone_number,omitempty"`
	ServiceID          *int64    `json:"service_id,omitempty"`
	ServiceName        *string   `json:"service_name,omitempty"`
	ServicePriceCents  *int64    `json:"service_price_cents,omitempty"`
	ServiceDescription *string   `json:"service_description,omitempty"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	NumPeople          int32     `json:"num_people"`
	Status             string    `json:"status"`
	AdminNotes         *string   `json:"admin_notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type CalendarEvent struct {
	ID    int64     `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ReminderCandidate is a booking selected by the reminder window query
type ReminderCandidate struct {
	BookingID          int64
	CustomerName       string
	Email              string
	Phone              *string
	ServiceName        *string
	ServicePriceCents  *int64
	ServiceDescription *string
	StartTime          time.Time
	EndTime            time.Time
	NumPeople          int
	Status             string
}

type ServiceView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	DurationMin int32     `json:"duration_min"`
	Language    string    `json:"language"`
	ImagePath   *string   `json:"image_path,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TemplateView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TestimonialView struct {
	ID          int64      `json:"id"`
	ClientName  string     `json:"client_name"`
	ClientTitle *string    `json:"client_title,omitempty"`
	Text        string     `json:"testimonial_text"`
	Rating      int16      `json:"rating"`
	Email       *string    `json:"email,omitempty"`
	IsApproved  bool       `json:"is_approved"`
	IsFeatured  bool       `json:"is_featured"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	ApprovedBy  *string    `json:"approved_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type SettingView struct {
	ID          int64     `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Language    string    `json:"language"`
	Description *string   `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// NotificationJobView represents read-optimized notification job data
type NotificationJobView struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Topic       string    `json:"topic"`
	Recipient   string    `json:"recipient"`
	Template    string    `json:"template"`
	RunAt       time.Time `json:"run_at"`
	Attempts    int32     `json:"attempts"`
	MaxAttempts int32     `json:"max_attempts"`
	Status      string    `json:"status"`
	LastError   *string   `json:"last_error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
