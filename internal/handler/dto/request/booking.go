package request

import (
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/patch"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"
)

type CreateBookingRequest struct {
	UserName    string  `json:"user_name" binding:"required,max=100"`
	Email       string  `json:"email" binding:"required,email"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,e164ish"`
	ServiceID   *int64  `json:"service_id" binding:"omitempty,min=1"`
	StartTime   string  `json:"start_time" binding:"required"`
	EndTime     string  `json:"end_time" binding:"required"`
	NumPeople   *int    `json:"num_people" binding:"omitempty,min=1,max=20"`
}

func (r *CreateBookingRequest) ToInput() (commands.BookingInput, error) {
	start, err := ParseTimestamp(r.StartTime)
	if err != nil {
		return commands.BookingInput{}, err
	}
	end, err := ParseTimestamp(r.EndTime)
	if err != nil {
		return commands.BookingInput{}, err
	}
	return commands.BookingInput{
		CustomerName: r.UserName,
		Email:        r.Email,
		Phone:        patch.Coalesce(r.PhoneNumber, ""),
		ServiceID:    r.ServiceID,
		Start:        start,
		End:          end,
		NumPeople:    patch.Coalesce(r.NumPeople, 1),
	}, nil
}

// AdminBookingRequest is the back-office shape; status and notes are editable here only.
type AdminBookingRequest struct {
	CreateBookingRequest
	Status     string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	AdminNotes string `json:"admin_notes" binding:"max=2000"`
}

func (r *AdminBookingRequest) ToInput() (commands.BookingInput, error) {
	in, err := r.CreateBookingRequest.ToInput()
	if err != nil {
		return commands.BookingInput{}, err
	}
	in.Status = r.Status
	in.AdminNotes = r.AdminNotes
	return in, nil
}

type BookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}
