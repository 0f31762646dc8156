package response

import (
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/service"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

// BookingCreatedResponse keeps the {success, id} envelope the calendar widget posts against.
type BookingCreatedResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Status  string `json:"status"`
}

type BookingResponse struct {
	ID                 int64     `json:"id"`
	CustomerName       string    `json:"user_name"`
	Email              string    `json:"email"`
	Phone              *string   `json:"phone_number,omitempty"`
	ServiceID          *int64    `json:"service_id,omitempty"`
	ServiceName        *string   `json:"service_name,omitempty"`
	ServicePrice       *string   `json:"service_price,omitempty"`
	ServiceDescription *string   `json:"service_description,omitempty"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	NumPeople          int32     `json:"num_people"`
	Status             string    `json:"status"`
	AdminNotes         *string   `json:"admin_notes,omitempty"`
	CreatedAt          int64     `json:"created_at"`
	UpdatedAt          int64     `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	copyView(&res, v)
	if v.ServicePriceCents != nil {
		price := service.ReconstructMoney(*v.ServicePriceCents).String()
		res.ServicePrice = &price
	}
	return &res
}

func FromBookingList(items []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(items))
	for i, it := range items {
		res[i] = FromBookingView(it)
	}
	return res
}

type CalendarEventResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func FromCalendarEvents(events []*queries.CalendarEvent) []*CalendarEventResponse {
	res := make([]*CalendarEventResponse, len(events))
	for i, e := range events {
		res[i] = &CalendarEventResponse{
			ID:    e.ID,
			Title: e.Title,
			Start: e.Start.UTC().Format(time.RFC3339),
			End:   e.End.UTC().Format(time.RFC3339),
		}
	}
	return res
}
