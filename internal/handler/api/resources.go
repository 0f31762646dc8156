package api

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/service"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/admincrud"
	reqdto "github.com/Zolbayar-hub/holisticweb/internal/handler/dto/request"
	resdto "github.com/Zolbayar-hub/holisticweb/internal/handler/dto/response"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

type mountable interface {
	Mount(g *gin.RouterGroup)
}

// AdminResources is the set of generic CRUD resources exposed under /api/admin.
type AdminResources struct {
	resources []mountable
}

type AdminResourceDeps struct {
	Bookings        queries.BookingQueries
	BookingCmds     commands.BookingCommands
	Services        queries.ServiceQueries
	ServiceCmds     commands.ServiceCommands
	Templates       queries.TemplateQueries
	TemplateCmds    commands.TemplateCommands
	Testimonials    queries.TestimonialQueries
	TestimonialCmds commands.TestimonialCommands
	Settings        queries.SettingQueries
	SettingCmds     commands.SettingCommands
	Formatter       *notify.TokenFormatter
}

func NewAdminResources(d AdminResourceDeps) *AdminResources {
	return &AdminResources{resources: []mountable{
		bookingResource(d),
		serviceResource(d),
		templateResource(d),
		testimonialResource(d),
		settingResource(d),
	}}
}

func (a *AdminResources) Mount(g *gin.RouterGroup) {
	for _, r := range a.resources {
		r.Mount(g)
	}
}

func bookingResource(d AdminResourceDeps) *admincrud.Resource[*queries.BookingView, reqdto.AdminBookingRequest] {
	return admincrud.NewResource(admincrud.Schema[*queries.BookingView, reqdto.AdminBookingRequest]{
		Entity:       "bookings",
		SearchFields: []string{"user_name", "email", "phone_number"},
		FilterFields: []string{"status"},
		Formatters: map[string]admincrud.Formatter[*queries.BookingView]{
			"start_time": func(b *queries.BookingView) string { return d.Formatter.FormatTime(b.StartTime) },
			"end_time":   func(b *queries.BookingView) string { return d.Formatter.FormatTime(b.EndTime) },
			"title":      func(b *queries.BookingView) string { return queries.CalendarTitle(b.CustomerName, b.Status) },
		},
		List: func(ctx context.Context, params queries.ListParams, f admincrud.Filters) ([]*queries.BookingView, error) {
			return d.Bookings.List(ctx, queries.BookingFilter{ListParams: params, Status: f["status"]})
		},
		Get: d.Bookings.Get,
		Create: func(ctx context.Context, _ string, req reqdto.AdminBookingRequest) (int64, error) {
			in, err := req.ToInput()
			if err != nil {
				return 0, err
			}
			res, err := d.BookingCmds.AdminCreate(ctx, in)
			if err != nil {
				return 0, err
			}
			return res.ID, nil
		},
		Update: func(ctx context.Context, id int64, _ string, req reqdto.AdminBookingRequest) error {
			in, err := req.ToInput()
			if err != nil {
				return err
			}
			return d.BookingCmds.Update(ctx, id, in)
		},
		Delete:  d.BookingCmds.Delete,
		Present: func(b *queries.BookingView) any { return resdto.FromBookingView(b) },
	})
}

func serviceResource(d AdminResourceDeps) *admincrud.Resource[*queries.ServiceView, reqdto.ServiceRequest] {
	return admincrud.NewResource(admincrud.Schema[*queries.ServiceView, reqdto.ServiceRequest]{
		Entity:       "services",
		SearchFields: []string{"name", "description"},
		Formatters: map[string]admincrud.Formatter[*queries.ServiceView]{
			"price":    func(s *queries.ServiceView) string { return "$" + service.ReconstructMoney(s.PriceCents).String() },
			"duration": func(s *queries.ServiceView) string { return strconv.Itoa(int(s.DurationMin)) + " min" },
		},
		List: func(ctx context.Context, params queries.ListParams, _ admincrud.Filters) ([]*queries.ServiceView, error) {
			return d.Services.List(ctx, params)
		},
		Get: d.Services.Get,
		Create: func(ctx context.Context, _ string, req reqdto.ServiceRequest) (int64, error) {
			in, err := req.ToInput()
			if err != nil {
				return 0, err
			}
			return d.ServiceCmds.Create(ctx, in)
		},
		Update: func(ctx context.Context, id int64, _ string, req reqdto.ServiceRequest) error {
			in, err := req.ToInput()
			if err != nil {
				return err
			}
			return d.ServiceCmds.Update(ctx, id, in)
		},
		Delete:  d.ServiceCmds.Delete,
		Present: func(s *queries.ServiceView) any { return resdto.FromServiceView(s) },
	})
}

func templateResource(d AdminResourceDeps) *admincrud.Resource[*queries.TemplateView, reqdto.TemplateRequest] {
	return admincrud.NewResource(admincrud.Schema[*queries.TemplateView, reqdto.TemplateRequest]{
		Entity:       "templates",
		SearchFields: []string{"name", "subject"},
		List: func(ctx context.Context, params queries.ListParams, _ admincrud.Filters) ([]*queries.TemplateView, error) {
			return d.Templates.List(ctx, params)
		},
		Get: d.Templates.Get,
		Create: func(ctx context.Context, _ string, req reqdto.TemplateRequest) (int64, error) {
			return d.TemplateCmds.Create(ctx, req.ToInput())
		},
		Update: func(ctx context.Context, id int64, _ string, req reqdto.TemplateRequest) error {
			return d.TemplateCmds.Update(ctx, id, req.ToInput())
		},
		Delete: d.TemplateCmds.Delete,
		Present: func(t *queries.TemplateView) any {
			return resdto.FromTemplateView(t, notification.Placeholders(t.Subject+"\n"+t.Body))
		},
	})
}

func testimonialResource(d AdminResourceDeps) *admincrud.Resource[*queries.TestimonialView, reqdto.AdminTestimonialRequest] {
	return admincrud.NewResource(admincrud.Schema[*queries.TestimonialView, reqdto.AdminTestimonialRequest]{
		Entity:       "testimonials",
		SearchFields: []string{"client_name", "testimonial_text"},
		FilterFields: []string{"approved"},
		Formatters: map[string]admincrud.Formatter[*queries.TestimonialView]{
			"rating": func(t *queries.TestimonialView) string { return strconv.Itoa(int(t.Rating)) + "/5" },
		},
		List: func(ctx context.Context, params queries.ListParams, f admincrud.Filters) ([]*queries.TestimonialView, error) {
			filter := queries.TestimonialFilter{ListParams: params}
			if v, err := strconv.ParseBool(f["approved"]); err == nil {
				filter.Approved = &v
			}
			return d.Testimonials.List(ctx, filter)
		},
		Get: d.Testimonials.Get,
		Create: func(ctx context.Context, actor string, req reqdto.AdminTestimonialRequest) (int64, error) {
			return d.TestimonialCmds.Create(ctx, req.ToInput(), actor)
		},
		Update: func(ctx context.Context, id int64, actor string, req reqdto.AdminTestimonialRequest) error {
			return d.TestimonialCmds.Update(ctx, id, req.ToInput(), actor)
		},
		Delete:  d.TestimonialCmds.Delete,
		Present: func(t *queries.TestimonialView) any { return resdto.FromTestimonialViewAdmin(t) },
	})
}

func settingResource(d AdminResourceDeps) *admincrud.Resource[*queries.SettingView, reqdto.SettingRequest] {
	return admincrud.NewResource(admincrud.Schema[*queries.SettingView, reqdto.SettingRequest]{
		Entity:       "settings",
		SearchFields: []string{"key", "value"},
		List: func(ctx context.Context, params queries.ListParams, _ admincrud.Filters) ([]*queries.SettingView, error) {
			return d.Settings.List(ctx, params)
		},
		Get: d.Settings.Get,
		Create: func(ctx context.Context, _ string, req reqdto.SettingRequest) (int64, error) {
			return d.SettingCmds.Upsert(ctx, req.ToInput())
		},
		Update: func(ctx context.Context, id int64, _ string, req reqdto.SettingRequest) error {
			return d.SettingCmds.Update(ctx, id, req.ToInput())
		},
		Delete:  d.SettingCmds.Delete,
		Present: func(s *queries.SettingView) any { return resdto.FromSettingView(s) },
	})
}
