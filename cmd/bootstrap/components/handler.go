package components

import (
	"github.com/Zolbayar-hub/holisticweb/internal/handler"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/api"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/middleware"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewContentHandler,
		fx.Annotate(
			func(r *notify.ReminderScanner) *notify.ReminderScanner { return r },
			fx.As(new(api.ReminderRunner)),
		),
		fx.Annotate(
			func(d *notify.Dispatcher) *notify.Dispatcher { return d },
			fx.As(new(api.SenderStatusProvider)),
		),
		api.NewAdminHandler,
		NewAdminResources,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

type adminResourceParams struct {
	fx.In

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

func NewAdminResources(p adminResourceParams) *api.AdminResources {
	return api.NewAdminResources(api.AdminResourceDeps{
		Bookings:        p.Bookings,
		BookingCmds:     p.BookingCmds,
		Services:        p.Services,
		ServiceCmds:     p.ServiceCmds,
		Templates:       p.Templates,
		TemplateCmds:    p.TemplateCmds,
		Testimonials:    p.Testimonials,
		TestimonialCmds: p.TestimonialCmds,
		Settings:        p.Settings,
		SettingCmds:     p.SettingCmds,
		Formatter:       p.Formatter,
	})
}

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	content *api.ContentHandler,
	admin *api.AdminHandler,
	resources *api.AdminResources,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Booking:   booking,
		Content:   content,
		Admin:     admin,
		Resources: resources,
	}
}
