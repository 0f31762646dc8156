package components

import (
	"github.com/Zolbayar-hub/holisticweb/internal/infra/readstore"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/infra/uow"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(notify.BookingWindowReader)),
		),
		// Service
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ServiceViewQueries)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		// Template
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TemplateViewQueries)),
		),
		fx.Annotate(
			readstore.NewTemplateReadStore,
			fx.As(new(queries.TemplateReadStore)),
			fx.As(new(notify.TemplateLookup)),
		),
		// Testimonial
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TestimonialViewQueries)),
		),
		fx.Annotate(
			readstore.NewTestimonialReadStore,
			fx.As(new(queries.TestimonialReadStore)),
		),
		// Setting
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SettingViewQueries)),
		),
		fx.Annotate(
			readstore.NewSettingReadStore,
			fx.As(new(queries.SettingReadStore)),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationViewQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

// repositories are built per transaction inside the unit of work
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
