package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/booking"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/service"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/sitesetting"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/testimonial"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/user"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Services() ServiceRepository
	Templates() TemplateRepository
	Testimonials() TestimonialRepository
	Settings() SettingRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ServiceByID(ctx context.Context, id int64) (*ServiceSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*booking.Booking, error)
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id int64, status booking.Status, now time.Time) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type ServiceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *service.Service) (int64, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*service.Service, error)
	Update(ctx context.Context, tx sqlc.DBTX, s *service.Service) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type TemplateRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t *notification.Template) (int64, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*notification.Template, error)
	Update(ctx context.Context, tx sqlc.DBTX, t *notification.Template) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type TestimonialRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t *testimonial.Testimonial) (int64, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*testimonial.Testimonial, error)
	Update(ctx context.Context, tx sqlc.DBTX, t *testimonial.Testimonial) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type SettingRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, s *sitesetting.Setting) (int64, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*sitesetting.Setting, error)
	Update(ctx context.Context, tx sqlc.DBTX, s *sitesetting.Setting) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, job *notification.Job) error
	// ClaimDue moves due queued jobs to processing and returns them; concurrent
	// callers never receive the same job.
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]*notification.Job, error)
	SaveResult(ctx context.Context, tx sqlc.DBTX, job *notification.Job, now time.Time) error
	RequeueStale(ctx context.Context, tx sqlc.DBTX, olderThan time.Time) (int64, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
}
