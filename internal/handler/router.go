package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Zolbayar-hub/holisticweb/internal/handler/api"
	reqdto "github.com/Zolbayar-hub/holisticweb/internal/handler/dto/request"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/middleware"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Booking   *api.BookingHandler
	Content   *api.ContentHandler
	Admin     *api.AdminHandler
	Resources *api.AdminResources
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, logger *middleware.Logger, rdb *redis.Client) error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := reqdto.RegisterValidators(v, cfg.SMS.CountryCode); err != nil {
			return err
		}
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, middleware.RateLimit(cfg.RateLimit, rdb, logger.GetSlogLogger()))
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.LoggingMiddleware(logger.GetSlogLogger()))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimit gin.HandlerFunc) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// legacy calendar widget path
	addRoutes(engine.Group("/booking"), []route{
		{Method: http.MethodGet, Path: "/events", Handler: h.Booking.Events},
		{Method: http.MethodPost, Path: "/events", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{rateLimit}},
	})

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/bookings/events", Handler: h.Booking.Events},
			{Method: http.MethodPost, Path: "/bookings/events", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{rateLimit}},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{rateLimit}},
			{Method: http.MethodGet, Path: "/services", Handler: h.Content.ListServices},
			{Method: http.MethodGet, Path: "/settings", Handler: h.Content.Settings},
			{Method: http.MethodGet, Path: "/testimonials", Handler: h.Content.ListTestimonials},
			{Method: http.MethodPost, Path: "/testimonials", Handler: h.Content.SubmitTestimonial, Mw: []gin.HandlerFunc{rateLimit}},
			{Method: http.MethodPost, Path: "/contact", Handler: h.Content.Contact, Mw: []gin.HandlerFunc{rateLimit}},
			{Method: http.MethodGet, Path: "/notifications/status", Handler: h.Admin.NotificationStatus},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			h.Resources.Mount(admin)
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/bookings/:id/status", Handler: h.Booking.ChangeStatus},
				{Method: http.MethodPost, Path: "/testimonials/:id/approve", Handler: h.Admin.ApproveTestimonial},
				{Method: http.MethodPost, Path: "/testimonials/:id/disapprove", Handler: h.Admin.DisapproveTestimonial},
				{Method: http.MethodPost, Path: "/testimonials/:id/feature", Handler: h.Admin.FeatureTestimonial},
				{Method: http.MethodPost, Path: "/reminders/run", Handler: h.Admin.RunReminders},
				{Method: http.MethodGet, Path: "/notifications", Handler: h.Admin.ListNotifications},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
