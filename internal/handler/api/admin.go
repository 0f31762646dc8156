package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "github.com/Zolbayar-hub/holisticweb/internal/handler/dto/response"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/httperr"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

type ReminderRunner interface {
	Scan(ctx context.Context) (notify.ScanReport, error)
}

type SenderStatusProvider interface {
	Status() notify.SenderStatus
}

// AdminHandler holds the back-office actions that do not fit the generic CRUD resources.
type AdminHandler struct {
	testimonialCmds commands.TestimonialCommands
	testimonials    queries.TestimonialQueries
	reminders       ReminderRunner
	notifications   queries.NotificationQueries
	senders         SenderStatusProvider
}

func NewAdminHandler(
	testimonialCmds commands.TestimonialCommands,
	testimonials queries.TestimonialQueries,
	reminders ReminderRunner,
	notifications queries.NotificationQueries,
	senders SenderStatusProvider,
) *AdminHandler {
	return &AdminHandler{
		testimonialCmds: testimonialCmds,
		testimonials:    testimonials,
		reminders:       reminders,
		notifications:   notifications,
		senders:         senders,
	}
}

// @Summary Approve testimonial
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Success 200 {object} resdto.AdminTestimonialResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/testimonials/{id}/approve [post]
func (h *AdminHandler) ApproveTestimonial(c *gin.Context) {
	h.moderate(c, func(ctx context.Context, id int64) error {
		return h.testimonialCmds.Approve(ctx, id, actorName(c))
	})
}

// @Summary Disapprove testimonial
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Success 200 {object} resdto.AdminTestimonialResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/testimonials/{id}/disapprove [post]
func (h *AdminHandler) DisapproveTestimonial(c *gin.Context) {
	h.moderate(c, h.testimonialCmds.Disapprove)
}

// @Summary Toggle featured testimonial
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Success 200 {object} resdto.AdminTestimonialResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/testimonials/{id}/feature [post]
func (h *AdminHandler) FeatureTestimonial(c *gin.Context) {
	h.moderate(c, h.testimonialCmds.ToggleFeatured)
}

func (h *AdminHandler) moderate(c *gin.Context, action func(ctx context.Context, id int64) error) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := action(c.Request.Context(), id); err != nil {
		httperr.FromUsecase(c, err)
		return
	}
	view, err := h.testimonials.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromUsecase(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTestimonialViewAdmin(view))
}

// @Summary Run reminder scan
// @Description Run one reminder scan now and report what it did
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} notify.ScanReport
// @Failure 500 {object} httperr.Response
// @Router /admin/reminders/run [post]
func (h *AdminHandler) RunReminders(c *gin.Context) {
	report, err := h.reminders.Scan(c.Request.Context())
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Reminder scan failed")
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Recent notification jobs
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "queued, processing, sent, failed or skipped"
// @Param limit query int false "Max items (default 50)"
// @Success 200 {object} map[string]any
// @Router /admin/notifications [get]
func (h *AdminHandler) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	jobs, err := h.notifications.Recent(ctx, c.Query("status"), queryInt(c, "limit", queries.DefaultRecentJobsLimit))
	if err != nil {
		httperr.FromUsecase(c, err)
		return
	}
	counts, err := h.notifications.CountByStatus(ctx)
	if err != nil {
		httperr.FromUsecase(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":   resdto.FromNotificationJobs(jobs),
		"counts": counts,
	})
}

// @Summary Notification sender status
// @Description Whether the email and SMS senders have credentials
// @Tags notifications
// @Produce json
// @Success 200 {object} resdto.NotificationStatusResponse
// @Router /notifications/status [get]
func (h *AdminHandler) NotificationStatus(c *gin.Context) {
	s := h.senders.Status()
	c.JSON(http.StatusOK, resdto.NotificationStatusResponse{EmailEnabled: s.EmailEnabled, SMSEnabled: s.SMSEnabled})
}
