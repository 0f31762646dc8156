//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/testimonial"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/api"
	resdto "github.com/Zolbayar-hub/holisticweb/internal/handler/dto/response"
	apimock "github.com/Zolbayar-hub/holisticweb/internal/mock/api"
	commandsmock "github.com/Zolbayar-hub/holisticweb/internal/mock/commands"
	queriesmock "github.com/Zolbayar-hub/holisticweb/internal/mock/queries"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil/builder"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil/httptest"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	adminID         uuid.UUID
	testimonialCmds *commandsmock.MockTestimonialCommands
	testimonials    *queriesmock.MockTestimonialQueries
	reminders       *apimock.MockReminderRunner
	notifications   *queriesmock.MockNotificationQueries
	senders         *apimock.MockSenderStatusProvider
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.adminID = uuid.New()
	s.testimonialCmds = commandsmock.NewMockTestimonialCommands(s.mockCtrl)
	s.testimonials = queriesmock.NewMockTestimonialQueries(s.mockCtrl)
	s.reminders = apimock.NewMockReminderRunner(s.mockCtrl)
	s.notifications = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	s.senders = apimock.NewMockSenderStatusProvider(s.mockCtrl)

	h := api.NewAdminHandler(s.testimonialCmds, s.testimonials, s.reminders, s.notifications, s.senders)

	s.router.GET("/notifications/status", h.NotificationStatus)
	admin := s.router.Group("/admin", adminGuard(s.mockCtrl, s.adminID)...)
	admin.POST("/testimonials/:id/approve", h.ApproveTestimonial)
	admin.POST("/testimonials/:id/disapprove", h.DisapproveTestimonial)
	admin.POST("/testimonials/:id/feature", h.FeatureTestimonial)
	admin.POST("/reminders/run", h.RunReminders)
	admin.GET("/notifications", h.ListNotifications)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestApproveTestimonial() {
	s.Run("success: records the acting admin", func() {
		actor := s.adminID.String()
		view := builder.NewTestimonialBuilder().AsApproved().BuildView()
		approvedAt := time.Date(2025, 2, 2, 9, 0, 0, 0, time.UTC)
		view.ApprovedAt = &approvedAt
		view.ApprovedBy = &actor

		s.testimonialCmds.EXPECT().Approve(gomock.Any(), int64(1), actor).Return(nil)
		s.testimonials.EXPECT().Get(gomock.Any(), int64(1)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/testimonials/1/approve", nil, adminToken)

		var response resdto.AdminTestimonialResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.IsApproved)
		s.Equal(approvedAt.Unix(), response.ApprovedAt)
		s.Require().NotNil(response.ApprovedBy)
		s.Equal(actor, *response.ApprovedBy)
		s.Equal("sarah@example.com", *response.Email)
	})

	s.Run("error: not found", func() {
		s.testimonialCmds.EXPECT().Approve(gomock.Any(), int64(9), gomock.Any()).Return(errs.ErrTestimonialNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/testimonials/9/approve", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Testimonial not found")
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/testimonials/abc/approve", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: viewer is forbidden", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/testimonials/1/approve", nil, viewerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Admin access required")
	})
}

func (s *AdminHandlerTestSuite) TestDisapproveTestimonial() {
	view := builder.NewTestimonialBuilder().BuildView()
	s.testimonialCmds.EXPECT().Disapprove(gomock.Any(), int64(1)).Return(nil)
	s.testimonials.EXPECT().Get(gomock.Any(), int64(1)).Return(view, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/testimonials/1/disapprove", nil, adminToken)

	var response resdto.AdminTestimonialResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.False(response.IsApproved)
	s.False(response.IsFeatured)
}

func (s *AdminHandlerTestSuite) TestFeatureTestimonial() {
	s.Run("success: toggled on", func() {
		view := builder.NewTestimonialBuilder().AsApproved().AsFeatured().BuildView()
		s.testimonialCmds.EXPECT().ToggleFeatured(gomock.Any(), int64(1)).Return(nil)
		s.testimonials.EXPECT().Get(gomock.Any(), int64(1)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/testimonials/1/feature", nil, adminToken)

		var response resdto.AdminTestimonialResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.IsFeatured)
	})

	s.Run("error: unapproved testimonial cannot be featured", func() {
		s.testimonialCmds.EXPECT().ToggleFeatured(gomock.Any(), int64(2)).Return(errs.Mark(testimonial.ErrFeatureUnapproved, errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/testimonials/2/feature", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "only approved testimonials can be featured")
	})
}

func (s *AdminHandlerTestSuite) TestRunReminders() {
	s.Run("success: returns the scan report", func() {
		start := time.Date(2025, 3, 10, 13, 20, 0, 0, time.UTC)
		report := notify.ScanReport{WindowStart: start, WindowEnd: start.Add(5 * time.Minute), Found: 3, Sent: 2, Skipped: 1}
		s.reminders.EXPECT().Scan(gomock.Any()).Return(report, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/reminders/run", nil, adminToken)

		var response notify.ScanReport
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(report.WindowStart.Equal(response.WindowStart))
		s.Equal(3, response.Found)
		s.Equal(2, response.Sent)
		s.Equal(1, response.Skipped)
		s.Zero(response.Failed)
	})

	s.Run("error: scan failed", func() {
		s.reminders.EXPECT().Scan(gomock.Any()).Return(notify.ScanReport{}, errs.ErrDatabaseOperationFailed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/reminders/run", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Reminder scan failed")
	})

	s.Run("error: anonymous", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/reminders/run", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})
}

func (s *AdminHandlerTestSuite) TestListNotifications() {
	now := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
	lastErr := "smtp: 535 authentication failed"
	jobID := uuid.New()
	jobs := []*queries.NotificationJobView{{
		ID:          jobID,
		Kind:        "email",
		Topic:       "booking.created",
		Recipient:   "jane@example.com",
		Template:    "booking_confirmation",
		RunAt:       now,
		Attempts:    3,
		MaxAttempts: 3,
		Status:      "failed",
		LastError:   &lastErr,
		CreatedAt:   now,
		UpdatedAt:   now,
	}}

	s.Run("success: jobs and counts", func() {
		s.notifications.EXPECT().Recent(gomock.Any(), "failed", 10).Return(jobs, nil)
		s.notifications.EXPECT().CountByStatus(gomock.Any()).Return(map[string]int64{"sent": 12, "failed": 1}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/notifications?status=failed&limit=10", nil, adminToken)

		var response struct {
			Jobs   []resdto.NotificationJobResponse `json:"jobs"`
			Counts map[string]int64                 `json:"counts"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Jobs, 1)
		s.Equal(jobID.String(), response.Jobs[0].ID)
		s.Equal(now.Unix(), response.Jobs[0].RunAt)
		s.Equal(lastErr, *response.Jobs[0].LastError)
		s.Equal(int64(12), response.Counts["sent"])
	})

	s.Run("success: default limit", func() {
		s.notifications.EXPECT().Recent(gomock.Any(), "", queries.DefaultRecentJobsLimit).Return(nil, nil)
		s.notifications.EXPECT().CountByStatus(gomock.Any()).Return(map[string]int64{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/notifications", nil, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unknown status", func() {
		s.notifications.EXPECT().Recent(gomock.Any(), "bogus", gomock.Any()).Return(nil, errs.Mark(errs.New("unknown status"), errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/notifications?status=bogus", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "unknown status")
	})
}

func (s *AdminHandlerTestSuite) TestNotificationStatus() {
	s.senders.EXPECT().Status().Return(notify.SenderStatus{EmailEnabled: true, SMSEnabled: false})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications/status", nil, "")

	var response resdto.NotificationStatusResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.True(response.EmailEnabled)
	s.False(response.SMSEnabled)
}
