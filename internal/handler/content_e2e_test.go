//go:build e2e

package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/user"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/admincrud"
	resdto "github.com/Zolbayar-hub/holisticweb/internal/handler/dto/response"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil/authtest"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil/dbtest"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil/e2e"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil/httptest"
)

type contentSuite struct {
	e2e.SharedSuite
}

func TestContentSuite(t *testing.T) {
	suite.Run(t, new(contentSuite))
}

func (s *contentSuite) adminToken() string {
	return authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
}

func (s *contentSuite) TestSettings() {
	s.Run("MON overrides fall back to ENG", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/settings?lang=mon", nil, "")

		var res resdto.LocalizedSettingsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "MON", res.Language)
		require.Equal(t, "Тэнцвэрээ ол", res.Settings["hero_title"])
		require.Equal(t, "Holistic Web", res.Settings["site_name"])
	})

	s.Run("admin upsert then duplicate update conflicts", func() {
		t := s.T()
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/settings",
			map[string]string{"key": "site_name", "value": "Холистик Веб", "language": "MON"}, token)
		var created resdto.SettingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/settings?lang=MON", nil, "")
		var res resdto.LocalizedSettingsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "Холистик Веб", res.Settings["site_name"])

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/admin/settings/"+itoa(created.ID),
			map[string]string{"key": "hero_title", "value": "x", "language": "MON"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Setting already exists for this language")
	})
}

func (s *contentSuite) TestServices() {
	s.Run("admin creates, public lists by language", func() {
		t := s.T()
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/services", map[string]any{
			"name":         "Дууны эмчилгээ",
			"description":  "Sound bath",
			"price":        "45.50",
			"duration_min": 45,
			"language":     "MON",
		}, token)
		var created resdto.ServiceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "45.50", created.Price)
		dbtest.CreateTestService(t, s.DB, "Reiki", 5000, "ENG")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/services?lang=MON", nil, "")
		var mon []resdto.ServiceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mon)
		require.Len(t, mon, 1)
		require.Equal(t, "Дууны эмчилгээ", mon[0].Name)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/services?q=reiki", nil, token)
		var list admincrud.ListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Equal(t, 1, list.Meta.Count)
		require.Equal(t, "$50", list.Items[0].Display["price"])
		require.Equal(t, "60 min", list.Items[0].Display["duration"])
	})

	s.Run("deleting a booked service keeps the booking", func() {
		t := s.T()
		token := s.adminToken()
		serviceID := dbtest.CreateTestService(t, s.DB, "Reiki", 5000, "ENG")
		bookingID := dbtest.CreateTestBooking(t, s.DB, "Jane Doe", &serviceID, mustTime(t, "2030-01-01T09:00:00Z"), "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/admin/services/"+itoa(serviceID), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/bookings/"+itoa(bookingID), nil, token)
		var b resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &b)
		require.Nil(t, b.ServiceID)
	})
}

func (s *contentSuite) TestTestimonialModeration() {
	s.Run("submission is hidden until approved", func() {
		t := s.T()
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/testimonials", map[string]any{
			"client_name":      "Sarah Johnson",
			"testimonial_text": "Deeply relaxing.",
			"rating":           5,
			"is_approved":      true,
		}, "")
		var created struct {
			ID int64 `json:"id"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/testimonials", nil, "")
		var public []resdto.TestimonialResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &public)
		require.Empty(t, public)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/testimonials/"+itoa(created.ID)+"/feature", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/testimonials/"+itoa(created.ID)+"/approve", nil, token)
		var approved resdto.AdminTestimonialResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &approved)
		require.True(t, approved.IsApproved)
		require.NotNil(t, approved.ApprovedBy)
		require.Positive(t, approved.ApprovedAt)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/testimonials/"+itoa(created.ID)+"/feature", nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/testimonials?featured=true", nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &public)
		require.Len(t, public, 1)
		require.Equal(t, "Sarah Johnson", public[0].ClientName)
	})
}

func (s *contentSuite) TestContactAndNotifications() {
	s.Run("contact message is queued for the admin", func() {
		t := s.T()
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/contact", map[string]string{
			"name": "Jane", "email": "jane@example.com", "message": "Do you offer gift cards?",
		}, "")
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/notifications?status=queued", nil, token)
		var res struct {
			Jobs   []resdto.NotificationJobResponse `json:"jobs"`
			Counts map[string]int64                 `json:"counts"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.Jobs, 1)
		require.Equal(t, "contact.message.email", res.Jobs[0].Topic)
		require.Equal(t, s.Config.Site.AdminEmail, res.Jobs[0].Recipient)
		require.Equal(t, int64(1), res.Counts["queued"])
	})

	s.Run("sender status is public", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/notifications/status", nil, "")
		var status resdto.NotificationStatusResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &status)
		require.False(s.T(), status.EmailEnabled)
		require.False(s.T(), status.SMSEnabled)
	})
}
