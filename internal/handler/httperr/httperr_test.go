//go:build unit

package httperr_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zolbayar-hub/holisticweb/internal/handler/httperr"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil/httptest"
)

func serve(t *testing.T, err error) (*nethttptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := nethttptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = nethttptest.NewRequest(http.MethodGet, "/", nil)
	httperr.FromUsecase(c, err)
	return rec, c
}

func TestFromUsecase(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "validation exposes its message", err: errs.Mark(errs.New("rating must be between 1 and 5"), errs.ErrDomainValidation), status: http.StatusBadRequest, message: "rating must be between 1 and 5"},
		{name: "booking not found", err: errs.Wrap(errs.ErrBookingNotFound, "load booking"), status: http.StatusNotFound, message: "Booking not found"},
		{name: "service not found", err: errs.ErrServiceNotFound, status: http.StatusNotFound, message: "Service not found"},
		{name: "template not found", err: errs.ErrTemplateNotFound, status: http.StatusNotFound, message: "Template not found"},
		{name: "testimonial not found", err: errs.ErrTestimonialNotFound, status: http.StatusNotFound, message: "Testimonial not found"},
		{name: "setting not found", err: errs.ErrSettingNotFound, status: http.StatusNotFound, message: "Setting not found"},
		{name: "duplicate template", err: errs.ErrDuplicateTemplateName, status: http.StatusConflict, message: "Template name already exists"},
		{name: "duplicate setting", err: errs.ErrDuplicateSetting, status: http.StatusConflict, message: "Setting already exists for this language"},
		{name: "database failure is hidden", err: errs.Mark(errs.New("conn reset"), errs.ErrDatabaseOperationFailed), status: http.StatusInternalServerError, message: "Internal server error"},
		{name: "unknown error is hidden", err: errs.New("boom"), status: http.StatusInternalServerError, message: "Internal server error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, c := serve(t, tc.err)
			httptest.AssertErrorResponse(t, rec, tc.status, tc.message)
			assert.True(t, c.IsAborted())
			require.Len(t, c.Errors, 1)
			assert.True(t, c.Errors[0].IsType(gin.ErrorTypePublic))
			assert.True(t, errs.Is(c.Errors[0].Err, tc.err))
		})
	}
}

func TestAbortWithError_Detail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := nethttptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	httperr.AbortWithError(c, http.StatusBadRequest, errs.New("bad"), "Invalid request", map[string]string{"field": "email"})

	assert.JSONEq(t, `{"error":{"message":"Invalid request"},"detail":{"field":"email"}}`, rec.Body.String())
	resp, ok := c.Errors[0].Meta.(httperr.Response)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
}

func TestAbortWithError_NilErrorPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(nethttptest.NewRecorder())
	assert.Panics(t, func() { httperr.Abort(c, http.StatusBadRequest, nil, "x") })
}
