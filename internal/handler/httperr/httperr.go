package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func Abort(c *gin.Context, status int, err error, msg string) {
	AbortWithError(c, status, err, msg, nil)
}

type mapping struct {
	sentinel error
	status   int
	message  string
}

// usecaseErrors is checked in order; the first matching sentinel wins.
var usecaseErrors = []mapping{
	{errs.ErrDomainValidation, http.StatusBadRequest, ""},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrServiceNotFound, http.StatusNotFound, "Service not found"},
	{errs.ErrTemplateNotFound, http.StatusNotFound, "Template not found"},
	{errs.ErrTestimonialNotFound, http.StatusNotFound, "Testimonial not found"},
	{errs.ErrSettingNotFound, http.StatusNotFound, "Setting not found"},
	{errs.ErrDuplicateTemplateName, http.StatusConflict, "Template name already exists"},
	{errs.ErrDuplicateSetting, http.StatusConflict, "Setting already exists for this language"},
}

// FromUsecase maps a usecase error onto the response envelope. Validation
// errors expose their own message; anything unrecognized becomes a 500.
func FromUsecase(c *gin.Context, err error) {
	for _, m := range usecaseErrors {
		if !errs.Is(err, m.sentinel) {
			continue
		}
		msg := m.message
		if msg == "" {
			msg = err.Error()
		}
		AbortWithError(c, m.status, err, msg, nil)
		return
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
