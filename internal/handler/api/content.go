package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/locale"
	reqdto "github.com/Zolbayar-hub/holisticweb/internal/handler/dto/request"
	resdto "github.com/Zolbayar-hub/holisticweb/internal/handler/dto/response"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/httperr"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

// ContentHandler serves the public marketing site: services, settings,
// testimonials and the contact form.
type ContentHandler struct {
	services        queries.ServiceQueries
	settings        queries.SettingQueries
	testimonials    queries.TestimonialQueries
	testimonialCmds commands.TestimonialCommands
	contact         commands.ContactCommands
}

func NewContentHandler(
	services queries.ServiceQueries,
	settings queries.SettingQueries,
	testimonials queries.TestimonialQueries,
	testimonialCmds commands.TestimonialCommands,
	contact commands.ContactCommands,
) *ContentHandler {
	return &ContentHandler{
		services:        services,
		settings:        settings,
		testimonials:    testimonials,
		testimonialCmds: testimonialCmds,
		contact:         contact,
	}
}

// @Summary List services
// @Description Active services in the requested language (unknown languages fall back to ENG)
// @Tags content
// @Produce json
// @Param lang query string false "ENG or MON"
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *ContentHandler) ListServices(c *gin.Context) {
	items, err := h.services.ListPublic(c.Request.Context(), locale.Parse(c.Query("lang")))
	if err != nil {
		httperr.FromUsecase(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceList(items))
}

// @Summary Site settings
// @Description Key/value settings for a language, with ENG values filling missing keys
// @Tags content
// @Produce json
// @Param lang query string false "ENG or MON"
// @Success 200 {object} resdto.LocalizedSettingsResponse
// @Router /settings [get]
func (h *ContentHandler) Settings(c *gin.Context) {
	lang := locale.Parse(c.Query("lang"))
	values, err := h.settings.Localized(c.Request.Context(), lang)
	if err != nil {
		httperr.FromUsecase(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.LocalizedSettingsResponse{Language: lang.String(), Settings: values})
}

// @Summary List testimonials
// @Description Approved testimonials, newest first
// @Tags content
// @Produce json
// @Param featured query bool false "Only featured testimonials"
// @Success 200 {array} resdto.TestimonialResponse
// @Router /testimonials [get]
func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	featured, _ := strconv.ParseBool(c.Query("featured"))
	items, err := h.testimonials.ListPublic(c.Request.Context(), featured)
	if err != nil {
		httperr.FromUsecase(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTestimonialList(items))
}

// @Summary Submit testimonial
// @Description Public submission; stored unapproved until an admin approves it
// @Tags content
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitTestimonialRequest true "Testimonial"
// @Success 201 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /testimonials [post]
func (h *ContentHandler) SubmitTestimonial(c *gin.Context) {
	var req reqdto.SubmitTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.testimonialCmds.Submit(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.FromUsecase(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
}

// @Summary Contact form
// @Description Queue a contact message email to the site admin
// @Tags content
// @Accept json
// @Param request body reqdto.ContactRequest true "Message"
// @Success 202 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /contact [post]
func (h *ContentHandler) Contact(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.contact.Send(c.Request.Context(), req.ToInput()); err != nil {
		if errs.Is(err, notify.ErrNoAdminAddress) {
			httperr.Abort(c, http.StatusServiceUnavailable, err, "Contact form is not configured")
			return
		}
		httperr.FromUsecase(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true})
}
