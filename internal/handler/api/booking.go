package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	reqdto "github.com/Zolbayar-hub/holisticweb/internal/handler/dto/request"
	resdto "github.com/Zolbayar-hub/holisticweb/internal/handler/dto/response"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/httperr"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Create a pending booking; confirmation email/SMS and the admin notice are queued after commit
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.FromUsecase(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), in)
	if err != nil {
		httperr.FromUsecase(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.BookingCreatedResponse{Success: true, ID: result.ID, Status: result.Status})
}

// @Summary Booking calendar
// @Description Calendar feed of bookings overlapping the optional start/end range (ISO 8601)
// @Tags bookings
// @Produce json
// @Param start query string false "Only events ending at or after"
// @Param end query string false "Only events starting at or before"
// @Success 200 {array} resdto.CalendarEventResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/events [get]
func (h *BookingHandler) Events(c *gin.Context) {
	from, ok := optionalTimestamp(c, "start")
	if !ok {
		return
	}
	to, ok := optionalTimestamp(c, "end")
	if !ok {
		return
	}

	events, err := h.q.Calendar(c.Request.Context(), from, to)
	if err != nil {
		httperr.FromUsecase(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarEvents(events))
}

// @Summary Change booking status
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body reqdto.BookingStatusRequest true "New status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id}/status [post]
func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.ChangeStatus(c.Request.Context(), id, req.Status); err != nil {
		httperr.FromUsecase(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromUsecase(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func optionalTimestamp(c *gin.Context, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	t, err := reqdto.ParseTimestamp(raw)
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid "+key+" timestamp")
		return nil, false
	}
	return &t, true
}
