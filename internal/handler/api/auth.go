package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "github.com/Zolbayar-hub/holisticweb/internal/handler/dto/request"
	resdto "github.com/Zolbayar-hub/holisticweb/internal/handler/dto/response"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/httperr"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/middleware"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/config"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/cookie"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

var errNotAuthenticated = errs.New("not authenticated")

type AuthHandler struct {
	cmds      commands.AuthCommands
	users     queries.UserQueries
	cookieCfg config.CookieConfig
	jwtCfg    config.JWTConfig
	clock     clock.Clock
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, cfg config.Config, clock clock.Clock) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		users:     users,
		cookieCfg: cfg.Cookie,
		jwtCfg:    cfg.JWT,
		clock:     clock,
	}
}

// @Summary Admin login
// @Description Login with email and password; the token is also set as an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUserNotFound),
			errs.Is(err, commands.ErrInvalidCredentials),
			errs.Is(err, commands.ErrAuthenticationFailed):
			httperr.Abort(c, http.StatusUnauthorized, err, "Invalid email or password")
		case errs.Is(err, commands.ErrUserInactive):
			httperr.Abort(c, http.StatusForbidden, err, "Account is inactive")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, result.Token, h.jwtCfg.Duration)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		ExpiresAt:   h.clock.Now().Add(h.jwtCfg.Duration).Unix(),
	})
}

// @Summary Logout
// @Description Clear the session cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Description Get the authenticated user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := middleware.GetUserContext(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, errNotAuthenticated, "User not authenticated")
		return
	}

	user, err := h.users.GetCurrentUser(c.Request.Context(), principal.UserID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			httperr.Abort(c, http.StatusNotFound, err, "User not found")
		case errs.Is(err, queries.ErrUserInactive):
			httperr.Abort(c, http.StatusForbidden, err, "Account is inactive")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUser(user, principal.IsAdmin()))
}
