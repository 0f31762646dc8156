package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/auth"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/user"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/httperr"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/cookie"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase"
)

const (
	ctxUserKey = "user_context"
)

// UserContext is the authenticated principal derived from the session token.
type UserContext struct {
	UserID uuid.UUID
	Role   user.Role
}

func (u UserContext) IsAdmin() bool {
	return u.Role.IsAdmin()
}

var _ auth.Capability = UserContext{}

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, errUnauthenticated, "Authentication required")
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		setUserContext(c, UserContext{UserID: userID, Role: role})
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		capability, ok := GetCapability(c)
		if !ok {
			httperr.Abort(c, http.StatusUnauthorized, errUnauthenticated, "Authentication required")
			return
		}
		if !capability.IsAdmin() {
			httperr.Abort(c, http.StatusForbidden, errForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches the principal when a valid token is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err == nil {
			setUserContext(c, UserContext{UserID: userID, Role: role})
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setUserContext(c *gin.Context, u UserContext) {
	c.Set(ctxUserKey, u)
	c.Set("jwt_claims", map[string]any{
		"user_id": u.UserID.String(),
		"role":    string(u.Role),
	})
}

func GetUserContext(c *gin.Context) (UserContext, bool) {
	v, exists := c.Get(ctxUserKey)
	if !exists {
		return UserContext{}, false
	}
	u, ok := v.(UserContext)
	return u, ok
}

// GetCapability exposes only the authorization surface of the principal.
func GetCapability(c *gin.Context) (auth.Capability, bool) {
	u, ok := GetUserContext(c)
	if !ok {
		return nil, false
	}
	return u, true
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	u, ok := GetUserContext(c)
	if !ok {
		return uuid.Nil, false
	}
	return u.UserID, true
}
