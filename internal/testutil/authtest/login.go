//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"github.com/Zolbayar-hub/holisticweb/internal/handler/dto/request"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/cookie"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil/dbtest"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser returns the session token set by a successful login.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	session := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, session, "session cookie not set")
	require.NotEmpty(t, session.Value, "session cookie is empty")

	return session.Value
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.TestPassword)
}
