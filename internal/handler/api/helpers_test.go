//go:build unit

package api_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/user"
	reqdto "github.com/Zolbayar-hub/holisticweb/internal/handler/dto/request"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/middleware"
	usecasemock "github.com/Zolbayar-hub/holisticweb/internal/mock/usecase"
)

const (
	adminToken  = "admin-token"
	viewerToken = "viewer-token"
)

// registerValidators installs the custom binding tags the router normally registers.
func registerValidators(t *testing.T) {
	t.Helper()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	require.NoError(t, reqdto.RegisterValidators(v, notification.DefaultCountryCode))
}

// adminGuard is RequireAuth+RequireAdmin backed by a validator that knows two tokens.
func adminGuard(ctrl *gomock.Controller, adminID uuid.UUID) []gin.HandlerFunc {
	tokens := usecasemock.NewMockTokenValidator(ctrl)
	tokens.EXPECT().ValidateToken(adminToken).Return(adminID, user.RoleAdmin, nil).AnyTimes()
	tokens.EXPECT().ValidateToken(viewerToken).Return(uuid.New(), user.RoleViewer, nil).AnyTimes()

	m := middleware.NewAuthMiddleware(tokens)
	return []gin.HandlerFunc{m.RequireAuth(), m.RequireAdmin()}
}
