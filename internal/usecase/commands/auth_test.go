//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/user"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	queriesmock "github.com/Zolbayar-hub/holisticweb/internal/mock/queries"
	sharedmock "github.com/Zolbayar-hub/holisticweb/internal/mock/shared"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/jwt"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/password"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/shared"
)

const testSecret = "unit-test-secret-unit-test-secret"

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	readStore *queriesmock.MockUserReadStore
	users     *sharedmock.MockUserRepository
	jwt       *jwt.Service
	hash      string
	cmds      commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupSuite() {
	hash, err := password.HashPassword("password123")
	s.Require().NoError(err)
	s.hash = hash
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.readStore = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.users = sharedmock.NewMockUserRepository(s.mockCtrl)

	tx := sharedmock.NewMockTx(s.mockCtrl)
	tx.EXPECT().Users().Return(s.users).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()

	uow := sharedmock.NewMockUnitOfWork(s.mockCtrl)
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).
		AnyTimes()

	s.jwt = jwt.NewService(testSecret, time.Hour)
	s.cmds = commands.NewAuthCommands(uow, s.readStore, s.jwt, clock.NewMockClock(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)))
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) adminView(active bool) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Username: "admin",
		Email:    "admin@example.com",
		Role:     string(user.RoleAdmin),
		IsActive: active,
	}
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("success: returns a token for the user", func() {
		view := s.adminView(true)
		s.readStore.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").Return(view, s.hash, nil)
		s.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), view.ID).Return(nil)

		res, err := s.cmds.Login(context.Background(), "admin@example.com", "password123")

		s.Require().NoError(err)
		s.Equal(view.ID, res.UserID)
		s.Equal(user.RoleAdmin, res.Role)
		claims, err := s.jwt.ValidateToken(res.Token)
		s.Require().NoError(err)
		s.Equal(view.ID, claims.UserID)
	})

	s.Run("success: last login failure is tolerated", func() {
		view := s.adminView(true)
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, s.hash, nil)
		s.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("update last login", errs.New("conn reset")))

		_, err := s.cmds.Login(context.Background(), "admin@example.com", "password123")

		s.Require().NoError(err)
	})

	s.Run("failure: unknown email", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := s.cmds.Login(context.Background(), "nobody@example.com", "password123")

		s.True(errs.Is(err, commands.ErrUserNotFound))
	})

	s.Run("failure: wrong password", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(s.adminView(true), s.hash, nil)

		_, err := s.cmds.Login(context.Background(), "admin@example.com", "wrong-password")

		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("failure: inactive user", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(s.adminView(false), s.hash, nil)

		_, err := s.cmds.Login(context.Background(), "admin@example.com", "password123")

		s.True(errs.Is(err, commands.ErrUserInactive))
	})

	s.Run("failure: malformed email never hits the store", func() {
		_, err := s.cmds.Login(context.Background(), "not-an-email", "password123")

		s.True(errs.Is(err, commands.ErrAuthenticationFailed))
	})
}

func (s *AuthCommandsTestSuite) TestSeedAdmin() {
	s.Run("creates the admin when missing", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), "owner@example.com").
			Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
		s.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, u *user.User) (uuid.UUID, error) {
				s.Equal("owner", u.Username())
				s.Equal(user.RoleAdmin, u.Role())
				s.NoError(password.ComparePassword(u.PasswordHash(), "s3cret-pass"))
				return u.ID(), nil
			})

		created, err := s.cmds.SeedAdmin(context.Background(), "owner", "owner@example.com", "s3cret-pass")

		s.Require().NoError(err)
		s.True(created)
	})

	s.Run("leaves an existing account alone", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(s.adminView(true), s.hash, nil)

		created, err := s.cmds.SeedAdmin(context.Background(), "admin", "admin@example.com", "password123")

		s.Require().NoError(err)
		s.False(created)
	})

	s.Run("surfaces store failures", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, "", infra.WrapRepoErr("find user", errs.New("conn refused")))

		_, err := s.cmds.SeedAdmin(context.Background(), "admin", "admin@example.com", "password123")

		s.Require().Error(err)
	})

	s.Run("rejects a weak password", func() {
		_, err := s.cmds.SeedAdmin(context.Background(), "admin", "admin@example.com", "short")

		s.True(errs.Is(err, errs.ErrDomainValidation))
	})
}
