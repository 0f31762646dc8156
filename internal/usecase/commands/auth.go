package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/auth"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/user"
	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/jwt"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/password"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID uuid.UUID
	Role   user.Role
	Token  string
}

type AuthCommands interface {
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
	// SeedAdmin creates the admin account unless a user with that email exists.
	SeedAdmin(ctx context.Context, username, email, pass string) (bool, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clock,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, pass)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(userView.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), userView.ID)
	})
	if err != nil {
		// login already succeeded; only last_login is stale
		slog.Warn("failed to update last login", "user_id", userView.ID, "error", err.Error())
	}

	return &LoginResult{UserID: userView.ID, Role: role, Token: token}, nil
}

func (a *authCommandsImpl) SeedAdmin(ctx context.Context, username, email, pass string) (bool, error) {
	credentials, err := auth.NewCredentials(email, pass)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDomainValidation)
	}

	_, _, err = a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err == nil {
		return false, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return false, err
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return false, err
	}
	u, err := user.NewUser(username, credentials.Email(), hash, user.RoleAdmin, a.clock.Now())
	if err != nil {
		return false, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Users().Create(ctx, tx.DB(), u)
		return err
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrUserNotFound)
	}
	if userView == nil {
		return nil, ErrUserNotFound
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	return userView, nil
}
