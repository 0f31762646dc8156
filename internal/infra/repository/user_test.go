//go:build unit

package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil/builder"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, testUserID).Return(tt.mockError)

			repo := NewUserRepository(mockQueries)
			err := repo.UpdateLastLogin(context.Background(), nil, testUserID)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestCreateUser(t *testing.T) {
	u, err := builder.NewUserBuilder().WithEmail("new@example.com").BuildDomain()
	require.NoError(t, err)
	newID := uuid.New()

	tests := []struct {
		name      string
		mockID    uuid.UUID
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", mockID: newID},
		{name: "duplicate email", mockID: uuid.Nil, mockError: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "database error", mockID: uuid.Nil, mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateUserParams) bool {
				return p.Email == "new@example.com"
			})).Return(tt.mockID, tt.mockError)

			repo := NewUserRepository(mockQueries)
			id, err := repo.Create(context.Background(), nil, u)

			if tt.mockError != nil {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Equal(t, uuid.Nil, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, newID, id)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
