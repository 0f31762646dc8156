//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Zolbayar-hub/holisticweb/internal/infra"
	sqlc "github.com/Zolbayar-hub/holisticweb/internal/infra/sqlc/generated"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil/builder"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().WithEmail("gone@example.com").AsInactive().BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.Users
		mockError  error
		wantKind   infra.RepositoryErrorKind
		wantActive bool
	}{
		{
			name:       "success - active user",
			email:      testUser.Email,
			mockReturn: testUser,
			wantActive: true,
		},
		{
			name:       "success - inactive user still returned for the login check",
			email:      inactiveUser.Email,
			mockReturn: inactiveUser,
			wantActive: false,
		},
		{
			name:      "user not found",
			email:     "notfound@example.com",
			mockError: sql.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			email:     testUser.Email,
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			store := NewUserReadStore(mockQueries, nil)
			view, hash, err := store.FindByEmail(context.Background(), tt.email)

			if tt.mockError != nil {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, view)
				assert.Empty(t, hash)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn.ID, view.ID)
				assert.Equal(t, tt.mockReturn.Email, view.Email)
				assert.Equal(t, tt.wantActive, view.IsActive)
				assert.Equal(t, tt.mockReturn.PasswordHash, hash)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().WithRole("editor").BuildInfra()

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("FindUserByID", mock.Anything, mock.Anything, testUser.ID).Return(testUser, nil)

		view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), testUser.ID)

		require.NoError(t, err)
		assert.Equal(t, "editor", view.Role)
		assert.Equal(t, testUser.Username, view.Username)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("FindUserByID", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Users{}, sql.ErrNoRows)

		_, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
