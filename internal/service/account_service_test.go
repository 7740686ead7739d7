package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"leads-admin-service/internal/auth"
	"leads-admin-service/internal/logger"
	"leads-admin-service/internal/model"
	"leads-admin-service/internal/repository"
	"leads-admin-service/internal/service"
	"leads-admin-service/internal/service/mocks"
)

func newAccountService(t *testing.T, ur *mocks.UserRepository) (*service.AccountService, *auth.Passwords, *auth.Tokens) {
	t.Helper()
	passwords := auth.NewPasswords(bcrypt.MinCost)
	tokens := auth.NewTokens("test-secret", time.Hour)
	return service.NewAccountService(ur, passwords, tokens, logger.NewNop()), passwords, tokens
}

func TestAccountService_Login(t *testing.T) {
	ur := new(mocks.UserRepository)
	svc, passwords, tokens := newAccountService(t, ur)

	hash, err := passwords.Hash("correct-horse")
	require.NoError(t, err)

	admin := model.User{ID: "u1", UserName: "admin", Role: model.RoleRoot, IsActive: true, PasswordHash: hash, SessionVersion: 4}
	disabled := model.User{ID: "u2", UserName: "gone", Role: model.RolePoster, IsActive: false, PasswordHash: hash}

	ur.On("GetByUserName", mock.Anything, "admin").Return(admin, nil)
	ur.On("GetByUserName", mock.Anything, "gone").Return(disabled, nil)
	ur.On("GetByUserName", mock.Anything, "nobody").Return(model.User{}, repository.ErrUserNotFound)
	ur.On("GetByUserName", mock.Anything, "broken").Return(model.User{}, errors.New("db down"))

	t.Run("Success", func(t *testing.T) {
		res, err := svc.Login(context.Background(), "admin", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "u1", res.User.ID)

		claims, err := tokens.Parse(res.Token)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID())
		assert.Equal(t, 4, claims.SessionVersion)
		assert.Equal(t, model.RoleRoot, claims.Role)
	})

	tests := []struct {
		name       string
		userName   string
		password   string
		wantStatus int
	}{
		{"Error: wrong password", "admin", "wrong", http.StatusUnauthorized},
		{"Error: unknown user", "nobody", "correct-horse", http.StatusUnauthorized},
		{"Error: inactive user", "gone", "correct-horse", http.StatusUnauthorized},
		{"Error: empty credentials", "", "", http.StatusBadRequest},
		{"Error: storage failure", "broken", "x", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.userName, tt.password)
			assertStatus(t, err, tt.wantStatus)
		})
	}
}

func TestAccountService_ChangePassword(t *testing.T) {
	passwords := auth.NewPasswords(bcrypt.MinCost)
	hash, err := passwords.Hash("old-password")
	require.NoError(t, err)
	user := model.User{ID: "u1", Role: model.RoleRoot, IsActive: true, PasswordHash: hash, SessionVersion: 1}

	tests := []struct {
		name       string
		current    string
		next       string
		setupMocks func(ur *mocks.UserRepository)
		wantStatus int
		wantMsg    string
	}{
		{
			name:    "Success: version bumped",
			current: "old-password",
			next:    "new-password",
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("GetByID", mock.Anything, "u1").Return(user, nil)
				ur.On("UpdatePassword", mock.Anything, "u1", mock.MatchedBy(func(h string) bool {
					return passwords.Matches(h, "new-password")
				})).Return(2, nil)
			},
		},
		{
			name:       "Error: missing fields",
			current:    "",
			next:       "new-password",
			setupMocks: func(ur *mocks.UserRepository) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Current password and new password are required.",
		},
		{
			name:       "Error: too short",
			current:    "old-password",
			next:       "short",
			setupMocks: func(ur *mocks.UserRepository) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "New password must be at least 8 characters.",
		},
		{
			name:    "Error: wrong current password",
			current: "not-the-password",
			next:    "new-password",
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("GetByID", mock.Anything, "u1").Return(user, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Current password is incorrect.",
		},
		{
			name:    "Error: same password",
			current: "old-password",
			next:    "old-password",
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("GetByID", mock.Anything, "u1").Return(user, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "New password must be different from current password.",
		},
		{
			name:    "Error: user vanished",
			current: "old-password",
			next:    "new-password",
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("GetByID", mock.Anything, "u1").Return(model.User{}, repository.ErrUserNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:    "Error: update fails",
			current: "old-password",
			next:    "new-password",
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("GetByID", mock.Anything, "u1").Return(user, nil)
				ur.On("UpdatePassword", mock.Anything, "u1", mock.Anything).Return(0, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ur := new(mocks.UserRepository)
			tt.setupMocks(ur)
			svc := service.NewAccountService(ur, passwords, auth.NewTokens("s", time.Hour), logger.NewNop())

			err := svc.ChangePassword(context.Background(), "u1", tt.current, tt.next)

			if tt.wantStatus != 0 {
				assertStatus(t, err, tt.wantStatus)
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, service.AsAppError(err).Message)
				}
			} else {
				require.NoError(t, err)
			}
			ur.AssertExpectations(t)
		})
	}
}
