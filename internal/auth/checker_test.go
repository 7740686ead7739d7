package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leads-admin-service/internal/auth"
	"leads-admin-service/internal/auth/mocks"
	"leads-admin-service/internal/model"
	"leads-admin-service/internal/repository"
)

func TestChecker_Check(t *testing.T) {
	claims := &auth.Claims{Role: model.RoleRoot, SessionVersion: 2}
	claims.Subject = "u1"

	tests := []struct {
		name    string
		state   model.SessionState
		err     error
		wantErr error
	}{
		{
			name:  "Success: active user, same version",
			state: model.SessionState{UserID: "u1", Role: model.RoleRoot, IsActive: true, SessionVersion: 2},
		},
		{
			name:    "Fail: user deleted",
			err:     repository.ErrUserNotFound,
			wantErr: auth.ErrSessionInvalid,
		},
		{
			name:    "Fail: user deactivated",
			state:   model.SessionState{UserID: "u1", IsActive: false, SessionVersion: 2},
			wantErr: auth.ErrSessionInvalid,
		},
		{
			name:    "Fail: password changed since issuance",
			state:   model.SessionState{UserID: "u1", IsActive: true, SessionVersion: 3},
			wantErr: auth.ErrSessionInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.SessionStore)
			store.On("GetSessionState", mock.Anything, "u1").Return(tt.state, tt.err)

			p, err := auth.NewChecker(store).Check(context.Background(), claims)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, auth.Principal{UserID: "u1", Role: model.RoleRoot, SessionVersion: 2}, p)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestChecker_StoreFailureIsNotInvalidSession(t *testing.T) {
	claims := &auth.Claims{}
	claims.Subject = "u1"

	store := new(mocks.SessionStore)
	store.On("GetSessionState", mock.Anything, "u1").Return(model.SessionState{}, errors.New("db down"))

	_, err := auth.NewChecker(store).Check(context.Background(), claims)
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrSessionInvalid)
}

// Смена версии в хранилище инвалидирует все ранее выданные токены.
func TestSessions_VersionBumpRevokesTokens(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour)
	user := model.User{ID: "u1", Role: model.RoleRoot, SessionVersion: 0}

	first, _, err := tokens.Issue(user)
	require.NoError(t, err)
	second, _, err := tokens.Issue(user)
	require.NoError(t, err)

	version := 0
	store := new(mocks.SessionStore)
	store.On("GetSessionState", mock.Anything, "u1").Return(func(context.Context, string) model.SessionState {
		return model.SessionState{UserID: "u1", Role: model.RoleRoot, IsActive: true, SessionVersion: version}
	}, nil)

	sessions := auth.NewSessions(tokens, auth.NewChecker(store))

	_, err = sessions.Authenticate(context.Background(), first)
	require.NoError(t, err)

	version = 1

	for _, raw := range []string{first, second} {
		_, err = sessions.Authenticate(context.Background(), raw)
		assert.ErrorIs(t, err, auth.ErrSessionInvalid)
	}
}

func TestPrincipalContext(t *testing.T) {
	_, ok := auth.PrincipalFrom(context.Background())
	assert.False(t, ok)

	want := auth.Principal{UserID: "u1", Role: model.RolePoster}
	got, ok := auth.PrincipalFrom(auth.WithPrincipal(context.Background(), want))
	assert.True(t, ok)
	assert.Equal(t, want, got)
}
