package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/infra/auth"
	mockService "backoffice/internal/mocks/service"
	"backoffice/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	apiFixtures
	service  usecase.AuthUsecase
	previews *mockService.MockPreviewStore
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	base := newAPIFixtures(t)
	previews := mockService.NewMockPreviewStore(t)

	return authServiceFixtures{
		apiFixtures: base,
		service:     NewAuthService(base.factory, previews, auth.NewJWTInspector(), discardLogger()),
		previews:    previews,
	}
}

var validCreds = entity.Credentials{Email: "admin@example.com", Password: "secret"}

func TestAuthService_Login(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	pair := entity.TokenPair{Access: "access-1", Refresh: "refresh-1"}

	fx.api.EXPECT().Login(mock.Anything, validCreds).
		RunAndReturn(func(ctx context.Context, _ entity.Credentials) (entity.TokenPair, error) {
			return pair, fx.tokens.SetTokens(ctx, pair)
		})

	require.NoError(t, fx.service.Login(ctx, fx.tokens, validCreds))

	loggedIn, err := fx.service.LoggedIn(ctx, fx.tokens)
	require.NoError(t, err)
	assert.True(t, loggedIn)

	stored, err := fx.tokens.Tokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, pair, stored)
}

func TestAuthService_Login_ValidatesBeforeNetwork(t *testing.T) {
	fx := createTestAuthService(t)

	err := fx.service.Login(context.Background(), fx.tokens, entity.Credentials{Email: "not-an-email"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "email: must be a valid email address")
	assert.Contains(t, err.Error(), "password: is required")
}

func TestAuthService_Login_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		apiErr  error
		pair    entity.TokenPair
		wantErr error
	}{
		{
			name:    "wrong password",
			apiErr:  &domainerrors.APIError{StatusCode: 401},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name:    "bad request",
			apiErr:  &domainerrors.APIError{StatusCode: 400, Payload: []byte(`{"detail":"No active account"}`)},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name:    "half pair",
			pair:    entity.TokenPair{Access: "only-access"},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name:    "server error",
			apiErr:  &domainerrors.APIError{StatusCode: 500},
			wantErr: domainerrors.ErrRemoteGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()
			fx.api.EXPECT().Login(mock.Anything, validCreds).Return(tt.pair, tt.apiErr)

			err := fx.service.Login(ctx, fx.tokens, validCreds)
			require.ErrorIs(t, err, tt.wantErr)

			loggedIn, err := fx.service.LoggedIn(ctx, fx.tokens)
			require.NoError(t, err)
			assert.False(t, loggedIn)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, fx.tokens.SetTokens(ctx, entity.TokenPair{Access: "a", Refresh: "r"}))
	require.NoError(t, fx.tokens.SetLoggedIn(ctx, true))
	fx.previews.EXPECT().ReleaseAll(mock.Anything, testOwner).Return(2, nil)

	require.NoError(t, fx.service.Logout(ctx, fx.tokens, testOwner))

	pair, err := fx.tokens.Tokens(ctx)
	require.NoError(t, err)
	assert.True(t, pair.Empty())

	loggedIn, err := fx.service.LoggedIn(ctx, fx.tokens)
	require.NoError(t, err)
	assert.False(t, loggedIn)
}

func TestAuthService_Identity(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Identity(ctx, fx.tokens)
	require.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 3,
		"name":    "Grace Hopper",
		"email":   "grace@example.com",
	}).SignedString([]byte("not-our-key"))
	require.NoError(t, err)
	require.NoError(t, fx.tokens.SetTokens(ctx, entity.TokenPair{Access: access, Refresh: "r"}))

	identity, err := fx.service.Identity(ctx, fx.tokens)
	require.NoError(t, err)
	assert.Equal(t, "3", identity.UserID)
	assert.Equal(t, "Grace Hopper", identity.Name)
	assert.Equal(t, "GH", identity.Initials())
}
