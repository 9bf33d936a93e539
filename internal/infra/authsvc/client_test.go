package authsvc

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"routehub/config"
	domainerrors "routehub/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewClient(&config.Config{
		AuthService: &config.AuthServiceConfig{
			URL:       server.URL,
			JWTSecret: testSecret,
		},
	}, logger)
	require.NoError(t, err)

	authClient, ok := svc.(*client)
	require.True(t, ok)

	return authClient
}

func signTestToken(t *testing.T, uid string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": uid,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}

func userHandler(t *testing.T, user map[string]any) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Query, "getUser")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"getUser": user},
		})
	}
}

func TestNewClient_RequiresURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewClient(&config.Config{}, logger)
	require.Error(t, err)

	_, err = NewClient(&config.Config{AuthService: &config.AuthServiceConfig{}}, logger)
	require.Error(t, err)
}

func TestGetUserByID_Success(t *testing.T) {
	authClient := newTestClient(t, userHandler(t, map[string]any{
		"id":       "user-1",
		"email":    "runner@example.com",
		"alias":    "runner",
		"photoUrl": "https://cdn.example.com/p.jpg",
	}))

	user, err := authClient.GetUserByID(context.Background(), "user-1")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "runner@example.com", user.Email)
	assert.Equal(t, "runner", user.Alias)
}

func TestGetUserByID_MissingUserReturnsNil(t *testing.T) {
	authClient := newTestClient(t, userHandler(t, nil))

	user, err := authClient.GetUserByID(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestVerifyToken_Success(t *testing.T) {
	authClient := newTestClient(t, userHandler(t, map[string]any{
		"id":    "user-1",
		"email": "runner@example.com",
	}))

	user, err := authClient.VerifyToken(context.Background(), signTestToken(t, "user-1"))

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
}

func TestVerifyToken_RejectsGarbage(t *testing.T) {
	authClient := newTestClient(t, userHandler(t, nil))

	_, err := authClient.VerifyToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)

	_, err = authClient.VerifyToken(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestVerifyToken_RejectsWrongSecret(t *testing.T) {
	authClient := newTestClient(t, userHandler(t, nil))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"uid": "user-1"})
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = authClient.VerifyToken(context.Background(), signed)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestVerifyToken_UnknownUser(t *testing.T) {
	authClient := newTestClient(t, userHandler(t, nil))

	_, err := authClient.VerifyToken(context.Background(), signTestToken(t, "ghost"))
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}
