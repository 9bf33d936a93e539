// Package authsvc integrates with the external authentication service over
// its GraphQL HTTP endpoint. Users are never managed here; the client only
// verifies tokens and resolves public identities.
package authsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"routehub/config"
	"routehub/internal/domain/entity"
	domainerrors "routehub/internal/domain/errors"
	"routehub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// getUserQuery resolves a user's public identity by ID.
const getUserQuery = `
	query GetUser($userId: String!) {
		getUser(userId: $userId) {
			id
			email
			alias
			photoUrl
		}
	}`

// client implements service.AuthClient. Access tokens are HMAC JWTs issued
// by the auth service; verification happens locally against the shared
// secret, then the subject is resolved through the GraphQL endpoint.
type client struct {
	url        string
	jwtSecret  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for the auth service client. A missing URL is
// a configuration error and fails startup.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.AuthClient, error) {
	if cfg == nil || cfg.AuthService == nil || cfg.AuthService.URL == "" {
		return nil, errors.New("auth service URL is required")
	}

	timeout := cfg.AuthService.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		url:       cfg.AuthService.URL,
		jwtSecret: cfg.AuthService.JWTSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// graphqlRequest is the wire format for queries against the auth service.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type getUserResponse struct {
	Data struct {
		GetUser *entity.Creator `json:"getUser"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

// GetUserByID resolves a user's public identity. Returns (nil, nil) when the
// auth service reports no such user.
func (c *client) GetUserByID(ctx context.Context, userID string) (*entity.Creator, error) {
	body, err := c.executeQuery(ctx, getUserQuery, map[string]any{"userId": userID})
	if err != nil {
		return nil, err
	}

	var parsed getUserResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode auth service response")
	}

	if len(parsed.Errors) > 0 {
		c.logger.Warn("auth service returned GraphQL errors",
			slog.String("userId", userID),
			slog.String("firstError", parsed.Errors[0].Message),
		)
	}

	return parsed.Data.GetUser, nil
}

// VerifyToken validates an access token and resolves the identity it belongs
// to. The token must be an HMAC-signed JWT carrying the user ID in its "uid"
// claim; the user must still exist in the auth service.
func (c *client) VerifyToken(ctx context.Context, token string) (*entity.Creator, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.ErrTokenInvalid
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(c.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid
	}

	uid, _ := claims["uid"].(string)
	if uid == "" {
		return nil, domainerrors.ErrTokenInvalid
	}

	user, err := c.GetUserByID(ctx, uid)
	if err != nil {
		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	}
	if user == nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	return user, nil
}

// executeQuery POSTs a GraphQL document and returns the raw response body.
func (c *client) executeQuery(ctx context.Context, query string, variables map[string]any) ([]byte, error) {
	payload, err := json.Marshal(graphqlRequest{
		Query:     query,
		Variables: variables,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal auth service request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build auth service request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "auth service request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read auth service response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("auth service returned status %d", resp.StatusCode)
	}

	return body, nil
}
