package service

import (
	"context"

	"routehub/internal/domain/entity"
)

// AuthClient defines the read-only integration with the external auth
// service. The route service never manages users itself; it only verifies
// tokens and resolves creator identities.
type AuthClient interface {
	// GetUserByID resolves a user's public identity. Returns (nil, nil) when
	// the user does not exist.
	GetUserByID(ctx context.Context, userID string) (*entity.Creator, error)

	// VerifyToken validates an access token and returns the identity it
	// belongs to.
	VerifyToken(ctx context.Context, token string) (*entity.Creator, error)
}
