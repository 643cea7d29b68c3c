package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/didivui/phongnha-backend/internal/domain"
)

// ResolvePrincipal validates an access token and loads the current
// authorization state of its user. The role and active flag always come
// from the database, not the token claims, so a demotion or deactivation
// takes effect on the next request instead of at token expiry.
func (s *Service) ResolvePrincipal(ctx context.Context, accessToken string) (*domain.Principal, error) {
	userID, _, err := s.jwt.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.ResolvePrincipal get user: %w", err)
	}

	p := user.Principal()
	return &p, nil
}
