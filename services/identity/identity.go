// File: services/identity/identity.go
package identity

import (
	"context"
	"fmt"

	"barberbook/config"
	"barberbook/models"
)

// Verify resolves a bearer token into a request-scoped Identity. The
// admin flag is the persisted claim OR'd with the configured email
// allowlist, so a freshly listed admin works before the claim has been
// reconciled.
func (s *DefaultIdentityService) Verify(ctx context.Context, idToken string) (*models.Identity, error) {
	token, err := s.Auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("token verification: %w", err)
	}

	email, _ := token.Claims["email"].(string)
	adminClaim, _ := token.Claims["admin"].(bool)

	return &models.Identity{
		UID:     token.UID,
		Email:   email,
		IsAdmin: adminClaim || config.IsAdminEmail(email),
	}, nil
}

// SetAdminClaim writes the boolean admin claim on the provider.
func (s *DefaultIdentityService) SetAdminClaim(ctx context.Context, uid string, admin bool) error {
	user, err := s.Auth.GetUser(ctx, uid)
	if err != nil {
		return fmt.Errorf("user lookup: %w", err)
	}

	claims := map[string]interface{}{}
	for k, v := range user.CustomClaims {
		claims[k] = v
	}
	claims["admin"] = admin

	if err := s.Auth.SetCustomUserClaims(ctx, uid, claims); err != nil {
		return fmt.Errorf("set claims: %w", err)
	}
	return nil
}

// CheckAndSetAdmin aligns the persisted claim with the allowlist. The
// allowlist wins in both directions: listed emails gain the claim,
// delisted ones lose it.
func (s *DefaultIdentityService) CheckAndSetAdmin(ctx context.Context, uid string) (bool, error) {
	user, err := s.Auth.GetUser(ctx, uid)
	if err != nil {
		return false, fmt.Errorf("user lookup: %w", err)
	}

	shouldBeAdmin := config.IsAdminEmail(user.Email)
	currentClaim, _ := user.CustomClaims["admin"].(bool)

	if currentClaim != shouldBeAdmin {
		if err := s.SetAdminClaim(ctx, uid, shouldBeAdmin); err != nil {
			return false, err
		}
	}
	return shouldBeAdmin, nil
}
