// File: services/identity/interface.go
package identity

import (
	"context"
	"net/http"

	"firebase.google.com/go/v4/auth"

	customerRepo "barberbook/database/repository/customer"
	"barberbook/models"
)

// IdentityService is the application's only contact with the auth
// provider: token verification, the admin claim and the LINE bridge.
// Token issuance and session storage stay on the provider's side.
type IdentityService interface {
	Verify(ctx context.Context, idToken string) (*models.Identity, error)
	SetAdminClaim(ctx context.Context, uid string, admin bool) error
	// CheckAndSetAdmin reconciles the configured admin-email allowlist
	// with the persisted claim and reports the resulting admin state.
	CheckAndSetAdmin(ctx context.Context, uid string) (bool, error)
	// LineLogin verifies a LINE ID token and mints a local session
	// token for the matching (created on demand) local identity.
	LineLogin(ctx context.Context, lineIDToken string) (string, error)
}

// AuthClient is the slice of the Firebase Auth API this service uses.
// *auth.Client satisfies it.
type AuthClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	SetCustomUserClaims(ctx context.Context, uid string, customClaims map[string]interface{}) error
	CustomToken(ctx context.Context, uid string) (string, error)
}

// DefaultIdentityService is the production implementation.
type DefaultIdentityService struct {
	Auth          AuthClient
	Customers     customerRepo.CustomerRepository
	HTTPClient    *http.Client
	LineVerifyURL string
	LineChannelID string
}
