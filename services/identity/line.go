// File: services/identity/line.go
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"

	"barberbook/models"
)

// lineProfile is the claim set LINE's verify endpoint returns for a
// valid ID token.
type lineProfile struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// LineLogin bridges a LINE sign-in to a local session: the ID token is
// verified against LINE's endpoint, a local identity keyed by the LINE
// subject is created on first sight, the customer document is upserted
// and a custom session token is minted.
func (s *DefaultIdentityService) LineLogin(ctx context.Context, lineIDToken string) (string, error) {
	profile, err := s.verifyLineToken(ctx, lineIDToken)
	if err != nil {
		return "", err
	}

	uid := "line:" + profile.Sub

	if _, err := s.Auth.GetUser(ctx, uid); err != nil {
		if !auth.IsUserNotFound(err) {
			return "", fmt.Errorf("user lookup: %w", err)
		}
		create := (&auth.UserToCreate{}).UID(uid).DisplayName(profile.Name)
		if profile.Email != "" {
			create = create.Email(profile.Email)
		}
		if profile.Picture != "" {
			create = create.PhotoURL(profile.Picture)
		}
		if _, err := s.Auth.CreateUser(ctx, create); err != nil {
			return "", fmt.Errorf("user creation: %w", err)
		}
	}

	customer := &models.Customer{
		ID:         uid,
		Name:       profile.Name,
		Email:      profile.Email,
		LineUserID: profile.Sub,
	}
	if err := s.Customers.Upsert(ctx, customer); err != nil {
		return "", fmt.Errorf("customer upsert: %w", err)
	}

	token, err := s.Auth.CustomToken(ctx, uid)
	if err != nil {
		return "", fmt.Errorf("custom token: %w", err)
	}
	return token, nil
}

// verifyLineToken posts the ID token to LINE's verification endpoint
// and checks the audience against the configured channel id.
func (s *DefaultIdentityService) verifyLineToken(ctx context.Context, lineIDToken string) (*lineProfile, error) {
	httpClient := s.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	form := url.Values{}
	form.Set("id_token", lineIDToken)
	form.Set("client_id", s.LineChannelID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.LineVerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("line verify request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read verify response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("line verify rejected token: status %d", resp.StatusCode)
	}

	var profile lineProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}
	if profile.Sub == "" {
		return nil, fmt.Errorf("line verify response missing subject")
	}
	return &profile, nil
}
