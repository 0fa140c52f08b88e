package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberbook/config"
	"barberbook/models"
)

type fakeAuth struct {
	verifyToken *auth.Token
	verifyErr   error
	users       map[string]*auth.UserRecord
	setClaims   map[string]map[string]interface{}
	customToken string
}

func (f *fakeAuth) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return f.verifyToken, f.verifyErr
}

func (f *fakeAuth) GetUser(_ context.Context, uid string) (*auth.UserRecord, error) {
	u, ok := f.users[uid]
	if !ok {
		return nil, errors.New("no such user")
	}
	return u, nil
}

func (f *fakeAuth) CreateUser(context.Context, *auth.UserToCreate) (*auth.UserRecord, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAuth) SetCustomUserClaims(_ context.Context, uid string, claims map[string]interface{}) error {
	if f.setClaims == nil {
		f.setClaims = map[string]map[string]interface{}{}
	}
	f.setClaims[uid] = claims
	return nil
}

func (f *fakeAuth) CustomToken(context.Context, string) (string, error) {
	if f.customToken == "" {
		return "", errors.New("no token configured")
	}
	return f.customToken, nil
}

type fakeCustomers struct {
	upserted []models.Customer
}

func (f *fakeCustomers) Upsert(_ context.Context, c *models.Customer) error {
	f.upserted = append(f.upserted, *c)
	return nil
}
func (f *fakeCustomers) GetByID(context.Context, string) (*models.Customer, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeCustomers) GetByLineUserID(context.Context, string) (*models.Customer, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeCustomers) UpdateProfile(context.Context, *models.Customer) error { return nil }
func (f *fakeCustomers) SetFCMToken(context.Context, string, string) error { return nil }

func withAdminEmails(t *testing.T, emails []string) {
	t.Helper()
	prev := config.AppConfig.AdminEmails
	config.AppConfig.AdminEmails = emails
	t.Cleanup(func() { config.AppConfig.AdminEmails = prev })
}

func TestVerifyAdminFromClaim(t *testing.T) {
	withAdminEmails(t, nil)
	svc := &DefaultIdentityService{Auth: &fakeAuth{verifyToken: &auth.Token{
		UID:    "uid-1",
		Claims: map[string]interface{}{"email": "aoi@example.com", "admin": true},
	}}}

	ident, err := svc.Verify(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", ident.UID)
	assert.Equal(t, "aoi@example.com", ident.Email)
	assert.True(t, ident.IsAdmin)
}

func TestVerifyAdminFromAllowlist(t *testing.T) {
	withAdminEmails(t, []string{"boss@example.com"})
	svc := &DefaultIdentityService{Auth: &fakeAuth{verifyToken: &auth.Token{
		UID:    "uid-2",
		Claims: map[string]interface{}{"email": "boss@example.com"},
	}}}

	ident, err := svc.Verify(context.Background(), "token")
	require.NoError(t, err)
	assert.True(t, ident.IsAdmin, "allowlisted email is admin before the claim is reconciled")
}

func TestVerifyRegularCustomer(t *testing.T) {
	withAdminEmails(t, []string{"boss@example.com"})
	svc := &DefaultIdentityService{Auth: &fakeAuth{verifyToken: &auth.Token{
		UID:    "uid-3",
		Claims: map[string]interface{}{"email": "aoi@example.com"},
	}}}

	ident, err := svc.Verify(context.Background(), "token")
	require.NoError(t, err)
	assert.False(t, ident.IsAdmin)
}

func TestVerifyRejectsBadToken(t *testing.T) {
	svc := &DefaultIdentityService{Auth: &fakeAuth{verifyErr: errors.New("expired")}}

	_, err := svc.Verify(context.Background(), "token")
	assert.Error(t, err)
}

func TestSetAdminClaimPreservesOtherClaims(t *testing.T) {
	fa := &fakeAuth{users: map[string]*auth.UserRecord{
		"uid-1": {
			UserInfo:     &auth.UserInfo{UID: "uid-1"},
			CustomClaims: map[string]interface{}{"locale": "ja"},
		},
	}}
	svc := &DefaultIdentityService{Auth: fa}

	require.NoError(t, svc.SetAdminClaim(context.Background(), "uid-1", true))

	claims := fa.setClaims["uid-1"]
	require.NotNil(t, claims)
	assert.Equal(t, true, claims["admin"])
	assert.Equal(t, "ja", claims["locale"])
}

func TestCheckAndSetAdminPromotesListedEmail(t *testing.T) {
	withAdminEmails(t, []string{"boss@example.com"})
	fa := &fakeAuth{users: map[string]*auth.UserRecord{
		"uid-1": {UserInfo: &auth.UserInfo{UID: "uid-1", Email: "boss@example.com"}},
	}}
	svc := &DefaultIdentityService{Auth: fa}

	isAdmin, err := svc.CheckAndSetAdmin(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.True(t, isAdmin)
	assert.Equal(t, true, fa.setClaims["uid-1"]["admin"])
}

func TestCheckAndSetAdminDemotesDelistedEmail(t *testing.T) {
	withAdminEmails(t, nil)
	fa := &fakeAuth{users: map[string]*auth.UserRecord{
		"uid-1": {
			UserInfo:     &auth.UserInfo{UID: "uid-1", Email: "former@example.com"},
			CustomClaims: map[string]interface{}{"admin": true},
		},
	}}
	svc := &DefaultIdentityService{Auth: fa}

	isAdmin, err := svc.CheckAndSetAdmin(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.False(t, isAdmin)
	assert.Equal(t, false, fa.setClaims["uid-1"]["admin"])
}

func TestCheckAndSetAdminNoChangeNoWrite(t *testing.T) {
	withAdminEmails(t, nil)
	fa := &fakeAuth{users: map[string]*auth.UserRecord{
		"uid-1": {UserInfo: &auth.UserInfo{UID: "uid-1", Email: "aoi@example.com"}},
	}}
	svc := &DefaultIdentityService{Auth: fa}

	isAdmin, err := svc.CheckAndSetAdmin(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.False(t, isAdmin)
	assert.Empty(t, fa.setClaims, "claim already matches, nothing written")
}

func TestLineLoginExistingUser(t *testing.T) {
	verify := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "line-token", r.FormValue("id_token"))
		assert.Equal(t, "channel-1", r.FormValue("client_id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub":"U123","name":"Aoi","email":"aoi@example.com"}`))
	}))
	defer verify.Close()

	customers := &fakeCustomers{}
	svc := &DefaultIdentityService{
		Auth: &fakeAuth{
			users: map[string]*auth.UserRecord{
				"line:U123": {UserInfo: &auth.UserInfo{UID: "line:U123"}},
			},
			customToken: "session-token",
		},
		Customers:     customers,
		HTTPClient:    verify.Client(),
		LineVerifyURL: verify.URL,
		LineChannelID: "channel-1",
	}

	token, err := svc.LineLogin(context.Background(), "line-token")
	require.NoError(t, err)
	assert.Equal(t, "session-token", token)

	require.Len(t, customers.upserted, 1)
	assert.Equal(t, "line:U123", customers.upserted[0].ID)
	assert.Equal(t, "U123", customers.upserted[0].LineUserID)
	assert.Equal(t, "Aoi", customers.upserted[0].Name)
}

func TestLineLoginRejectedToken(t *testing.T) {
	verify := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_request"}`))
	}))
	defer verify.Close()

	svc := &DefaultIdentityService{
		Auth:          &fakeAuth{},
		Customers:     &fakeCustomers{},
		HTTPClient:    verify.Client(),
		LineVerifyURL: verify.URL,
		LineChannelID: "channel-1",
	}

	_, err := svc.LineLogin(context.Background(), "bad-token")
	assert.Error(t, err)
}

func TestLineLoginMissingSubject(t *testing.T) {
	verify := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"Nobody"}`))
	}))
	defer verify.Close()

	svc := &DefaultIdentityService{
		Auth:          &fakeAuth{},
		Customers:     &fakeCustomers{},
		HTTPClient:    verify.Client(),
		LineVerifyURL: verify.URL,
		LineChannelID: "channel-1",
	}

	_, err := svc.LineLogin(context.Background(), "token")
	assert.Error(t, err)
}
