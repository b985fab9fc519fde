package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"canonforces/internal/common"
	"canonforces/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newToolkitServer(t *testing.T, handler http.HandlerFunc) *GoogleProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewGoogleProvider(server.URL, server.URL, "test-key")
}

func TestGoogleProviderCreateAccount(t *testing.T) {
	p := newToolkitServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts:signUp", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "t@example.com", body["email"])
		assert.Equal(t, true, body["returnSecureToken"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"localId":"uid-1","email":"t@example.com","idToken":"id-1","refreshToken":"rt-1"}`))
	})

	acct, err := p.CreateAccount(context.Background(), "t@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", acct.SubjectID)
	assert.Equal(t, "id-1", acct.IDToken)
	assert.Equal(t, "rt-1", acct.RefreshToken)
	assert.False(t, acct.Federated)
}

func TestGoogleProviderCreateAccountDuplicateEmail(t *testing.T) {
	p := newToolkitServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"EMAIL_EXISTS"}}`))
	})

	_, err := p.CreateAccount(context.Background(), "t@example.com", "hunter22")
	require.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestGoogleProviderFederatedSignIn(t *testing.T) {
	p := newToolkitServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts:signInWithIdp", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"localId":"uid-g","email":"g@example.com","displayName":"G User","idToken":"id-g","refreshToken":"rt-g"}`))
	})

	acct, err := p.FederatedSignIn(context.Background(), "google-id-token")
	require.NoError(t, err)
	assert.True(t, acct.Federated)
	assert.Equal(t, "G User", acct.DisplayName)
	assert.Equal(t, "uid-g", acct.SubjectID)
}

func TestGoogleProviderFederatedSignInCancelled(t *testing.T) {
	p := NewGoogleProvider("http://unused", "http://unused", "k")

	_, err := p.FederatedSignIn(context.Background(), "")
	require.ErrorIs(t, err, common.ErrPopupCancelled)
}

func TestGoogleProviderRefreshToken(t *testing.T) {
	p := newToolkitServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/token", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id_token":"id-2","refresh_token":"rt-2"}`))
	})

	acct := &model.Account{SubjectID: "uid-1", IDToken: "id-1", RefreshToken: "rt-1"}
	require.NoError(t, p.RefreshToken(context.Background(), acct))
	assert.Equal(t, "id-2", acct.IDToken)
	assert.Equal(t, "rt-2", acct.RefreshToken)
}

func TestGoogleProviderUnknownToolkitError(t *testing.T) {
	p := newToolkitServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"OPERATION_NOT_ALLOWED : password sign-in is disabled"}}`))
	})

	_, err := p.CreateAccount(context.Background(), "t@example.com", "hunter22")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrDuplicateEmail)
}
