package auth_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tether-backend/internal/auth"
	"tether-backend/internal/config"
	apperrors "tether-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenInfoVerifier(tokenInfoURL string) *auth.GoogleVerifier {
	return auth.NewGoogleVerifier(&config.Config{
		GoogleClientID:     "test-client-id",
		GoogleTokenInfoURL: tokenInfoURL,
	})
}

func validTokenInfoBody(aud string) string {
	exp := time.Now().Add(time.Hour).Unix()
	return fmt.Sprintf(`{
		"aud": "%s",
		"email": "alice@example.com",
		"email_verified": "true",
		"name": "Alice",
		"picture": "https://example.com/alice.png",
		"exp": "%d"
	}`, aud, exp)
}

func TestGoogleVerifier_VerifyIDToken_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "raw-id-token", r.URL.Query().Get("id_token"))
		_, _ = w.Write([]byte(validTokenInfoBody("test-client-id")))
	}))
	defer server.Close()

	verifier := tokenInfoVerifier(server.URL)

	identity, err := verifier.VerifyIDToken(context.Background(), "raw-id-token")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, "Alice", identity.Name)
	assert.Equal(t, "https://example.com/alice.png", identity.Picture)
}

func TestGoogleVerifier_VerifyIDToken_RejectedByGoogle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	verifier := tokenInfoVerifier(server.URL)

	_, err := verifier.VerifyIDToken(context.Background(), "bad-token")
	assert.True(t, apperrors.IsAuthentication(err))
}

func TestGoogleVerifier_VerifyIDToken_AudienceMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(validTokenInfoBody("some-other-client")))
	}))
	defer server.Close()

	verifier := tokenInfoVerifier(server.URL)

	_, err := verifier.VerifyIDToken(context.Background(), "raw-id-token")
	assert.True(t, apperrors.IsAuthentication(err))
	assert.Contains(t, err.Error(), "different client")
}

func TestGoogleVerifier_VerifyIDToken_UnverifiedEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"aud": "test-client-id",
			"email": "alice@example.com",
			"email_verified": "false",
			"name": "Alice"
		}`))
	}))
	defer server.Close()

	verifier := tokenInfoVerifier(server.URL)

	_, err := verifier.VerifyIDToken(context.Background(), "raw-id-token")
	assert.True(t, apperrors.IsAuthentication(err))
	assert.Contains(t, err.Error(), "not verified")
}

func TestGoogleVerifier_VerifyIDToken_Expired(t *testing.T) {
	expired := time.Now().Add(-time.Hour).Unix()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, `{
			"aud": "test-client-id",
			"email": "alice@example.com",
			"email_verified": "true",
			"name": "Alice",
			"exp": "%d"
		}`, expired)
	}))
	defer server.Close()

	verifier := tokenInfoVerifier(server.URL)

	_, err := verifier.VerifyIDToken(context.Background(), "raw-id-token")
	assert.True(t, apperrors.IsAuthentication(err))
	assert.Contains(t, err.Error(), "expired")
}

func TestGoogleVerifier_VerifyIDToken_Unreachable(t *testing.T) {
	verifier := tokenInfoVerifier("http://127.0.0.1:1")

	_, err := verifier.VerifyIDToken(context.Background(), "raw-id-token")
	assert.True(t, apperrors.IsUpstream(err))
}

func TestGoogleVerifier_ConsentURL(t *testing.T) {
	verifier := auth.NewGoogleVerifier(&config.Config{
		GoogleClientID:     "test-client-id",
		GoogleClientSecret: "secret",
		GoogleRedirectURL:  "http://localhost:7010/api/v1/auth/google/callback",
	})

	consentURL := verifier.ConsentURL("state-token")
	assert.Contains(t, consentURL, "client_id=test-client-id")
	assert.Contains(t, consentURL, "state=state-token")
	assert.Contains(t, consentURL, "access_type=offline")
}
