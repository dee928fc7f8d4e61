package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tether-backend/internal/config"
	apperrors "tether-backend/internal/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleIdentity is the verified identity extracted from a Google credential
type GoogleIdentity struct {
	Email   string
	Name    string
	Picture string
}

// GoogleVerifier verifies Google ID tokens and runs the authorization-code
// login flow.
type GoogleVerifier struct {
	clientID     string
	tokenInfoURL string
	oauthConfig  *oauth2.Config
	httpClient   *http.Client
}

// NewGoogleVerifier creates a new Google verifier
func NewGoogleVerifier(cfg *config.Config) *GoogleVerifier {
	return &GoogleVerifier{
		clientID:     cfg.GoogleClientID,
		tokenInfoURL: cfg.GoogleTokenInfoURL,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ConsentURL returns the Google consent URL for the code flow
func (v *GoogleVerifier) ConsentURL(state string) string {
	return v.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// VerifyIDToken validates a Google ID token against the tokeninfo endpoint
// and checks it was issued for this application.
func (v *GoogleVerifier) VerifyIDToken(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	endpoint := v.tokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create tokeninfo request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("google", err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewAuthenticationError("invalid Google ID token")
	}

	var claims struct {
		Aud           string `json:"aud"`
		Email         string `json:"email"`
		EmailVerified string `json:"email_verified"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
		Exp           string `json:"exp"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, apperrors.NewUpstreamError("google", "failed to decode tokeninfo response: "+err.Error())
	}

	if v.clientID != "" && claims.Aud != v.clientID {
		return nil, apperrors.NewAuthenticationError("ID token was issued for a different client")
	}
	if claims.Email == "" || claims.EmailVerified != "true" {
		return nil, apperrors.NewAuthenticationError("Google account email is not verified")
	}
	if exp, err := strconv.ParseInt(claims.Exp, 10, 64); err == nil && time.Now().Unix() > exp {
		return nil, apperrors.NewAuthenticationError("Google ID token has expired")
	}

	return &GoogleIdentity{
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}

// ExchangeCode completes the authorization-code flow and fetches the profile
func (v *GoogleVerifier) ExchangeCode(ctx context.Context, code string) (*GoogleIdentity, error) {
	token, err := v.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, apperrors.NewUpstreamError("google", "failed to exchange code: "+err.Error())
	}

	client := v.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, apperrors.NewUpstreamError("google", "failed to get user info: "+err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError("google", fmt.Sprintf("userinfo returned status %d", resp.StatusCode))
	}

	var gUser struct {
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&gUser); err != nil {
		return nil, apperrors.NewUpstreamError("google", "failed to decode user info: "+err.Error())
	}
	if !gUser.VerifiedEmail {
		return nil, apperrors.NewAuthenticationError("Google account email is not verified")
	}

	return &GoogleIdentity{
		Email:   gUser.Email,
		Name:    gUser.Name,
		Picture: gUser.Picture,
	}, nil
}
