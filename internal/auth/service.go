package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"tether-backend/internal/config"
	apperrors "tether-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents session JWT claims
type AuthClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	jwt.RegisteredClaims
}

// RefreshTokenData stores information about an issued refresh token
type RefreshTokenData struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthService issues and validates session tokens for identities verified
// against Google.
type AuthService struct {
	jwtSecret     []byte
	jwtExpiry     time.Duration
	refreshExpiry time.Duration
	refreshTokens map[string]*RefreshTokenData
	tokenMutex    sync.RWMutex
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		jwtSecret:     []byte(cfg.JWTSecret),
		jwtExpiry:     time.Duration(cfg.JWTExpiryMinutes) * time.Minute,
		refreshExpiry: time.Duration(cfg.RefreshExpiryHours) * time.Hour,
		refreshTokens: make(map[string]*RefreshTokenData),
	}
}

// GenerateJWT issues a session token for a verified user
func (s *AuthService) GenerateJWT(userID uuid.UUID, email, name string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(s.jwtExpiry)

	claims := &AuthClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "tether-backend",
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, int64(s.jwtExpiry.Seconds()), nil
}

// ValidateJWT parses and validates a session token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, apperrors.NewAuthenticationError("invalid token: " + err.Error())
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAuthenticationError("invalid token claims")
	}

	return claims, nil
}

// GenerateRefreshToken issues an opaque refresh token for a user
func (s *AuthService) GenerateRefreshToken(userID uuid.UUID, email, name string) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(raw)

	s.tokenMutex.Lock()
	defer s.tokenMutex.Unlock()
	s.refreshTokens[token] = &RefreshTokenData{
		UserID:    userID,
		Email:     email,
		Name:      name,
		ExpiresAt: time.Now().Add(s.refreshExpiry),
		CreatedAt: time.Now(),
	}

	return token, nil
}

// RedeemRefreshToken validates a refresh token and returns its data
func (s *AuthService) RedeemRefreshToken(token string) (*RefreshTokenData, error) {
	s.tokenMutex.RLock()
	data, ok := s.refreshTokens[token]
	s.tokenMutex.RUnlock()
	if !ok {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if time.Now().After(data.ExpiresAt) {
		s.RevokeRefreshToken(token)
		return nil, apperrors.ErrRefreshTokenExpired
	}
	return data, nil
}

// RevokeRefreshToken invalidates a refresh token
func (s *AuthService) RevokeRefreshToken(token string) {
	s.tokenMutex.Lock()
	defer s.tokenMutex.Unlock()
	delete(s.refreshTokens, token)
}

// GenerateState returns a random state value for the OAuth code flow
func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
