package auth

import (
	"net/http"

	apperrors "tether-backend/internal/errors"
	"tether-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserProvisioner lazily creates users for verified identities. Implemented
// by the user service; adapted in routes to avoid a package cycle.
type UserProvisioner interface {
	Provision(email, name, picture string) (uuid.UUID, string, string, error)
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service     *AuthService
	verifier    *GoogleVerifier
	provisioner UserProvisioner
	log         *logger.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, verifier *GoogleVerifier, provisioner UserProvisioner) *AuthHandler {
	return &AuthHandler{
		service:     service,
		verifier:    verifier,
		provisioner: provisioner,
		log:         logger.New(),
	}
}

// LoginRequest carries a Google ID token obtained by the client
type LoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// CallbackRequest carries the authorization code from the Google redirect
type CallbackRequest struct {
	Code string `json:"code" binding:"required"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserProfile is the profile returned alongside tokens
type UserProfile struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
}

// TokenResponse is the session token envelope
type TokenResponse struct {
	AccessToken  string      `json:"access_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int64       `json:"expires_in"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	Profile      UserProfile `json:"profile"`
}

// Login handles POST /auth/google — ID-token sign-in
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity, err := h.verifier.VerifyIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		h.respondVerificationError(c, err)
		return
	}

	h.issueTokens(c, identity)
}

// Start handles GET /auth/google/start — returns the consent URL
func (h *AuthHandler) Start(c *gin.Context) {
	state, err := GenerateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": h.verifier.ConsentURL(state), "state": state})
}

// Callback handles POST /auth/google/callback — code-flow sign-in
func (h *AuthHandler) Callback(c *gin.Context) {
	var req CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity, err := h.verifier.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		h.respondVerificationError(c, err)
		return
	}

	h.issueTokens(c, identity)
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.service.RedeemRefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	accessToken, expiresIn, err := h.service.GenerateJWT(data.UserID, data.Email, data.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
		Profile: UserProfile{
			UserID:      data.UserID,
			Email:       data.Email,
			DisplayName: data.Name,
		},
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.RefreshToken != "" {
		h.service.RevokeRefreshToken(req.RefreshToken)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) issueTokens(c *gin.Context, identity *GoogleIdentity) {
	userID, email, displayName, err := h.provisioner.Provision(identity.Email, identity.Name, identity.Picture)
	if err != nil {
		h.log.WithField("email", identity.Email).WithError(err).Error("failed to provision user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to provision user"})
		return
	}

	accessToken, expiresIn, err := h.service.GenerateJWT(userID, email, displayName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	refreshToken, err := h.service.GenerateRefreshToken(userID, email, displayName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue refresh token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken:  accessToken,
		TokenType:    "bearer",
		ExpiresIn:    expiresIn,
		RefreshToken: refreshToken,
		Profile: UserProfile{
			UserID:      userID,
			Email:       email,
			DisplayName: displayName,
		},
	})
}

func (h *AuthHandler) respondVerificationError(c *gin.Context, err error) {
	if apperrors.IsAuthentication(err) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
