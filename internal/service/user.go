package service

import (
	"fmt"
	"strings"

	"tether-backend/internal/database/models"
	apperrors "tether-backend/internal/errors"
	"tether-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// VerifiedIdentity is the identity returned by the external token verifier
type VerifiedIdentity struct {
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// UpdateUserRequest represents the data needed to update a user profile
type UpdateUserRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=200"`
	AvatarURL   *string `json:"avatar_url" validate:"omitempty,max=500"`
	Role        *string `json:"role"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID              uuid.UUID              `json:"id"`
	Email           string                 `json:"email"`
	DisplayName     string                 `json:"display_name"`
	AvatarURL       string                 `json:"avatar_url"`
	Role            string                 `json:"role"`
	Teams           []models.UserTeamRef   `json:"teams"`
	Stats           models.UserStats       `json:"stats"`
	Badges          []models.UserBadge     `json:"badges"`
	ReputationLevel models.ReputationLevel `json:"reputation_level"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
}

// GetOrCreateByIdentity returns the user matching a verified identity,
// creating it lazily on first authenticated request.
func (s *UserService) GetOrCreateByIdentity(identity *VerifiedIdentity) (*models.User, error) {
	if err := s.validator.Struct(identity); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(identity.Email)
	user, err := s.repo.GetByEmail(email)
	if err == nil {
		return user, nil
	}

	user = &models.User{
		Email:       email,
		DisplayName: identity.Name,
		AvatarURL:   identity.Picture,
		Role:        models.MemberRoleDev,
		Teams:       []models.UserTeamRef{},
		Badges:      []models.UserBadge{},
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return s.convertToResponse(user), nil
}

// GetUserByEmail retrieves a user by email
func (s *UserService) GetUserByEmail(email string) (*UserResponse, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return s.convertToResponse(user), nil
}

// GetAllUsers retrieves users with pagination
func (s *UserService) GetAllUsers(limit, offset int) (*UserListResponse, error) {
	users, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return s.convertToListResponse(users, total), nil
}

// SearchUsers searches for users by name or email
func (s *UserService) SearchUsers(query string, limit, offset int) (*UserListResponse, error) {
	users, total, err := s.repo.Search(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return s.convertToListResponse(users, total), nil
}

// UpdateUser updates a user profile
func (s *UserService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Role != nil {
		role := models.MemberRole(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationError("role", "invalid member role")
		}
		user.Role = role
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.convertToResponse(user), nil
}

// IncrementLinkStats bumps a user's link counter after link creation. The
// reputation score recompute runs in the aggregate's save hook; first-link
// and volume badges are awarded here.
func (s *UserService) IncrementLinkStats(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user.Stats.TotalLinks++
	switch user.Stats.TotalLinks {
	case 1:
		user.AwardBadge(models.UserBadgeFirstLink, "Created a first link")
	case 100:
		user.AwardBadge(models.UserBadgeCenturion, "Created one hundred links")
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user stats: %w", err)
	}

	return s.convertToResponse(user), nil
}

// convertToResponse converts a user model to response
func (s *UserService) convertToResponse(user *models.User) *UserResponse {
	teams := user.Teams
	if teams == nil {
		teams = []models.UserTeamRef{}
	}
	badges := user.Badges
	if badges == nil {
		badges = []models.UserBadge{}
	}
	return &UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		DisplayName:     user.DisplayName,
		AvatarURL:       user.AvatarURL,
		Role:            string(user.Role),
		Teams:           teams,
		Stats:           user.Stats,
		Badges:          badges,
		ReputationLevel: user.ReputationLevel(),
		CreatedAt:       user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       user.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *UserService) convertToListResponse(users []models.User, total int64) *UserListResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *s.convertToResponse(&user)
	}
	return &UserListResponse{Users: responses, Total: total}
}
