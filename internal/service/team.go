package service

import (
	"fmt"

	"tether-backend/internal/database/models"
	apperrors "tether-backend/internal/errors"
	"tether-backend/internal/logger"
	"tether-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
		log:       logger.New(),
	}
}

// CreateTeamRequest represents the data needed to create a team
type CreateTeamRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	ProductName    string `json:"product_name" validate:"max=100"`
	ProductVersion string `json:"product_version" validate:"max=40"`
}

// UpdateTeamRequest represents the data needed to update a team
type UpdateTeamRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=100"`
	ProductName    *string `json:"product_name" validate:"omitempty,max=100"`
	ProductVersion *string `json:"product_version" validate:"omitempty,max=40"`
	Status         *string `json:"status"`
}

// AddMemberRequest represents the data needed to add a team member
type AddMemberRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"required"`
}

// UpdateTeamStatsRequest represents a stats aggregation call
type UpdateTeamStatsRequest struct {
	LinkDelta          int     `json:"link_delta"`
	ResponseTimeSample float64 `json:"response_time_sample" validate:"gte=0"`
	ResponseRateValue  float64 `json:"response_rate_value" validate:"gte=0,lte=100"`
}

// TeamResponse represents the response data for a team
type TeamResponse struct {
	ID              uuid.UUID           `json:"id"`
	Name            string              `json:"name"`
	ProductName     string              `json:"product_name"`
	ProductVersion  string              `json:"product_version"`
	OwnerID         uuid.UUID           `json:"owner_id"`
	Status          string              `json:"status"`
	Members         []models.TeamMember `json:"members"`
	Stats           models.TeamStats    `json:"stats"`
	ReputationBadge *models.TeamBadge   `json:"reputation_badge,omitempty"`
	CreatedAt       string              `json:"created_at"`
	UpdatedAt       string              `json:"updated_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams []TeamResponse `json:"teams"`
	Total int64          `json:"total"`
}

// CreateTeam creates a new team. The owner is auto-added as an active member
// with the OWNER role, on both sides of the membership relation.
func (s *TeamService) CreateTeam(ownerID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrTeamExists
	}

	owner, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	team := &models.Team{
		Name:           req.Name,
		ProductName:    req.ProductName,
		ProductVersion: req.ProductVersion,
		OwnerID:        ownerID,
		Status:         models.TeamStatusActive,
		Members:        []models.TeamMember{},
	}
	team.AddMember(ownerID, models.MemberRoleOwner)

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	// User-side half of the relation. The two writes are not atomic; a
	// failure here leaves it one-sided, so log loudly and let the caller
	// retry the membership upsert (idempotent on both sides).
	owner.JoinTeam(team.ID, models.UserTeamRoleOwner)
	if err := s.userRepo.Update(owner); err != nil {
		s.log.WithField("team_id", team.ID).WithError(err).
			Error("failed to record owner-side membership")
	}

	return s.convertToResponse(team), nil
}

// GetTeamByID retrieves a team by ID
func (s *TeamService) GetTeamByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}
	return s.convertToResponse(team), nil
}

// GetAllTeams retrieves teams with pagination
func (s *TeamService) GetAllTeams(limit, offset int) (*TeamListResponse, error) {
	teams, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = *s.convertToResponse(&team)
	}
	return &TeamListResponse{Teams: responses, Total: total}, nil
}

// UpdateTeam updates team identity fields and lifecycle status
func (s *TeamService) UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	if req.Name != nil && *req.Name != team.Name {
		if _, err := s.repo.GetByName(*req.Name); err == nil {
			return nil, apperrors.ErrTeamExists
		}
		team.Name = *req.Name
	}
	if req.ProductName != nil {
		team.ProductName = *req.ProductName
	}
	if req.ProductVersion != nil {
		team.ProductVersion = *req.ProductVersion
	}
	if req.Status != nil {
		status := models.TeamStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", "invalid team status")
		}
		team.Status = status
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.convertToResponse(team), nil
}

// DeleteTeam deletes a team. Links and user-side membership references are
// not cascaded; see DESIGN.md.
func (s *TeamService) DeleteTeam(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrTeamNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// AddMember upserts a membership entry on the team and mirrors it on the
// user aggregate. Both writes are idempotent; they are not transactional.
func (s *TeamService) AddMember(teamID uuid.UUID, req *AddMemberRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.MemberRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "invalid member role")
	}

	team, err := s.repo.GetByID(teamID)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	user, err := s.userRepo.GetByID(req.UserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	team.AddMember(req.UserID, role)
	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	userRole := models.UserTeamRoleMember
	if role == models.MemberRoleOwner {
		userRole = models.UserTeamRoleOwner
	}
	user.JoinTeam(teamID, userRole)
	if err := s.userRepo.Update(user); err != nil {
		s.log.WithField("team_id", teamID).WithField("user_id", req.UserID).WithError(err).
			Error("failed to record user-side membership")
	}

	return s.convertToResponse(team), nil
}

// RemoveMember soft-deletes a membership entry and drops the user-side
// reference. Removing a non-member is a no-op.
func (s *TeamService) RemoveMember(teamID, userID uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(teamID)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	team.RemoveMember(userID)
	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	if user, err := s.userRepo.GetByID(userID); err == nil {
		user.LeaveTeam(teamID)
		if err := s.userRepo.Update(user); err != nil {
			s.log.WithField("team_id", teamID).WithField("user_id", userID).WithError(err).
				Error("failed to drop user-side membership")
		}
	}

	return s.convertToResponse(team), nil
}

// UpdateStats folds link and response samples into the team's rolling stats.
// The badge recompute runs in the aggregate's save hook.
func (s *TeamService) UpdateStats(teamID uuid.UUID, req *UpdateTeamStatsRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(teamID)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	team.UpdateStats(req.LinkDelta, req.ResponseTimeSample, req.ResponseRateValue)
	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team stats: %w", err)
	}

	return s.convertToResponse(team), nil
}

// convertToResponse converts a team model to response
func (s *TeamService) convertToResponse(team *models.Team) *TeamResponse {
	members := team.Members
	if members == nil {
		members = []models.TeamMember{}
	}
	return &TeamResponse{
		ID:              team.ID,
		Name:            team.Name,
		ProductName:     team.ProductName,
		ProductVersion:  team.ProductVersion,
		OwnerID:         team.OwnerID,
		Status:          string(team.Status),
		Members:         members,
		Stats:           team.Stats,
		ReputationBadge: team.ReputationBadge,
		CreatedAt:       team.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       team.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
