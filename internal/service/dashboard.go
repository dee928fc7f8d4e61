package service

import (
	"tether-backend/internal/database/models"
	apperrors "tether-backend/internal/errors"
	"tether-backend/internal/repository"

	"github.com/google/uuid"
)

// DashboardService assembles per-user and per-team dashboard views from the
// persisted aggregates. It derives nothing new; all numbers come from the
// stats the save-time hooks keep current.
type DashboardService struct {
	teamRepo repository.TeamRepositoryInterface
	userRepo repository.UserRepositoryInterface
	linkRepo repository.LinkRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	teamRepo repository.TeamRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	linkRepo repository.LinkRepositoryInterface,
) *DashboardService {
	return &DashboardService{
		teamRepo: teamRepo,
		userRepo: userRepo,
		linkRepo: linkRepo,
	}
}

// UserDashboardResponse is the per-user dashboard view
type UserDashboardResponse struct {
	UserID          uuid.UUID              `json:"user_id"`
	DisplayName     string                 `json:"display_name"`
	Stats           models.UserStats       `json:"stats"`
	ReputationLevel models.ReputationLevel `json:"reputation_level"`
	Badges          []models.UserBadge     `json:"badges"`
	Teams           []TeamSummary          `json:"teams"`
	RecentLinks     []LinkSummary          `json:"recent_links"`
}

// TeamDashboardResponse is the per-team dashboard view
type TeamDashboardResponse struct {
	TeamID          uuid.UUID         `json:"team_id"`
	Name            string            `json:"name"`
	Status          string            `json:"status"`
	Stats           models.TeamStats  `json:"stats"`
	ReputationBadge *models.TeamBadge `json:"reputation_badge,omitempty"`
	RecentLinks     []LinkSummary     `json:"recent_links"`
}

// TeamSummary is a compact team reference on a dashboard
type TeamSummary struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Status          string            `json:"status"`
	ReputationBadge *models.TeamBadge `json:"reputation_badge,omitempty"`
}

// LinkSummary is a compact link reference on a dashboard
type LinkSummary struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Status      string             `json:"status"`
	MeetingType string             `json:"meeting_type"`
	Metrics     models.LinkMetrics `json:"metrics"`
	CreatedAt   string             `json:"created_at"`
}

// GetUserDashboard assembles the dashboard for a user
func (s *DashboardService) GetUserDashboard(userID uuid.UUID) (*UserDashboardResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	teams, err := s.teamRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	teamSummaries := make([]TeamSummary, len(teams))
	for i, team := range teams {
		teamSummaries[i] = TeamSummary{
			ID:              team.ID,
			Name:            team.Name,
			Status:          string(team.Status),
			ReputationBadge: team.ReputationBadge,
		}
	}

	links, _, err := s.linkRepo.GetByParticipant(userID, 10, 0)
	if err != nil {
		return nil, err
	}

	badges := user.Badges
	if badges == nil {
		badges = []models.UserBadge{}
	}

	return &UserDashboardResponse{
		UserID:          user.ID,
		DisplayName:     user.DisplayName,
		Stats:           user.Stats,
		ReputationLevel: user.ReputationLevel(),
		Badges:          badges,
		Teams:           teamSummaries,
		RecentLinks:     linkSummaries(links),
	}, nil
}

// GetTeamDashboard assembles the dashboard for a team
func (s *DashboardService) GetTeamDashboard(teamID uuid.UUID) (*TeamDashboardResponse, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	links, err := s.linkRepo.GetRecentByTeamID(teamID, 10)
	if err != nil {
		return nil, err
	}

	return &TeamDashboardResponse{
		TeamID:          team.ID,
		Name:            team.Name,
		Status:          string(team.Status),
		Stats:           team.Stats,
		ReputationBadge: team.ReputationBadge,
		RecentLinks:     linkSummaries(links),
	}, nil
}

func linkSummaries(links []models.Link) []LinkSummary {
	summaries := make([]LinkSummary, len(links))
	for i, link := range links {
		summaries[i] = LinkSummary{
			ID:          link.ID,
			Title:       link.Title,
			Status:      string(link.Status),
			MeetingType: string(link.MeetingType),
			Metrics:     link.Metrics,
			CreatedAt:   link.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return summaries
}
