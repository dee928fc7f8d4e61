package service

import (
	"context"
	"fmt"
	"time"

	"tether-backend/internal/database/models"
	apperrors "tether-backend/internal/errors"
	"tether-backend/internal/logger"
	"tether-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LinkService handles business logic for links
type LinkService struct {
	repo       repository.LinkRepositoryInterface
	teamRepo   repository.TeamRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	summarizer SummarizerInterface
	validator  *validator.Validate
	log        *logger.Logger
}

// NewLinkService creates a new link service
func NewLinkService(
	repo repository.LinkRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	summarizer SummarizerInterface,
	validator *validator.Validate,
) *LinkService {
	return &LinkService{
		repo:       repo,
		teamRepo:   teamRepo,
		userRepo:   userRepo,
		summarizer: summarizer,
		validator:  validator,
		log:        logger.New(),
	}
}

// CreateLinkRequest represents the data needed to create a link
type CreateLinkRequest struct {
	TeamID      uuid.UUID  `json:"team_id" validate:"required"`
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Purpose     string     `json:"purpose" validate:"max=500"`
	MeetingType string     `json:"meeting_type"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// CompleteLinkRequest represents the data needed to complete a link
type CompleteLinkRequest struct {
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0"`
	Notes           string `json:"notes"`
}

// AddOutcomeRequest represents the data needed to add an outcome
type AddOutcomeRequest struct {
	Type        string     `json:"type" validate:"required"`
	Description string     `json:"description" validate:"required,max=500"`
	AssignedTo  *uuid.UUID `json:"assigned_to"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateOutcomeStatusRequest represents an outcome status transition
type UpdateOutcomeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AddParticipantRequest represents the data needed to add a participant
type AddParticipantRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"required"`
}

// LinkResponse represents the response data for a link
type LinkResponse struct {
	ID              uuid.UUID            `json:"id"`
	TeamID          uuid.UUID            `json:"team_id"`
	Title           string               `json:"title"`
	Purpose         string               `json:"purpose"`
	MeetingType     string               `json:"meeting_type"`
	Status          string               `json:"status"`
	ScheduledAt     *time.Time           `json:"scheduled_at,omitempty"`
	StartedAt       *time.Time           `json:"started_at,omitempty"`
	CompletedAt     *time.Time           `json:"completed_at,omitempty"`
	DurationMinutes int                  `json:"duration_minutes"`
	Notes           string               `json:"notes,omitempty"`
	Participants    []models.Participant `json:"participants"`
	Outcomes        []models.Outcome     `json:"outcomes"`
	Metrics         models.LinkMetrics   `json:"metrics"`
	AISummary       string               `json:"ai_summary,omitempty"`
	CreatedAt       string               `json:"created_at"`
	UpdatedAt       string               `json:"updated_at"`
}

// LinkListResponse represents a paginated list of links
type LinkListResponse struct {
	Links []LinkResponse `json:"links"`
	Total int64          `json:"total"`
}

// CreateLink creates a link inside a team. The creator must be an active
// team member and becomes the INITIATOR participant. Team and creator link
// counters are bumped as part of the flow.
func (s *LinkService) CreateLink(creatorID uuid.UUID, req *CreateLinkRequest) (*LinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	meetingType := models.MeetingTypeSync
	if req.MeetingType != "" {
		meetingType = models.MeetingType(req.MeetingType)
		if !meetingType.IsValid() {
			return nil, apperrors.NewValidationError("meeting_type", "invalid meeting type")
		}
	}

	team, err := s.teamRepo.GetByID(req.TeamID)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}
	if !team.HasActiveMember(creatorID) {
		return nil, apperrors.ErrNotTeamMember
	}

	link := &models.Link{
		TeamID:       req.TeamID,
		Title:        req.Title,
		Purpose:      req.Purpose,
		MeetingType:  meetingType,
		Status:       models.LinkStatusPending,
		ScheduledAt:  req.ScheduledAt,
		Participants: []models.Participant{},
		Outcomes:     []models.Outcome{},
	}
	if err := link.AddParticipant(creatorID, models.ParticipantRoleInitiator); err != nil {
		return nil, err
	}
	if req.ScheduledAt != nil {
		link.Status = models.LinkStatusScheduled
	}

	if err := s.repo.Create(link); err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	// Aggregation fan-out. Neither write is transactional with the link
	// insert; both are retry-tolerant at the cost of a possible double
	// count (see DESIGN.md).
	team.UpdateStats(1, 0, 0)
	if err := s.teamRepo.Update(team); err != nil {
		s.log.WithField("team_id", team.ID).WithError(err).
			Error("failed to update team stats after link creation")
	}
	if creator, err := s.userRepo.GetByID(creatorID); err == nil {
		creator.Stats.TotalLinks++
		if creator.Stats.TotalLinks == 1 {
			creator.AwardBadge(models.UserBadgeFirstLink, "Created a first link")
		}
		if err := s.userRepo.Update(creator); err != nil {
			s.log.WithField("user_id", creatorID).WithError(err).
				Error("failed to update creator stats after link creation")
		}
	}

	return s.convertToResponse(link), nil
}

// GetLinkByID retrieves a link by ID
func (s *LinkService) GetLinkByID(id uuid.UUID) (*LinkResponse, error) {
	link, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrLinkNotFound
	}
	return s.convertToResponse(link), nil
}

// GetLinksByTeam retrieves links for a team with pagination
func (s *LinkService) GetLinksByTeam(teamID uuid.UUID, limit, offset int) (*LinkListResponse, error) {
	links, total, err := s.repo.GetByTeamID(teamID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get links: %w", err)
	}
	return s.convertToListResponse(links, total), nil
}

// GetLinksByParticipant retrieves links a user participates in
func (s *LinkService) GetLinksByParticipant(userID uuid.UUID, limit, offset int) (*LinkListResponse, error) {
	links, total, err := s.repo.GetByParticipant(userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get links: %w", err)
	}
	return s.convertToListResponse(links, total), nil
}

// StartLink moves a link to IN_PROGRESS
func (s *LinkService) StartLink(id uuid.UUID) (*LinkResponse, error) {
	link, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrLinkNotFound
	}

	if err := link.Start(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(link); err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}

	return s.convertToResponse(link), nil
}

// CompleteLink completes a link, folds the response-time sample and outcome
// completion rate into the team stats, and requests an AI summary of the
// notes. Summary failures are logged and swallowed; completion succeeds
// regardless.
func (s *LinkService) CompleteLink(ctx context.Context, id uuid.UUID, req *CompleteLinkRequest) (*LinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	link, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrLinkNotFound
	}

	if err := link.Complete(req.DurationMinutes, req.Notes); err != nil {
		return nil, err
	}

	if s.summarizer != nil && link.Notes != "" {
		summary, err := s.summarizer.Summarize(ctx, link.Notes)
		if err != nil {
			s.log.WithField("link_id", link.ID).WithError(err).
				Warn("summary generation failed, completing without summary")
		} else {
			link.AISummary = summary
		}
	}

	if err := s.repo.Update(link); err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}

	if team, err := s.teamRepo.GetByID(link.TeamID); err == nil {
		team.UpdateStats(0, responseTimeHours(link), link.Metrics.CompletionRate)
		if err := s.teamRepo.Update(team); err != nil {
			s.log.WithField("team_id", team.ID).WithError(err).
				Error("failed to update team stats after link completion")
		}
	}

	return s.convertToResponse(link), nil
}

// CancelLink moves a link to the CANCELLED terminal state
func (s *LinkService) CancelLink(id uuid.UUID) (*LinkResponse, error) {
	return s.transition(id, (*models.Link).Cancel)
}

// MarkLinkNoShow moves a link to the NO_SHOW terminal state
func (s *LinkService) MarkLinkNoShow(id uuid.UUID) (*LinkResponse, error) {
	return s.transition(id, (*models.Link).MarkNoShow)
}

func (s *LinkService) transition(id uuid.UUID, fn func(*models.Link) error) (*LinkResponse, error) {
	link, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrLinkNotFound
	}
	if err := fn(link); err != nil {
		return nil, err
	}
	if err := s.repo.Update(link); err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}
	return s.convertToResponse(link), nil
}

// AddOutcome appends an outcome to a link
func (s *LinkService) AddOutcome(id uuid.UUID, req *AddOutcomeRequest) (*LinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	outcomeType := models.OutcomeType(req.Type)
	if !outcomeType.IsValid() {
		return nil, apperrors.NewValidationError("type", "invalid outcome type")
	}

	link, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrLinkNotFound
	}

	link.AddOutcome(outcomeType, req.Description, req.AssignedTo, req.DueDate)
	if err := s.repo.Update(link); err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}

	return s.convertToResponse(link), nil
}

// UpdateOutcomeStatus flips an outcome status by list index
func (s *LinkService) UpdateOutcomeStatus(id uuid.UUID, index int, req *UpdateOutcomeStatusRequest) (*LinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	link, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrLinkNotFound
	}

	if err := link.UpdateOutcomeStatus(index, models.OutcomeStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.repo.Update(link); err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}

	return s.convertToResponse(link), nil
}

// AddParticipant adds a participant to a link
func (s *LinkService) AddParticipant(id uuid.UUID, req *AddParticipantRequest) (*LinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.ParticipantRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "invalid participant role")
	}

	link, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrLinkNotFound
	}

	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if err := link.AddParticipant(req.UserID, role); err != nil {
		return nil, err
	}
	if err := s.repo.Update(link); err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}

	return s.convertToResponse(link), nil
}

// DeleteLink deletes a link unconditionally. Team stats are not reversed.
func (s *LinkService) DeleteLink(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrLinkNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}

// responseTimeHours is the sample fed into the team running average: hours
// from link creation to completion.
func responseTimeHours(link *models.Link) float64 {
	if link.CompletedAt == nil {
		return 0
	}
	return link.CompletedAt.Sub(link.CreatedAt).Hours()
}

// convertToResponse converts a link model to response
func (s *LinkService) convertToResponse(link *models.Link) *LinkResponse {
	participants := link.Participants
	if participants == nil {
		participants = []models.Participant{}
	}
	outcomes := link.Outcomes
	if outcomes == nil {
		outcomes = []models.Outcome{}
	}
	return &LinkResponse{
		ID:              link.ID,
		TeamID:          link.TeamID,
		Title:           link.Title,
		Purpose:         link.Purpose,
		MeetingType:     string(link.MeetingType),
		Status:          string(link.Status),
		ScheduledAt:     link.ScheduledAt,
		StartedAt:       link.StartedAt,
		CompletedAt:     link.CompletedAt,
		DurationMinutes: link.DurationMinutes,
		Notes:           link.Notes,
		Participants:    participants,
		Outcomes:        outcomes,
		Metrics:         link.Metrics,
		AISummary:       link.AISummary,
		CreatedAt:       link.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       link.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *LinkService) convertToListResponse(links []models.Link, total int64) *LinkListResponse {
	responses := make([]LinkResponse, len(links))
	for i, link := range links {
		responses[i] = *s.convertToResponse(&link)
	}
	return &LinkListResponse{Links: responses, Total: total}
}
