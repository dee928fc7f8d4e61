package testutils

import (
	"fmt"
	"time"

	"tether-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	// Unique email per instance to avoid uniqueIndex conflicts
	email := fmt.Sprintf("user-%s@test.com", id.String()[:8])

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:       email,
		DisplayName: "Test User",
		Role:        models.MemberRoleDev,
		Teams:       []models.UserTeamRef{},
		Badges:      []models.UserBadge{},
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithStats sets the reputation inputs for the user
func (f *UserFactory) WithStats(stats models.UserStats) *models.User {
	user := f.Create()
	user.Stats = stats
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values. The owner is a fresh
// user ID already present as an active OWNER member.
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	ownerID := uuid.New()

	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        fmt.Sprintf("Test Team %s", id.String()[:8]),
		ProductName: "Test Product",
		OwnerID:     ownerID,
		Status:      models.TeamStatusActive,
		Members: []models.TeamMember{
			{
				UserID:   ownerID,
				Role:     models.MemberRoleOwner,
				JoinedAt: time.Now(),
				IsActive: true,
			},
		},
		Stats: models.TeamStats{
			ActiveMembers: 1,
		},
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithOwner sets the owner for the team, replacing the default owner member
func (f *TeamFactory) WithOwner(ownerID uuid.UUID) *models.Team {
	team := f.Create()
	team.OwnerID = ownerID
	team.Members = []models.TeamMember{
		{
			UserID:   ownerID,
			Role:     models.MemberRoleOwner,
			JoinedAt: time.Now(),
			IsActive: true,
		},
	}
	return team
}

// WithStats sets the rolling stats for the team
func (f *TeamFactory) WithStats(stats models.TeamStats) *models.Team {
	team := f.Create()
	team.Stats = stats
	return team
}

// LinkFactory provides methods to create test Link data
type LinkFactory struct{}

// NewLinkFactory creates a new LinkFactory
func NewLinkFactory() *LinkFactory {
	return &LinkFactory{}
}

// Create creates a test Link with default values. The creator is a fresh
// user ID already present as the INITIATOR participant.
func (f *LinkFactory) Create() *models.Link {
	id := uuid.New()
	creatorID := uuid.New()

	return &models.Link{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:      uuid.New(),
		Title:       "Test Link",
		Purpose:     "Weekly sync about testing",
		MeetingType: models.MeetingTypeSync,
		Status:      models.LinkStatusPending,
		Participants: []models.Participant{
			{
				UserID:   creatorID,
				Role:     models.ParticipantRoleInitiator,
				JoinedAt: time.Now(),
			},
		},
		Outcomes: []models.Outcome{},
		Metrics: models.LinkMetrics{
			ParticipantCount: 1,
		},
	}
}

// WithTeam sets the team ID for the link
func (f *LinkFactory) WithTeam(teamID uuid.UUID) *models.Link {
	link := f.Create()
	link.TeamID = teamID
	return link
}

// WithStatus sets the lifecycle status for the link
func (f *LinkFactory) WithStatus(status models.LinkStatus) *models.Link {
	link := f.Create()
	link.Status = status
	return link
}

// WithParticipant sets the initial participant list to a single entry for
// the given user.
func (f *LinkFactory) WithParticipant(userID uuid.UUID, role models.ParticipantRole) *models.Link {
	link := f.Create()
	link.Participants = []models.Participant{
		{
			UserID:   userID,
			Role:     role,
			JoinedAt: time.Now(),
		},
	}
	link.Metrics.ParticipantCount = 1
	return link
}
