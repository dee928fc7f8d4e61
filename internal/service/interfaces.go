package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(ownerID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error)
	GetTeamByID(id uuid.UUID) (*TeamResponse, error)
	GetAllTeams(limit, offset int) (*TeamListResponse, error)
	UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	DeleteTeam(id uuid.UUID) error
	AddMember(teamID uuid.UUID, req *AddMemberRequest) (*TeamResponse, error)
	RemoveMember(teamID, userID uuid.UUID) (*TeamResponse, error)
	UpdateStats(teamID uuid.UUID, req *UpdateTeamStatsRequest) (*TeamResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetUserByID(id uuid.UUID) (*UserResponse, error)
	GetUserByEmail(email string) (*UserResponse, error)
	GetAllUsers(limit, offset int) (*UserListResponse, error)
	SearchUsers(query string, limit, offset int) (*UserListResponse, error)
	UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	IncrementLinkStats(id uuid.UUID) (*UserResponse, error)
}

// LinkServiceInterface defines the interface for link service
type LinkServiceInterface interface {
	CreateLink(creatorID uuid.UUID, req *CreateLinkRequest) (*LinkResponse, error)
	GetLinkByID(id uuid.UUID) (*LinkResponse, error)
	GetLinksByTeam(teamID uuid.UUID, limit, offset int) (*LinkListResponse, error)
	GetLinksByParticipant(userID uuid.UUID, limit, offset int) (*LinkListResponse, error)
	StartLink(id uuid.UUID) (*LinkResponse, error)
	CompleteLink(ctx context.Context, id uuid.UUID, req *CompleteLinkRequest) (*LinkResponse, error)
	CancelLink(id uuid.UUID) (*LinkResponse, error)
	MarkLinkNoShow(id uuid.UUID) (*LinkResponse, error)
	AddOutcome(id uuid.UUID, req *AddOutcomeRequest) (*LinkResponse, error)
	UpdateOutcomeStatus(id uuid.UUID, index int, req *UpdateOutcomeStatusRequest) (*LinkResponse, error)
	AddParticipant(id uuid.UUID, req *AddParticipantRequest) (*LinkResponse, error)
	DeleteLink(id uuid.UUID) error
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	GetUserDashboard(userID uuid.UUID) (*UserDashboardResponse, error)
	GetTeamDashboard(teamID uuid.UUID) (*TeamDashboardResponse, error)
}

// SummarizerInterface defines the external meeting summarizer collaborator
type SummarizerInterface interface {
	Summarize(ctx context.Context, text string) (string, error)
}
