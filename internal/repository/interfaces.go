package repository

import (
	"tether-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	GetByStatus(status models.TeamStatus, limit, offset int) ([]models.Team, int64, error)
	GetByUserID(userID uuid.UUID) ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Search(query string, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// LinkRepositoryInterface defines the interface for link repository operations
type LinkRepositoryInterface interface {
	Create(link *models.Link) error
	GetByID(id uuid.UUID) (*models.Link, error)
	GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Link, int64, error)
	GetByParticipant(userID uuid.UUID, limit, offset int) ([]models.Link, int64, error)
	GetRecentByTeamID(teamID uuid.UUID, limit int) ([]models.Link, error)
	Update(link *models.Link) error
	Delete(id uuid.UUID) error
}
