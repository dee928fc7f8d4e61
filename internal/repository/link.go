package repository

import (
	"strings"

	"tether-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkRepository handles database operations for links
type LinkRepository struct {
	db *gorm.DB
}

// NewLinkRepository creates a new link repository
func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// Create creates a new link
func (r *LinkRepository) Create(link *models.Link) error {
	return r.db.Create(link).Error
}

// GetByID retrieves a link by ID
func (r *LinkRepository) GetByID(id uuid.UUID) (*models.Link, error) {
	var link models.Link
	err := r.db.First(&link, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByTeamID retrieves links for a team with pagination
func (r *LinkRepository) GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Link, int64, error) {
	var links []models.Link
	var total int64

	query := r.db.Model(&models.Link{}).Where("team_id = ?", teamID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&links).Error
	if err != nil {
		return nil, 0, err
	}

	return links, total, nil
}

// GetByParticipant retrieves links whose jsonb participant list contains an
// entry for the given user, with pagination.
func (r *LinkRepository) GetByParticipant(userID uuid.UUID, limit, offset int) ([]models.Link, int64, error) {
	var links []models.Link
	var total int64

	pattern := `[{"user_id": "` + strings.ToLower(userID.String()) + `"}]`
	query := r.db.Model(&models.Link{}).Where("participants @> ?", pattern)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&links).Error
	if err != nil {
		return nil, 0, err
	}

	return links, total, nil
}

// GetRecentByTeamID retrieves the most recent links for a team
func (r *LinkRepository) GetRecentByTeamID(teamID uuid.UUID, limit int) ([]models.Link, error) {
	var links []models.Link
	err := r.db.Where("team_id = ?", teamID).
		Order("created_at DESC").
		Limit(limit).
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// Update updates a link
func (r *LinkRepository) Update(link *models.Link) error {
	return r.db.Save(link).Error
}

// Delete deletes a link
func (r *LinkRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Link{}, "id = ?", id).Error
}
