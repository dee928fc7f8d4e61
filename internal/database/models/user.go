package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserTeamRef is the user-side half of the team membership relation.
// It is kept consistent with Team.Members by two independent writes; there
// is no cross-aggregate transaction (see DESIGN.md).
type UserTeamRef struct {
	TeamID   uuid.UUID    `json:"team_id"`
	Role     UserTeamRole `json:"role"`
	JoinedAt time.Time    `json:"joined_at"`
}

// UserStats holds the reputation inputs of a user
type UserStats struct {
	TotalLinks          int     `json:"total_links"`
	AverageResponseTime float64 `json:"average_response_time"`
	ResponseRate        float64 `json:"response_rate"`
	ReputationScore     float64 `json:"reputation_score"`
}

// UserBadge is an earned badge; the badge list is append-only
type UserBadge struct {
	Type        UserBadgeType `json:"type"`
	EarnedAt    time.Time     `json:"earned_at"`
	Description string        `json:"description"`
}

// User represents an authenticated person, created lazily on first verified
// request and identified by their case-insensitive email.
type User struct {
	BaseModel
	Email       string        `json:"email" gorm:"size:255;not null;uniqueIndex" validate:"required,email,max=255"`
	DisplayName string        `json:"display_name" gorm:"size:200" validate:"max=200"`
	AvatarURL   string        `json:"avatar_url" gorm:"size:500" validate:"max=500"`
	Role        MemberRole    `json:"role" gorm:"size:20;not null;default:'DEV'"`
	Teams       []UserTeamRef `json:"teams" gorm:"serializer:json;type:jsonb"`
	Stats       UserStats     `json:"stats" gorm:"serializer:json;type:jsonb"`
	Badges      []UserBadge   `json:"badges" gorm:"serializer:json;type:jsonb"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeSave recomputes the reputation score so it is never persisted stale
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.RecomputeReputation()
	return nil
}

// RecomputeReputation derives the bounded reputation score from the current
// stats and stores it. Baseline is 100; response rate pivots around 50%,
// responses faster than 24h earn up to 48 points, and each link is worth 5.
// The result is clamped to [0,200] regardless of input magnitudes.
func (u *User) RecomputeReputation() float64 {
	score := 100.0
	score += (u.Stats.ResponseRate - 50) * 0.5
	if u.Stats.AverageResponseTime > 0 {
		bonus := 24 - u.Stats.AverageResponseTime
		if bonus > 0 {
			score += bonus * 2
		}
	}
	score += float64(u.Stats.TotalLinks) * 5
	if score < 0 {
		score = 0
	}
	if score > 200 {
		score = 200
	}
	u.Stats.ReputationScore = score
	return score
}

// ReputationLevel classifies a reputation score for display. It is derived
// on read and never persisted.
func (u *User) ReputationLevel() ReputationLevel {
	return ReputationLevelForScore(u.Stats.ReputationScore)
}

// ReputationLevelForScore maps a score to its display classification
func ReputationLevelForScore(score float64) ReputationLevel {
	switch {
	case score >= 180:
		return ReputationLegendary
	case score >= 150:
		return ReputationExcellent
	case score >= 120:
		return ReputationGood
	case score >= 90:
		return ReputationAverage
	case score >= 60:
		return ReputationNeedsImprovement
	default:
		return ReputationPoor
	}
}

// AwardBadge appends a badge unless one of the same type was already earned.
// Badges are never removed.
func (u *User) AwardBadge(badgeType UserBadgeType, description string) bool {
	for i := range u.Badges {
		if u.Badges[i].Type == badgeType {
			return false
		}
	}
	u.Badges = append(u.Badges, UserBadge{
		Type:        badgeType,
		EarnedAt:    time.Now(),
		Description: description,
	})
	return true
}

// JoinTeam upserts the user-side membership reference
func (u *User) JoinTeam(teamID uuid.UUID, role UserTeamRole) {
	for i := range u.Teams {
		if u.Teams[i].TeamID == teamID {
			u.Teams[i].Role = role
			return
		}
	}
	u.Teams = append(u.Teams, UserTeamRef{
		TeamID:   teamID,
		Role:     role,
		JoinedAt: time.Now(),
	})
}

// LeaveTeam drops the user-side membership reference; no-op if absent
func (u *User) LeaveTeam(teamID uuid.UUID) {
	for i := range u.Teams {
		if u.Teams[i].TeamID == teamID {
			u.Teams = append(u.Teams[:i], u.Teams[i+1:]...)
			return
		}
	}
}
