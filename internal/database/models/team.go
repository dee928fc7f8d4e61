package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMember is one entry of the team-side membership relation.
// At most one active entry exists per user; role changes overwrite in place.
type TeamMember struct {
	UserID   uuid.UUID  `json:"user_id"`
	Role     MemberRole `json:"role"`
	JoinedAt time.Time  `json:"joined_at"`
	IsActive bool       `json:"is_active"`
}

// TeamStats holds the rolling activity metrics of a team.
// AverageResponseTime is in hours, ResponseRate in [0,100].
type TeamStats struct {
	TotalLinks          int        `json:"total_links"`
	AverageResponseTime float64    `json:"average_response_time"`
	ResponseRate        float64    `json:"response_rate"`
	ActiveMembers       int        `json:"active_members"`
	LastActivity        *time.Time `json:"last_activity,omitempty"`
}

// TeamBadge is the qualitative reputation badge derived from TeamStats
type TeamBadge struct {
	Type        TeamBadgeType `json:"type"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Description string        `json:"description"`
}

// Team represents a group of users collaborating on a named product.
// Members, stats and the badge are embedded sub-documents stored as jsonb,
// so the whole aggregate saves as a single row.
type Team struct {
	BaseModel
	Name            string       `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	ProductName     string       `json:"product_name" gorm:"size:100" validate:"max=100"`
	ProductVersion  string       `json:"product_version" gorm:"size:40" validate:"max=40"`
	OwnerID         uuid.UUID    `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	Status          TeamStatus   `json:"status" gorm:"size:20;not null;default:'ACTIVE'"`
	Members         []TeamMember `json:"members" gorm:"serializer:json;type:jsonb"`
	Stats           TeamStats    `json:"stats" gorm:"serializer:json;type:jsonb"`
	ReputationBadge *TeamBadge   `json:"reputation_badge,omitempty" gorm:"serializer:json;type:jsonb"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// BeforeSave recomputes the derived member count and reputation badge so the
// persisted row never carries stale stats, no matter which path mutated it.
func (t *Team) BeforeSave(tx *gorm.DB) error {
	t.Stats.ActiveMembers = t.countActiveMembers()
	badge := t.RecomputeBadge()
	t.ReputationBadge = &badge
	return nil
}

// AddMember upserts a membership entry. If the user is already present,
// active or not, the role is overwritten and the entry reactivated; no
// duplicate is appended. The active-member count is recomputed afterward.
func (t *Team) AddMember(userID uuid.UUID, role MemberRole) {
	for i := range t.Members {
		if t.Members[i].UserID == userID {
			t.Members[i].Role = role
			t.Members[i].IsActive = true
			t.Stats.ActiveMembers = t.countActiveMembers()
			return
		}
	}
	t.Members = append(t.Members, TeamMember{
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now(),
		IsActive: true,
	})
	t.Stats.ActiveMembers = t.countActiveMembers()
}

// RemoveMember soft-deletes a membership entry by flipping IsActive off.
// Removing a user that is not a member is a no-op.
func (t *Team) RemoveMember(userID uuid.UUID) {
	for i := range t.Members {
		if t.Members[i].UserID == userID {
			t.Members[i].IsActive = false
			break
		}
	}
	t.Stats.ActiveMembers = t.countActiveMembers()
}

// HasActiveMember reports whether the user is an active member of the team
func (t *Team) HasActiveMember(userID uuid.UUID) bool {
	for i := range t.Members {
		if t.Members[i].UserID == userID && t.Members[i].IsActive {
			return true
		}
	}
	return false
}

func (t *Team) countActiveMembers() int {
	count := 0
	for i := range t.Members {
		if t.Members[i].IsActive {
			count++
		}
	}
	return count
}

// UpdateStats folds a link-count delta, a response-time sample and a
// response-rate reading into the rolling stats.
//
// The running average deliberately uses ResponseRate/100 as an approximate
// count of prior responses instead of a real sample counter; the original
// system tracked it this way and the formula is kept for compatibility.
// TotalLinks is clamped at zero rather than rejected.
func (t *Team) UpdateStats(linkDelta int, responseTimeSample, responseRateValue float64) {
	if linkDelta != 0 {
		t.Stats.TotalLinks += linkDelta
		if t.Stats.TotalLinks < 0 {
			t.Stats.TotalLinks = 0
		}
	}
	if responseTimeSample > 0 {
		totalResponses := t.Stats.ResponseRate / 100
		t.Stats.AverageResponseTime = (t.Stats.AverageResponseTime*totalResponses + responseTimeSample) / (totalResponses + 1)
	}
	if responseRateValue > 0 {
		t.Stats.ResponseRate = responseRateValue
	}
	now := time.Now()
	t.Stats.LastActivity = &now
}

// RecomputeBadge maps the current stats to a reputation badge. The rules are
// evaluated in strict priority order; the first match wins. UpdatedAt is
// bumped on every recompute even when the badge value is unchanged.
func (t *Team) RecomputeBadge() TeamBadge {
	badge := TeamBadge{UpdatedAt: time.Now()}
	switch {
	case t.Stats.ResponseRate >= 90 && t.Stats.AverageResponseTime <= 2:
		badge.Type = TeamBadgeSuperResponders
		badge.Description = "Responds to links within 2 hours"
	case t.Stats.ResponseRate >= 70 && t.Stats.AverageResponseTime <= 24:
		badge.Type = TeamBadgeClearCommunicators
		badge.Description = "Reliable communication within a day"
	case t.Stats.ResponseRate >= 50:
		badge.Type = TeamBadgeSlowSteady
		badge.Description = "Responds to most links eventually"
	default:
		badge.Type = TeamBadgeGhostMode
		badge.Description = "Rarely responds to links"
	}
	return badge
}
