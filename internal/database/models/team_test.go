package models_test

import (
	"testing"

	"tether-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTeam() *models.Team {
	return &models.Team{
		Name:    "Platform",
		OwnerID: uuid.New(),
		Status:  models.TeamStatusActive,
	}
}

func TestTeam_AddMember(t *testing.T) {
	team := newTeam()
	userID := uuid.New()

	team.AddMember(userID, models.MemberRolePM)

	assert.Len(t, team.Members, 1)
	assert.Equal(t, 1, team.Stats.ActiveMembers)
	assert.True(t, team.HasActiveMember(userID))
}

func TestTeam_AddMember_UpsertExisting(t *testing.T) {
	team := newTeam()
	userID := uuid.New()
	team.AddMember(userID, models.MemberRolePM)

	// Re-adding overwrites the role in place, no duplicate entry
	team.AddMember(userID, models.MemberRoleDev)

	assert.Len(t, team.Members, 1)
	assert.Equal(t, models.MemberRoleDev, team.Members[0].Role)
	assert.Equal(t, 1, team.Stats.ActiveMembers)
}

func TestTeam_AddMember_ReactivatesInactive(t *testing.T) {
	team := newTeam()
	userID := uuid.New()
	team.AddMember(userID, models.MemberRolePM)
	team.RemoveMember(userID)
	assert.Equal(t, 0, team.Stats.ActiveMembers)

	team.AddMember(userID, models.MemberRoleDev)

	assert.Len(t, team.Members, 1)
	assert.True(t, team.Members[0].IsActive)
	assert.Equal(t, models.MemberRoleDev, team.Members[0].Role)
	assert.Equal(t, 1, team.Stats.ActiveMembers)
}

func TestTeam_RemoveMember_SoftDelete(t *testing.T) {
	team := newTeam()
	userID := uuid.New()
	other := uuid.New()
	team.AddMember(userID, models.MemberRolePM)
	team.AddMember(other, models.MemberRoleDev)

	team.RemoveMember(userID)

	// Entry stays, flagged inactive
	assert.Len(t, team.Members, 2)
	assert.False(t, team.Members[0].IsActive)
	assert.False(t, team.HasActiveMember(userID))
	assert.Equal(t, 1, team.Stats.ActiveMembers)
}

func TestTeam_RemoveMember_NotAMember(t *testing.T) {
	team := newTeam()
	team.AddMember(uuid.New(), models.MemberRolePM)

	team.RemoveMember(uuid.New())

	assert.Len(t, team.Members, 1)
	assert.Equal(t, 1, team.Stats.ActiveMembers)
}

func TestTeam_UpdateStats_LinkDelta(t *testing.T) {
	team := newTeam()

	team.UpdateStats(1, 0, 0)
	team.UpdateStats(1, 0, 0)

	assert.Equal(t, 2, team.Stats.TotalLinks)
	assert.NotNil(t, team.Stats.LastActivity)
}

func TestTeam_UpdateStats_LinkCountClampedAtZero(t *testing.T) {
	team := newTeam()
	team.UpdateStats(1, 0, 0)

	team.UpdateStats(-5, 0, 0)

	assert.Equal(t, 0, team.Stats.TotalLinks)
}

func TestTeam_UpdateStats_ResponseTimeAverage(t *testing.T) {
	team := newTeam()
	team.Stats.ResponseRate = 100
	team.Stats.AverageResponseTime = 4

	// Prior response count is approximated as responseRate/100 = 1,
	// so the new sample averages in as (4*1 + 8) / 2 = 6.
	team.UpdateStats(0, 8, 0)

	assert.InDelta(t, 6.0, team.Stats.AverageResponseTime, 0.0001)
}

func TestTeam_UpdateStats_FirstResponseTimeSample(t *testing.T) {
	team := newTeam()

	// With responseRate 0 the prior weight is 0 and the sample stands alone
	team.UpdateStats(0, 3.5, 0)

	assert.InDelta(t, 3.5, team.Stats.AverageResponseTime, 0.0001)
}

func TestTeam_UpdateStats_ResponseRateOverwrite(t *testing.T) {
	team := newTeam()
	team.Stats.ResponseRate = 40

	team.UpdateStats(0, 0, 85)

	assert.Equal(t, float64(85), team.Stats.ResponseRate)
}

func TestTeam_UpdateStats_ZeroValuesIgnored(t *testing.T) {
	team := newTeam()
	team.Stats.ResponseRate = 40
	team.Stats.AverageResponseTime = 2

	team.UpdateStats(0, 0, 0)

	assert.Equal(t, float64(40), team.Stats.ResponseRate)
	assert.Equal(t, float64(2), team.Stats.AverageResponseTime)
	assert.NotNil(t, team.Stats.LastActivity)
}

func TestTeam_RecomputeBadge(t *testing.T) {
	tests := []struct {
		name         string
		responseRate float64
		responseTime float64
		want         models.TeamBadgeType
	}{
		{"super responders", 95, 1, models.TeamBadgeSuperResponders},
		{"super responders boundary", 90, 2, models.TeamBadgeSuperResponders},
		{"fast but unreliable", 60, 1, models.TeamBadgeSlowSteady},
		{"clear communicators", 75, 12, models.TeamBadgeClearCommunicators},
		{"high rate slow response", 95, 10, models.TeamBadgeClearCommunicators},
		{"slow steady", 55, 48, models.TeamBadgeSlowSteady},
		{"ghost mode", 40, 10, models.TeamBadgeGhostMode},
		{"zero stats", 0, 0, models.TeamBadgeGhostMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := newTeam()
			team.Stats.ResponseRate = tt.responseRate
			team.Stats.AverageResponseTime = tt.responseTime

			badge := team.RecomputeBadge()

			assert.Equal(t, tt.want, badge.Type)
			assert.NotEmpty(t, badge.Description)
			assert.False(t, badge.UpdatedAt.IsZero())
		})
	}
}

func TestTeam_RecomputeBadge_TimestampAlwaysBumped(t *testing.T) {
	team := newTeam()
	first := team.RecomputeBadge()

	second := team.RecomputeBadge()

	assert.Equal(t, first.Type, second.Type)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}
