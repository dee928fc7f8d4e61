package models_test

import (
	"testing"
	"time"

	"tether-backend/internal/database/models"
	apperrors "tether-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newPendingLink() *models.Link {
	return &models.Link{
		TeamID:      uuid.New(),
		Title:       "Design review",
		MeetingType: models.MeetingTypeReview,
		Status:      models.LinkStatusPending,
	}
}

func TestLink_Schedule(t *testing.T) {
	link := newPendingLink()
	at := time.Now().Add(2 * time.Hour)

	err := link.Schedule(at)

	assert.NoError(t, err)
	assert.Equal(t, models.LinkStatusScheduled, link.Status)
	assert.NotNil(t, link.ScheduledAt)
	assert.True(t, link.ScheduledAt.Equal(at))
}

func TestLink_Schedule_OnlyFromPending(t *testing.T) {
	link := newPendingLink()
	assert.NoError(t, link.Start())

	err := link.Schedule(time.Now())

	assert.Error(t, err)
	assert.True(t, apperrors.IsInvalidStateTransition(err))
}

func TestLink_Start_FromPending(t *testing.T) {
	link := newPendingLink()

	err := link.Start()

	assert.NoError(t, err)
	assert.Equal(t, models.LinkStatusInProgress, link.Status)
	assert.NotNil(t, link.StartedAt)
}

func TestLink_Start_FromScheduled(t *testing.T) {
	link := newPendingLink()
	assert.NoError(t, link.Schedule(time.Now()))

	err := link.Start()

	assert.NoError(t, err)
	assert.Equal(t, models.LinkStatusInProgress, link.Status)
}

func TestLink_Start_FromCompletedFails(t *testing.T) {
	link := newPendingLink()
	assert.NoError(t, link.Start())
	assert.NoError(t, link.Complete(30, "done"))

	err := link.Start()

	assert.Error(t, err)
	assert.True(t, apperrors.IsInvalidStateTransition(err))
	assert.Equal(t, models.LinkStatusCompleted, link.Status)
}

func TestLink_Complete(t *testing.T) {
	link := newPendingLink()
	assert.NoError(t, link.Start())

	err := link.Complete(45, "Decided on the new API shape")

	assert.NoError(t, err)
	assert.Equal(t, models.LinkStatusCompleted, link.Status)
	assert.NotNil(t, link.CompletedAt)
	assert.Equal(t, 45, link.DurationMinutes)
	assert.Equal(t, "Decided on the new API shape", link.Notes)
}

func TestLink_Complete_OnlyFromInProgress(t *testing.T) {
	link := newPendingLink()

	err := link.Complete(30, "")

	assert.Error(t, err)
	assert.True(t, apperrors.IsInvalidStateTransition(err))
}

func TestLink_Complete_NegativeDuration(t *testing.T) {
	link := newPendingLink()
	assert.NoError(t, link.Start())

	err := link.Complete(-5, "")

	assert.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	// Status unchanged on rejection
	assert.Equal(t, models.LinkStatusInProgress, link.Status)
}

func TestLink_Cancel_FromAnyNonTerminal(t *testing.T) {
	for _, setup := range []func(*models.Link){
		func(l *models.Link) {},
		func(l *models.Link) { _ = l.Schedule(time.Now()) },
		func(l *models.Link) { _ = l.Start() },
	} {
		link := newPendingLink()
		setup(link)

		err := link.Cancel()

		assert.NoError(t, err)
		assert.Equal(t, models.LinkStatusCancelled, link.Status)
	}
}

func TestLink_Cancel_FromTerminalFails(t *testing.T) {
	link := newPendingLink()
	assert.NoError(t, link.Cancel())

	err := link.Cancel()

	assert.Error(t, err)
	assert.True(t, apperrors.IsInvalidStateTransition(err))
}

func TestLink_MarkNoShow(t *testing.T) {
	link := newPendingLink()
	assert.NoError(t, link.Schedule(time.Now()))

	err := link.MarkNoShow()

	assert.NoError(t, err)
	assert.Equal(t, models.LinkStatusNoShow, link.Status)
}

func TestLink_MarkNoShow_FromCompletedFails(t *testing.T) {
	link := newPendingLink()
	assert.NoError(t, link.Start())
	assert.NoError(t, link.Complete(10, ""))

	err := link.MarkNoShow()

	assert.Error(t, err)
	assert.True(t, apperrors.IsInvalidStateTransition(err))
}

func TestLink_AddParticipant(t *testing.T) {
	link := newPendingLink()
	userID := uuid.New()

	err := link.AddParticipant(userID, models.ParticipantRoleInitiator)

	assert.NoError(t, err)
	assert.Len(t, link.Participants, 1)
	assert.Equal(t, 1, link.Metrics.ParticipantCount)
	assert.True(t, link.HasParticipant(userID))
}

func TestLink_AddParticipant_Duplicate(t *testing.T) {
	link := newPendingLink()
	userID := uuid.New()
	assert.NoError(t, link.AddParticipant(userID, models.ParticipantRoleInitiator))

	err := link.AddParticipant(userID, models.ParticipantRoleParticipant)

	assert.ErrorIs(t, err, apperrors.ErrParticipantExists)
	assert.Len(t, link.Participants, 1)
	// Original role preserved
	assert.Equal(t, models.ParticipantRoleInitiator, link.Participants[0].Role)
}

func TestLink_AddOutcome(t *testing.T) {
	link := newPendingLink()
	assignee := uuid.New()

	link.AddOutcome(models.OutcomeTypeActionItem, "Write the migration plan", &assignee, nil)

	assert.Len(t, link.Outcomes, 1)
	assert.Equal(t, models.OutcomeStatusPending, link.Outcomes[0].Status)
	assert.Equal(t, 1, link.Metrics.OutcomeCount)
	assert.Equal(t, float64(0), link.Metrics.CompletionRate)
}

func TestLink_UpdateOutcomeStatus(t *testing.T) {
	link := newPendingLink()
	link.AddOutcome(models.OutcomeTypeActionItem, "a", nil, nil)
	link.AddOutcome(models.OutcomeTypeDecision, "b", nil, nil)

	err := link.UpdateOutcomeStatus(0, models.OutcomeStatusCompleted)

	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeStatusCompleted, link.Outcomes[0].Status)
	assert.Equal(t, float64(50), link.Metrics.CompletionRate)
}

func TestLink_UpdateOutcomeStatus_IndexOutOfRange(t *testing.T) {
	link := newPendingLink()
	link.AddOutcome(models.OutcomeTypeBlocker, "a", nil, nil)

	assert.ErrorIs(t, link.UpdateOutcomeStatus(1, models.OutcomeStatusCompleted), apperrors.ErrOutcomeNotFound)
	assert.ErrorIs(t, link.UpdateOutcomeStatus(-1, models.OutcomeStatusCompleted), apperrors.ErrOutcomeNotFound)
}

func TestLink_UpdateOutcomeStatus_InvalidStatus(t *testing.T) {
	link := newPendingLink()
	link.AddOutcome(models.OutcomeTypeFollowUp, "a", nil, nil)

	err := link.UpdateOutcomeStatus(0, models.OutcomeStatus("DONE"))

	assert.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestLink_CompletionRate(t *testing.T) {
	link := newPendingLink()
	for i := 0; i < 4; i++ {
		link.AddOutcome(models.OutcomeTypeActionItem, "item", nil, nil)
	}
	assert.NoError(t, link.UpdateOutcomeStatus(0, models.OutcomeStatusCompleted))
	assert.NoError(t, link.UpdateOutcomeStatus(1, models.OutcomeStatusCompleted))
	assert.NoError(t, link.UpdateOutcomeStatus(2, models.OutcomeStatusBlocked))

	assert.Equal(t, float64(50), link.Metrics.CompletionRate)
}

func TestLink_CompletionRate_NoOutcomes(t *testing.T) {
	link := newPendingLink()

	link.RecalculateMetrics()

	assert.Equal(t, float64(0), link.Metrics.CompletionRate)
}
