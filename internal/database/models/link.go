package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "tether-backend/internal/errors"
)

// Participant is one entry of a link's participant list; a user appears at
// most once.
type Participant struct {
	UserID   uuid.UUID       `json:"user_id"`
	Role     ParticipantRole `json:"role"`
	JoinedAt time.Time       `json:"joined_at"`
}

// Outcome is an action item, decision or blocker recorded against a link
type Outcome struct {
	Type        OutcomeType   `json:"type"`
	Description string        `json:"description"`
	AssignedTo  *uuid.UUID    `json:"assigned_to,omitempty"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
	Status      OutcomeStatus `json:"status"`
}

// LinkMetrics holds the derived metrics of a link. All fields are recomputed
// on every mutation of participants or outcomes, never in a background step.
type LinkMetrics struct {
	ParticipantCount int     `json:"participant_count"`
	OutcomeCount     int     `json:"outcome_count"`
	CompletionRate   float64 `json:"completion_rate"`
}

// Link represents a tracked meeting/sync between team members. Participants,
// outcomes and metrics are embedded sub-documents stored as jsonb so the
// aggregate saves as a single row.
type Link struct {
	BaseModel
	TeamID          uuid.UUID     `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title           string        `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Purpose         string        `json:"purpose" gorm:"size:500" validate:"max=500"`
	MeetingType     MeetingType   `json:"meeting_type" gorm:"size:20;not null;default:'SYNC'"`
	Status          LinkStatus    `json:"status" gorm:"size:20;not null;default:'PENDING'"`
	ScheduledAt     *time.Time    `json:"scheduled_at,omitempty"`
	StartedAt       *time.Time    `json:"started_at,omitempty"`
	CompletedAt     *time.Time    `json:"completed_at,omitempty"`
	DurationMinutes int           `json:"duration_minutes"`
	Notes           string        `json:"notes" gorm:"type:text"`
	Participants    []Participant `json:"participants" gorm:"serializer:json;type:jsonb"`
	Outcomes        []Outcome     `json:"outcomes" gorm:"serializer:json;type:jsonb"`
	Metrics         LinkMetrics   `json:"metrics" gorm:"serializer:json;type:jsonb"`
	AISummary       string        `json:"ai_summary,omitempty" gorm:"type:text"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// BeforeSave recomputes derived metrics so a reader never observes a status
// update without its corresponding metric update.
func (l *Link) BeforeSave(tx *gorm.DB) error {
	l.RecalculateMetrics()
	return nil
}

// Schedule moves a pending link to SCHEDULED at the given time
func (l *Link) Schedule(at time.Time) error {
	if l.Status != LinkStatusPending {
		return apperrors.NewInvalidStateTransitionError(string(l.Status), string(LinkStatusScheduled))
	}
	l.Status = LinkStatusScheduled
	l.ScheduledAt = &at
	return nil
}

// Start moves the link to IN_PROGRESS and records the start time.
// Legal only from PENDING or SCHEDULED.
func (l *Link) Start() error {
	if l.Status != LinkStatusPending && l.Status != LinkStatusScheduled {
		return apperrors.NewInvalidStateTransitionError(string(l.Status), string(LinkStatusInProgress))
	}
	now := time.Now()
	l.Status = LinkStatusInProgress
	l.StartedAt = &now
	return nil
}

// Complete moves the link to COMPLETED, records the completion time, the
// given duration and notes, and recomputes the outcome completion rate.
// Legal only from IN_PROGRESS; duration must not be negative.
func (l *Link) Complete(durationMinutes int, notes string) error {
	if durationMinutes < 0 {
		return apperrors.NewValidationError("duration", "duration must not be negative")
	}
	if l.Status != LinkStatusInProgress {
		return apperrors.NewInvalidStateTransitionError(string(l.Status), string(LinkStatusCompleted))
	}
	now := time.Now()
	l.Status = LinkStatusCompleted
	l.CompletedAt = &now
	l.DurationMinutes = durationMinutes
	l.Notes = notes
	l.RecalculateMetrics()
	return nil
}

// Cancel moves the link to the CANCELLED terminal state. Legal from any
// non-terminal state.
func (l *Link) Cancel() error {
	if l.Status.IsTerminal() {
		return apperrors.NewInvalidStateTransitionError(string(l.Status), string(LinkStatusCancelled))
	}
	l.Status = LinkStatusCancelled
	return nil
}

// MarkNoShow moves the link to the NO_SHOW terminal state. Legal from any
// non-terminal state.
func (l *Link) MarkNoShow() error {
	if l.Status.IsTerminal() {
		return apperrors.NewInvalidStateTransitionError(string(l.Status), string(LinkStatusNoShow))
	}
	l.Status = LinkStatusNoShow
	return nil
}

// AddParticipant appends a participant; a user may appear only once
func (l *Link) AddParticipant(userID uuid.UUID, role ParticipantRole) error {
	for i := range l.Participants {
		if l.Participants[i].UserID == userID {
			return apperrors.ErrParticipantExists
		}
	}
	l.Participants = append(l.Participants, Participant{
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now(),
	})
	l.RecalculateMetrics()
	return nil
}

// HasParticipant reports whether the user participates in the link
func (l *Link) HasParticipant(userID uuid.UUID) bool {
	for i := range l.Participants {
		if l.Participants[i].UserID == userID {
			return true
		}
	}
	return false
}

// AddOutcome appends an outcome with status PENDING and recomputes metrics
func (l *Link) AddOutcome(outcomeType OutcomeType, description string, assignedTo *uuid.UUID, dueDate *time.Time) {
	l.Outcomes = append(l.Outcomes, Outcome{
		Type:        outcomeType,
		Description: description,
		AssignedTo:  assignedTo,
		DueDate:     dueDate,
		Status:      OutcomeStatusPending,
	})
	l.RecalculateMetrics()
}

// UpdateOutcomeStatus flips the status of the outcome at the given index and
// recomputes metrics.
func (l *Link) UpdateOutcomeStatus(index int, status OutcomeStatus) error {
	if index < 0 || index >= len(l.Outcomes) {
		return apperrors.ErrOutcomeNotFound
	}
	if !status.IsValid() {
		return apperrors.NewValidationError("status", "invalid outcome status")
	}
	l.Outcomes[index].Status = status
	l.RecalculateMetrics()
	return nil
}

// RecalculateMetrics rederives participant count, outcome count and the
// completion rate. The rate is 100*completed/total, or 0 with no outcomes.
func (l *Link) RecalculateMetrics() {
	l.Metrics.ParticipantCount = len(l.Participants)
	l.Metrics.OutcomeCount = len(l.Outcomes)
	if len(l.Outcomes) == 0 {
		l.Metrics.CompletionRate = 0
		return
	}
	completed := 0
	for i := range l.Outcomes {
		if l.Outcomes[i].Status == OutcomeStatusCompleted {
			completed++
		}
	}
	l.Metrics.CompletionRate = float64(completed) / float64(len(l.Outcomes)) * 100
}
