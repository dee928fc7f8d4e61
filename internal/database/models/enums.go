package models

// TeamStatus defines the lifecycle status of a team
type TeamStatus string

const (
	TeamStatusActive    TeamStatus = "ACTIVE"
	TeamStatusPaused    TeamStatus = "PAUSED"
	TeamStatusCompleted TeamStatus = "COMPLETED"
	TeamStatusArchived  TeamStatus = "ARCHIVED"
)

// IsValid checks if the TeamStatus is valid
func (s TeamStatus) IsValid() bool {
	switch s {
	case TeamStatusActive, TeamStatusPaused, TeamStatusCompleted, TeamStatusArchived:
		return true
	}
	return false
}

// MemberRole defines the functional role of a member inside a team
type MemberRole string

const (
	MemberRoleOwner       MemberRole = "OWNER"
	MemberRolePM          MemberRole = "PM"
	MemberRoleDev         MemberRole = "DEV"
	MemberRoleDesign      MemberRole = "DESIGN"
	MemberRoleLegal       MemberRole = "LEGAL"
	MemberRoleSecurity    MemberRole = "SECURITY"
	MemberRoleBizOps      MemberRole = "BIZ_OPS"
	MemberRoleStakeholder MemberRole = "STAKEHOLDER"
)

// IsValid checks if the MemberRole is valid
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleOwner, MemberRolePM, MemberRoleDev, MemberRoleDesign,
		MemberRoleLegal, MemberRoleSecurity, MemberRoleBizOps, MemberRoleStakeholder:
		return true
	}
	return false
}

// UserTeamRole defines the role a user holds on the user-side half of the
// team relation
type UserTeamRole string

const (
	UserTeamRoleOwner  UserTeamRole = "OWNER"
	UserTeamRoleMember UserTeamRole = "MEMBER"
	UserTeamRoleViewer UserTeamRole = "VIEWER"
)

// IsValid checks if the UserTeamRole is valid
func (r UserTeamRole) IsValid() bool {
	switch r {
	case UserTeamRoleOwner, UserTeamRoleMember, UserTeamRoleViewer:
		return true
	}
	return false
}

// LinkStatus defines the lifecycle status of a link (tracked meeting)
type LinkStatus string

const (
	LinkStatusPending    LinkStatus = "PENDING"
	LinkStatusScheduled  LinkStatus = "SCHEDULED"
	LinkStatusInProgress LinkStatus = "IN_PROGRESS"
	LinkStatusCompleted  LinkStatus = "COMPLETED"
	LinkStatusCancelled  LinkStatus = "CANCELLED"
	LinkStatusNoShow     LinkStatus = "NO_SHOW"
)

// IsValid checks if the LinkStatus is valid
func (s LinkStatus) IsValid() bool {
	switch s {
	case LinkStatusPending, LinkStatusScheduled, LinkStatusInProgress,
		LinkStatusCompleted, LinkStatusCancelled, LinkStatusNoShow:
		return true
	}
	return false
}

// IsTerminal reports whether no further lifecycle transition is allowed
func (s LinkStatus) IsTerminal() bool {
	switch s {
	case LinkStatusCompleted, LinkStatusCancelled, LinkStatusNoShow:
		return true
	}
	return false
}

// MeetingType defines the kind of sync a link tracks
type MeetingType string

const (
	MeetingTypeSync     MeetingType = "SYNC"
	MeetingTypeReview   MeetingType = "REVIEW"
	MeetingTypeKickoff  MeetingType = "KICKOFF"
	MeetingTypeHandoff  MeetingType = "HANDOFF"
	MeetingTypeDecision MeetingType = "DECISION"
	MeetingTypeAdHoc    MeetingType = "AD_HOC"
)

// IsValid checks if the MeetingType is valid
func (t MeetingType) IsValid() bool {
	switch t {
	case MeetingTypeSync, MeetingTypeReview, MeetingTypeKickoff,
		MeetingTypeHandoff, MeetingTypeDecision, MeetingTypeAdHoc:
		return true
	}
	return false
}

// ParticipantRole defines the role of a user on a link
type ParticipantRole string

const (
	ParticipantRoleInitiator   ParticipantRole = "INITIATOR"
	ParticipantRoleParticipant ParticipantRole = "PARTICIPANT"
	ParticipantRoleObserver    ParticipantRole = "OBSERVER"
)

// IsValid checks if the ParticipantRole is valid
func (r ParticipantRole) IsValid() bool {
	switch r {
	case ParticipantRoleInitiator, ParticipantRoleParticipant, ParticipantRoleObserver:
		return true
	}
	return false
}

// OutcomeType defines the kind of outcome recorded against a link
type OutcomeType string

const (
	OutcomeTypeActionItem OutcomeType = "ACTION_ITEM"
	OutcomeTypeDecision   OutcomeType = "DECISION"
	OutcomeTypeBlocker    OutcomeType = "BLOCKER"
	OutcomeTypeFollowUp   OutcomeType = "FOLLOW_UP"
)

// IsValid checks if the OutcomeType is valid
func (t OutcomeType) IsValid() bool {
	switch t {
	case OutcomeTypeActionItem, OutcomeTypeDecision, OutcomeTypeBlocker, OutcomeTypeFollowUp:
		return true
	}
	return false
}

// OutcomeStatus defines the completion status of an outcome
type OutcomeStatus string

const (
	OutcomeStatusPending    OutcomeStatus = "PENDING"
	OutcomeStatusInProgress OutcomeStatus = "IN_PROGRESS"
	OutcomeStatusCompleted  OutcomeStatus = "COMPLETED"
	OutcomeStatusBlocked    OutcomeStatus = "BLOCKED"
)

// IsValid checks if the OutcomeStatus is valid
func (s OutcomeStatus) IsValid() bool {
	switch s {
	case OutcomeStatusPending, OutcomeStatusInProgress, OutcomeStatusCompleted, OutcomeStatusBlocked:
		return true
	}
	return false
}

// TeamBadgeType defines the qualitative reputation badge of a team
type TeamBadgeType string

const (
	TeamBadgeSuperResponders    TeamBadgeType = "SUPER_RESPONDERS"
	TeamBadgeClearCommunicators TeamBadgeType = "CLEAR_COMMUNICATORS"
	TeamBadgeSlowSteady         TeamBadgeType = "SLOW_STEADY"
	TeamBadgeGhostMode          TeamBadgeType = "GHOST_MODE"
)

// UserBadgeType defines badges a user can earn from link activity
type UserBadgeType string

const (
	UserBadgeFirstLink      UserBadgeType = "FIRST_LINK"
	UserBadgeConnector      UserBadgeType = "CONNECTOR"
	UserBadgeRapidResponder UserBadgeType = "RAPID_RESPONDER"
	UserBadgeCenturion      UserBadgeType = "CENTURION"
)

// ReputationLevel is a display-only classification of a user reputation score
type ReputationLevel string

const (
	ReputationLegendary        ReputationLevel = "LEGENDARY"
	ReputationExcellent        ReputationLevel = "EXCELLENT"
	ReputationGood             ReputationLevel = "GOOD"
	ReputationAverage          ReputationLevel = "AVERAGE"
	ReputationNeedsImprovement ReputationLevel = "NEEDS_IMPROVEMENT"
	ReputationPoor             ReputationLevel = "POOR"
)
