package domain

import "time"

// Stage is one of the six fixed workflow states a candidate moves through.
type Stage string

const (
	StageApplied     Stage = "Applied"
	StagePhoneScreen Stage = "Phone Screen"
	StageOnsite      Stage = "Onsite"
	StageOffer       Stage = "Offer"
	StageHired       Stage = "Hired"
	StageRejected    Stage = "Rejected"
)

// CandidateStages lists every workflow stage in pipeline order.
var CandidateStages = []Stage{
	StageApplied,
	StagePhoneScreen,
	StageOnsite,
	StageOffer,
	StageHired,
	StageRejected,
}

// ValidStage reports whether value is one of the six workflow stages.
func ValidStage(value Stage) bool {
	for _, stage := range CandidateStages {
		if stage == value {
			return true
		}
	}
	return false
}

// Candidate is an applicant in the hiring pipeline. JobID is a weak
// reference; deleting the job does not touch the candidate.
type Candidate struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Stage Stage  `json:"stage"`
	JobID string `json:"jobId,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// CandidateListFilter selects and pages candidates.
type CandidateListFilter struct {
	Search   string
	Stage    string
	Page     int
	PageSize int
}

// Timeline event types.
const (
	TimelineEventCreated    = "created"
	TimelineEventStage      = "stage"
	TimelineEventNote       = "note"
	TimelineEventSeed       = "seed"
	TimelineEventSubmission = "submission"
	TimelineEventAssignment = "assignment"
)

// TimelineEvent is an append-only audit record on a candidate. Events are
// never mutated or reordered after the fact.
type TimelineEvent struct {
	At    time.Time `json:"at"`
	Type  string    `json:"type"`
	Stage Stage     `json:"stage,omitempty"`
	From  Stage     `json:"from,omitempty"`
	To    Stage     `json:"to,omitempty"`
	JobID string    `json:"jobId,omitempty"`
	Note  string    `json:"note,omitempty"`
}
