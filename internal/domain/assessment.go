package domain

import (
	"encoding/json"
	"time"
)

// QuestionType enumerates the supported assessment question kinds.
type QuestionType string

const (
	QuestionSingleChoice QuestionType = "single-choice"
	QuestionMultiChoice  QuestionType = "multi-choice"
	QuestionShortText    QuestionType = "short-text"
	QuestionLongText     QuestionType = "long-text"
	QuestionNumeric      QuestionType = "numeric"
	QuestionFileUpload   QuestionType = "file-upload"
)

// Option is one selectable answer of a choice question.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Validation holds the optional per-question limits. Pointer fields
// distinguish "absent" from zero.
type Validation struct {
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
}

// ShowIf gates a question's visibility on another question's response.
// Equals is a comma-separated value list; when empty, any non-empty
// response satisfies the rule.
type ShowIf struct {
	QuestionID string `json:"questionId"`
	Equals     string `json:"equals,omitempty"`
}

// Question is a single prompt inside an assessment section.
type Question struct {
	ID         string       `json:"id"`
	Type       QuestionType `json:"type"`
	Label      string       `json:"label"`
	Required   bool         `json:"required"`
	Options    []Option     `json:"options,omitempty"`
	Validation *Validation  `json:"validation,omitempty"`
	ShowIf     *ShowIf      `json:"showIf,omitempty"`
}

// Section groups an ordered list of questions.
type Section struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
}

// Assessment is the full questionnaire attached to a job. Saves overwrite
// wholesale; there is no partial patching.
type Assessment struct {
	JobID       string    `json:"jobId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Sections    []Section `json:"sections"`
}

// Submission is one candidate's completed assessment, appended per job.
// Responses maps question id to the raw submitted answer.
type Submission struct {
	ID          string                     `json:"id"`
	At          time.Time                  `json:"at"`
	CandidateID string                     `json:"candidateId,omitempty"`
	Responses   map[string]json.RawMessage `json:"responses"`
}
