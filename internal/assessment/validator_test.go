package assessment

import (
	"encoding/json"
	"testing"

	"github.com/talentflow/talentflow-back/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func singleSection(questions ...domain.Question) domain.Assessment {
	return domain.Assessment{
		Sections: []domain.Section{{ID: "s1", Title: "Section", Questions: questions}},
	}
}

func responses(pairs map[string]string) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(pairs))
	for id, raw := range pairs {
		out[id] = json.RawMessage(raw)
	}
	return out
}

func TestValidateRequiredQuestion(t *testing.T) {
	validator := NewValidator()
	assessment := singleSection(domain.Question{
		ID:       "q1",
		Type:     domain.QuestionShortText,
		Required: true,
	})

	cases := []struct {
		name      string
		responses map[string]json.RawMessage
		wantIssue bool
	}{
		{"missing", responses(nil), true},
		{"blank string", responses(map[string]string{"q1": `"   "`}), true},
		{"answered", responses(map[string]string{"q1": `"yes"`}), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			issues := validator.Validate(assessment, tc.responses)
			if got := len(issues) > 0; got != tc.wantIssue {
				t.Fatalf("issues = %+v, want issue %v", issues, tc.wantIssue)
			}
			if tc.wantIssue && issues[0].Message != "This question is required" {
				t.Fatalf("unexpected message %q", issues[0].Message)
			}
		})
	}
}

func TestValidateRequiredMultiChoiceNeedsNonEmptyArray(t *testing.T) {
	validator := NewValidator()
	assessment := singleSection(domain.Question{
		ID:       "q1",
		Type:     domain.QuestionMultiChoice,
		Required: true,
	})

	issues := validator.Validate(assessment, responses(map[string]string{"q1": `[]`}))
	if len(issues) != 1 {
		t.Fatalf("expected empty array rejected, got %+v", issues)
	}
	issues = validator.Validate(assessment, responses(map[string]string{"q1": `["go"]`}))
	if len(issues) != 0 {
		t.Fatalf("expected non-empty array accepted, got %+v", issues)
	}
}

func TestValidateNumericBounds(t *testing.T) {
	validator := NewValidator()
	assessment := singleSection(domain.Question{
		ID:         "q1",
		Type:       domain.QuestionNumeric,
		Validation: &domain.Validation{Min: floatPtr(1), Max: floatPtr(10)},
	})

	cases := []struct {
		name    string
		answer  string
		message string
	}{
		{"below min", `0`, "Min 1"},
		{"above max", `11`, "Max 10"},
		{"not a number", `"lots"`, "Must be a number"},
		{"numeric string", `"5"`, ""},
		{"in range", `5`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			issues := validator.Validate(assessment, responses(map[string]string{"q1": tc.answer}))
			if tc.message == "" {
				if len(issues) != 0 {
					t.Fatalf("expected no issues, got %+v", issues)
				}
				return
			}
			if len(issues) != 1 || issues[0].Message != tc.message {
				t.Fatalf("issues = %+v, want message %q", issues, tc.message)
			}
		})
	}
}

func TestValidateTextMaxLength(t *testing.T) {
	validator := NewValidator()
	assessment := singleSection(domain.Question{
		ID:         "q1",
		Type:       domain.QuestionLongText,
		Validation: &domain.Validation{MaxLength: intPtr(5)},
	})

	issues := validator.Validate(assessment, responses(map[string]string{"q1": `"abcdef"`}))
	if len(issues) != 1 || issues[0].Message != "Max length 5" {
		t.Fatalf("expected max length issue, got %+v", issues)
	}
	issues = validator.Validate(assessment, responses(map[string]string{"q1": `"abcde"`}))
	if len(issues) != 0 {
		t.Fatalf("expected text within limit accepted, got %+v", issues)
	}
}

func TestValidateOptionalEmptyAnswerSkipsRules(t *testing.T) {
	validator := NewValidator()
	assessment := singleSection(domain.Question{
		ID:         "q1",
		Type:       domain.QuestionNumeric,
		Validation: &domain.Validation{Min: floatPtr(1)},
	})

	issues := validator.Validate(assessment, responses(nil))
	if len(issues) != 0 {
		t.Fatalf("expected unanswered optional question to pass, got %+v", issues)
	}
}

func TestHiddenQuestionsAreExempt(t *testing.T) {
	validator := NewValidator()
	assessment := singleSection(
		domain.Question{ID: "gate", Type: domain.QuestionSingleChoice},
		domain.Question{
			ID:       "q2",
			Type:     domain.QuestionShortText,
			Required: true,
			ShowIf:   &domain.ShowIf{QuestionID: "gate", Equals: "yes"},
		},
	)

	issues := validator.Validate(assessment, responses(map[string]string{"gate": `"no"`}))
	if len(issues) != 0 {
		t.Fatalf("hidden required question should not be checked, got %+v", issues)
	}

	issues = validator.Validate(assessment, responses(map[string]string{"gate": `"yes"`}))
	if len(issues) != 1 || issues[0].QuestionID != "q2" {
		t.Fatalf("visible required question should be checked, got %+v", issues)
	}
}

func TestVisibleQuestionsScalarRules(t *testing.T) {
	assessment := singleSection(
		domain.Question{ID: "gate", Type: domain.QuestionSingleChoice},
		domain.Question{ID: "q2", ShowIf: &domain.ShowIf{QuestionID: "gate", Equals: "a, b"}},
		domain.Question{ID: "q3", ShowIf: &domain.ShowIf{QuestionID: "gate"}},
	)

	visible := VisibleQuestions(assessment, responses(map[string]string{"gate": `"b"`}))
	if !visible["q2"] {
		t.Fatalf("expected q2 visible when answer matches any equals value")
	}
	if !visible["q3"] {
		t.Fatalf("expected q3 visible for any truthy answer")
	}

	visible = VisibleQuestions(assessment, responses(map[string]string{"gate": `""`}))
	if visible["q2"] || visible["q3"] {
		t.Fatalf("expected empty answer to hide both, got %v", visible)
	}

	visible = VisibleQuestions(assessment, responses(map[string]string{"gate": `true`}))
	if !visible["q3"] {
		t.Fatalf("expected boolean true treated as truthy")
	}
}

func TestVisibleQuestionsListRules(t *testing.T) {
	assessment := singleSection(
		domain.Question{ID: "gate", Type: domain.QuestionMultiChoice},
		domain.Question{ID: "q2", ShowIf: &domain.ShowIf{QuestionID: "gate", Equals: "go,rust"}},
		domain.Question{ID: "q3", ShowIf: &domain.ShowIf{QuestionID: "gate"}},
	)

	visible := VisibleQuestions(assessment, responses(map[string]string{"gate": `["python","rust"]`}))
	if !visible["q2"] {
		t.Fatalf("expected membership of any equals value to show q2")
	}

	visible = VisibleQuestions(assessment, responses(map[string]string{"gate": `["python"]`}))
	if visible["q2"] {
		t.Fatalf("expected no overlap to hide q2")
	}
	if !visible["q3"] {
		t.Fatalf("expected non-empty list to show q3 without equals")
	}

	visible = VisibleQuestions(assessment, responses(map[string]string{"gate": `[]`}))
	if visible["q3"] {
		t.Fatalf("expected empty list to hide q3")
	}
}
