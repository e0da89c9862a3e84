package assessment

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/talentflow/talentflow-back/internal/domain"
)

var ErrInvalidSubmission = errors.New("submission failed validation")

// Issue is one validation failure tied to a question.
type Issue struct {
	QuestionID string `json:"questionId"`
	Message    string `json:"message"`
}

// Validator checks submitted responses against an assessment definition.
// Questions hidden by their showIf rule are exempt from every check.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns one issue per failing question, in section order. A nil
// result means the submission is acceptable.
func (v *Validator) Validate(a domain.Assessment, responses map[string]json.RawMessage) []Issue {
	decoded := decodeResponses(responses)
	visible := VisibleQuestions(a, responses)

	var issues []Issue
	for _, section := range a.Sections {
		for _, question := range section.Questions {
			if !visible[question.ID] {
				continue
			}
			if issue, ok := checkQuestion(question, decoded[question.ID]); ok {
				issues = append(issues, Issue{QuestionID: question.ID, Message: issue})
			}
		}
	}
	return issues
}

func checkQuestion(question domain.Question, answer any) (string, bool) {
	if question.Required && isEmptyAnswer(question, answer) {
		return "This question is required", true
	}
	if isEmptyAnswer(question, answer) {
		return "", false
	}

	rules := question.Validation
	switch question.Type {
	case domain.QuestionNumeric:
		number, ok := toNumber(answer)
		if !ok {
			return "Must be a number", true
		}
		if rules != nil && rules.Min != nil && number < *rules.Min {
			return fmt.Sprintf("Min %v", *rules.Min), true
		}
		if rules != nil && rules.Max != nil && number > *rules.Max {
			return fmt.Sprintf("Max %v", *rules.Max), true
		}
	case domain.QuestionShortText, domain.QuestionLongText:
		if rules != nil && rules.MaxLength != nil {
			if text, ok := answer.(string); ok && len([]rune(text)) > *rules.MaxLength {
				return fmt.Sprintf("Max length %d", *rules.MaxLength), true
			}
		}
	}
	return "", false
}

func isEmptyAnswer(question domain.Question, answer any) bool {
	if question.Type == domain.QuestionMultiChoice {
		list, ok := answer.([]any)
		return !ok || len(list) == 0
	}
	switch value := answer.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(value) == ""
	default:
		return false
	}
}

// VisibleQuestions evaluates every showIf rule against the responses. A rule
// referencing a list response passes when any of its comma-separated equals
// values is present, or when the list is simply non-empty if equals is
// absent; scalar responses compare as strings.
func VisibleQuestions(a domain.Assessment, responses map[string]json.RawMessage) map[string]bool {
	decoded := decodeResponses(responses)

	visible := make(map[string]bool)
	for _, section := range a.Sections {
		for _, question := range section.Questions {
			rule := question.ShowIf
			if rule == nil || rule.QuestionID == "" {
				visible[question.ID] = true
				continue
			}

			target := decoded[rule.QuestionID]
			wanted := splitEquals(rule.Equals)

			if list, ok := target.([]any); ok {
				if len(wanted) == 0 {
					visible[question.ID] = len(list) > 0
					continue
				}
				visible[question.ID] = anyInList(wanted, list)
				continue
			}

			if len(wanted) == 0 {
				visible[question.ID] = truthy(target)
				continue
			}
			visible[question.ID] = containsValue(wanted, stringify(target))
		}
	}
	return visible
}

func decodeResponses(responses map[string]json.RawMessage) map[string]any {
	decoded := make(map[string]any, len(responses))
	for id, raw := range responses {
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			continue
		}
		decoded[id] = value
	}
	return decoded
}

func splitEquals(equals string) []string {
	if strings.TrimSpace(equals) == "" {
		return nil
	}
	parts := strings.Split(equals, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func anyInList(wanted []string, list []any) bool {
	for _, item := range list {
		if containsValue(wanted, stringify(item)) {
			return true
		}
	}
	return false
}

func containsValue(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return true
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		encoded, _ := json.Marshal(v)
		return string(encoded)
	}
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
