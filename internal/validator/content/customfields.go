package content

import "fmt"

// CustomFieldType is the declared input type of a challenge form field.
type CustomFieldType string

const (
	FieldTypeText    CustomFieldType = "text"
	FieldTypeSelect  CustomFieldType = "select"
	FieldTypeBoolean CustomFieldType = "boolean"
)

// CustomFieldRule declares the constraints on one custom form field.
type CustomFieldRule struct {
	Type      CustomFieldType
	Required  bool
	MaxLength int
}

// CustomFieldRules maps field name to its rule. The table is injected into
// the engine so it can later become challenge-configurable; the default
// below is the fixed table the platform currently ships.
type CustomFieldRules map[string]CustomFieldRule

// DefaultCustomFieldRules returns the built-in custom field rule table.
func DefaultCustomFieldRules() CustomFieldRules {
	return CustomFieldRules{
		"ridingExperience":    {Type: FieldTypeSelect, Required: true},
		"safetyGearUsed":      {Type: FieldTypeBoolean, Required: true},
		"locationDescription": {Type: FieldTypeText, MaxLength: 200},
	}
}

// FieldResult is the per-field outcome of custom field validation.
type FieldResult struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
}

// EvaluateCustomFields validates the submission's custom fields against the
// rule table. Fields with no declared rule do not appear in the result.
func EvaluateCustomFields(sub *Submission, rules CustomFieldRules) map[string]FieldResult {
	results := make(map[string]FieldResult, len(rules))

	for name, rule := range rules {
		value, present := sub.CustomFields[name]
		if value == nil {
			present = false
		}
		if s, isStr := value.(string); isStr && s == "" {
			present = false
		}

		if rule.Required && !present {
			results[name] = FieldResult{
				IsValid: false,
				Message: fmt.Sprintf("%s is required", name),
			}
			continue
		}

		if rule.Type == FieldTypeText && rule.MaxLength > 0 && present {
			if s, isStr := value.(string); isStr && len(s) > rule.MaxLength {
				results[name] = FieldResult{
					IsValid: false,
					Message: fmt.Sprintf("%s must be at most %d characters", name, rule.MaxLength),
				}
				continue
			}
		}

		results[name] = FieldResult{IsValid: true}
	}

	return results
}
