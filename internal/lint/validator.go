package lint

// Report is the outcome of validating one document.
type Report struct {
	Conforms   bool        `json:"conforms"`
	Violations []Violation `json:"violations,omitempty"`
}

// Validator runs a fixed ruleset over RAML documents.
type Validator struct {
	rules []Rule
}

// NewValidator creates a validator with the given rules.
func NewValidator(rules ...Rule) *Validator {
	return &Validator{rules: rules}
}

// DefaultValidator returns the governance ruleset.
func DefaultValidator() *Validator {
	return NewValidator(
		requiredMarkerRule{},
		titleRule{},
	)
}

// Rules returns the configured ruleset.
func (v *Validator) Rules() []Rule {
	return v.rules
}

// Validate runs every rule and aggregates the hits.
func (v *Validator) Validate(doc *Document) Report {
	var violations []Violation
	for _, rule := range v.rules {
		violations = append(violations, rule.Check(doc)...)
	}
	return Report{
		Conforms:   len(violations) == 0,
		Violations: violations,
	}
}

// ValidateFile loads and validates the document at path.
func (v *Validator) ValidateFile(path string) (Report, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return Report{}, err
	}
	return v.Validate(doc), nil
}
