package lint

import (
	"testing"
)

func loadFixture(t *testing.T) *Document {
	t.Helper()
	doc, err := LoadFile("testdata/orders-api.raml")
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return doc
}

func TestFixtureConforms(t *testing.T) {
	report := DefaultValidator().Validate(loadFixture(t))
	if !report.Conforms {
		t.Fatalf("base fixture should conform, got violations: %v", report.Violations)
	}
}

// The marker matrix: a property renamed to carry one or two trailing
// question marks, combined with required true/false/absent, checked for
// both a top-level response property and a nested datatype property.
// Only the combination of the marker with an explicit required: true is
// a violation, and it must be the single rule that fires.
func TestRequiredMarkerMatrix(t *testing.T) {
	responseProps := []string{"/orders", "get", "responses", "200", "body", "properties"}
	datatypeProps := []string{"types", "Order", "properties", "customer", "properties"}

	const (
		requiredTrue = iota
		requiredFalse
		requiredAbsent
	)

	levels := []struct {
		name     string
		parent   []string
		property string
	}{
		{"response", responseProps, "status"},
		{"datatype", datatypeProps, "name"},
	}
	markers := []string{"?", "??"}
	states := []struct {
		name  string
		state int
	}{
		{"required-true", requiredTrue},
		{"required-false", requiredFalse},
		{"required-absent", requiredAbsent},
	}

	for _, level := range levels {
		for _, marker := range markers {
			for _, st := range states {
				name := level.name + "/" + level.property + marker + "/" + st.name
				t.Run(name, func(t *testing.T) {
					doc := loadFixture(t)

					renamed := level.property + marker
					if err := doc.RenameKey(level.parent, level.property, renamed); err != nil {
						t.Fatalf("rename property: %v", err)
					}

					declPath := append(append([]string{}, level.parent...), renamed)
					var err error
					switch st.state {
					case requiredTrue:
						err = doc.SetBool(declPath, "required", true)
					case requiredFalse:
						err = doc.SetBool(declPath, "required", false)
					case requiredAbsent:
						err = doc.RemoveKey(declPath, "required")
					}
					if err != nil {
						t.Fatalf("mutate required facet: %v", err)
					}

					report := DefaultValidator().Validate(doc)
					wantViolation := st.state == requiredTrue
					if !wantViolation {
						if !report.Conforms {
							t.Fatalf("want full conformance, got violations: %v", report.Violations)
						}
						return
					}
					if report.Conforms {
						t.Fatal("want a violation, document conforms")
					}
					if len(report.Violations) != 1 {
						t.Fatalf("want exactly one violation, got %d: %v",
							len(report.Violations), report.Violations)
					}
					if got := report.Violations[0].RuleID; got != "required-property-marker" {
						t.Fatalf("violation fired by rule %q, want required-property-marker", got)
					}
				})
			}
		}
	}
}

func TestTitleRule(t *testing.T) {
	doc := loadFixture(t)
	if err := doc.RemoveKey(nil, "title"); err != nil {
		t.Fatalf("remove title: %v", err)
	}

	report := DefaultValidator().Validate(doc)
	if report.Conforms {
		t.Fatal("document without a title should not conform")
	}
	if len(report.Violations) != 1 || report.Violations[0].RuleID != "api-title" {
		t.Fatalf("want one api-title violation, got %v", report.Violations)
	}
}
