package lint

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Violation is one rule hit against a document.
type Violation struct {
	RuleID  string `json:"rule"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Rule checks one governance concern across a whole document.
type Rule interface {
	ID() string
	Description() string
	Check(doc *Document) []Violation
}

// requiredMarkerRule flags property declarations whose key carries the
// optional marker (a trailing "?") while the required facet says true.
// The marker alone makes a property optional; combining it with
// required: true is contradictory. With required: false or no required
// facet the marker is consistent and the declaration conforms.
type requiredMarkerRule struct{}

func (requiredMarkerRule) ID() string { return "required-property-marker" }

func (requiredMarkerRule) Description() string {
	return "a property declaring required: true must not carry the optional name marker"
}

func (r requiredMarkerRule) Check(doc *Document) []Violation {
	var out []Violation
	walkProperties(doc.Root(), nil, func(path []string, key string, decl *yaml.Node) {
		if !strings.HasSuffix(key, "?") {
			return
		}
		req := mapValue(decl, "required")
		if req != nil && req.Value == "true" {
			out = append(out, Violation{
				RuleID: r.ID(),
				Path:   strings.Join(append(path, key), "/"),
				Message: fmt.Sprintf(
					"property %q declares required: true but its name carries the optional marker", key),
			})
		}
	})
	return out
}

// titleRule requires a non-empty API title at the document root.
type titleRule struct{}

func (titleRule) ID() string { return "api-title" }

func (titleRule) Description() string {
	return "the API root must declare a non-empty title"
}

func (r titleRule) Check(doc *Document) []Violation {
	title := mapValue(doc.Root(), "title")
	if title != nil && strings.TrimSpace(title.Value) != "" {
		return nil
	}
	return []Violation{{
		RuleID:  r.ID(),
		Path:    "title",
		Message: "missing or empty API title",
	}}
}

// walkProperties visits every property declaration in the tree: each key
// under a "properties" mapping, at any nesting depth. Declarations are
// visited in document order.
func walkProperties(node *yaml.Node, path []string, visit func(path []string, key string, decl *yaml.Node)) {
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			k, v := node.Content[i], node.Content[i+1]
			childPath := append(path[:len(path):len(path)], k.Value)
			if k.Value == "properties" && v.Kind == yaml.MappingNode {
				for j := 0; j+1 < len(v.Content); j += 2 {
					visit(childPath, v.Content[j].Value, v.Content[j+1])
				}
			}
			walkProperties(v, childPath, visit)
		}
	case yaml.SequenceNode:
		for _, child := range node.Content {
			walkProperties(child, path, visit)
		}
	}
}
