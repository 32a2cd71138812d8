package lint

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/muleops/exchange-cli/util/common/errors"
)

// ramlHeader is the version comment every RAML document opens with.
const ramlHeader = "#%RAML"

// Document is a parsed RAML specification held as a YAML node tree, so
// rules and fixture mutations can address individual keys.
type Document struct {
	Name string
	root *yaml.Node
}

// Parse parses a RAML document from data. The name is only used in
// messages.
func Parse(name string, data []byte) (*Document, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte(ramlHeader)) {
		return nil, errors.NewValidationError(name, "missing #%RAML version header")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errors.NewValidationError(name, "empty document")
	}
	return &Document{Name: name, root: &root}, nil
}

// LoadFile reads and parses the RAML document at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewFileError(path, "read", err)
	}
	return Parse(path, data)
}

// Root returns the document's top-level mapping node.
func (d *Document) Root() *yaml.Node {
	return d.root.Content[0]
}

// Encode renders the document back to YAML, keeping the RAML header.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(ramlHeader + " 1.0\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.Root()); err != nil {
		return nil, fmt.Errorf("encode %s: %w", d.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Lookup walks mapping keys from the root and returns the value node at
// the end of the path, or nil when any segment is missing.
func (d *Document) Lookup(path ...string) *yaml.Node {
	node := d.Root()
	for _, key := range path {
		node = mapValue(node, key)
		if node == nil {
			return nil
		}
	}
	return node
}

// RenameKey renames the mapping key oldKey in the mapping at path.
func (d *Document) RenameKey(path []string, oldKey, newKey string) error {
	node := d.Lookup(path...)
	if node == nil || node.Kind != yaml.MappingNode {
		return errors.NewValidationError(d.Name, "no mapping at "+strings.Join(path, "/"))
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == oldKey {
			node.Content[i].Value = newKey
			return nil
		}
	}
	return errors.NewValidationError(d.Name,
		fmt.Sprintf("no key %q under %s", oldKey, strings.Join(path, "/")))
}

// SetBool sets key to a boolean scalar in the mapping at path, appending
// the entry when the key is missing.
func (d *Document) SetBool(path []string, key string, value bool) error {
	node := d.Lookup(path...)
	if node == nil || node.Kind != yaml.MappingNode {
		return errors.NewValidationError(d.Name, "no mapping at "+strings.Join(path, "/"))
	}
	scalar := &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!bool",
		Value: fmt.Sprintf("%t", value),
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			node.Content[i+1] = scalar
			return nil
		}
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		scalar,
	)
	return nil
}

// RemoveKey deletes key from the mapping at path. Removing a missing key
// is a no-op.
func (d *Document) RemoveKey(path []string, key string) error {
	node := d.Lookup(path...)
	if node == nil || node.Kind != yaml.MappingNode {
		return errors.NewValidationError(d.Name, "no mapping at "+strings.Join(path, "/"))
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			node.Content = append(node.Content[:i], node.Content[i+2:]...)
			return nil
		}
	}
	return nil
}

// mapValue returns the value node for key in a mapping node.
func mapValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
