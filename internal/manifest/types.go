package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"gqlmeta/internal/descriptor"
)

// File is a parsed manifest.
type File struct {
	Version string     `yaml:"version"`
	Package string     `yaml:"package"`
	Types   []TypeSpec `yaml:"types"`

	// Source is the path the manifest was loaded from.
	Source string `yaml:"-"`
}

// TypeSpec declares one named type.
type TypeSpec struct {
	Name    string       `yaml:"name"`
	Role    string       `yaml:"role,omitempty"`
	Doc     string       `yaml:"doc,omitempty"`
	Fields  []FieldSpec  `yaml:"fields,omitempty"`
	Methods []MethodSpec `yaml:"methods,omitempty"`
}

// FieldSpec declares a struct field.
type FieldSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Tag  string `yaml:"tag,omitempty"`
	Doc  string `yaml:"doc,omitempty"`
}

// MethodSpec declares a method.
type MethodSpec struct {
	Name    string      `yaml:"name"`
	Doc     string      `yaml:"doc,omitempty"`
	Params  []ParamSpec `yaml:"params,omitempty"`
	Returns []string    `yaml:"returns,omitempty"`
}

// ParamSpec declares a method parameter. Default is set only when the
// default key is present; `default: null` sets a null default.
type ParamSpec struct {
	Name    string             `yaml:"name"`
	Type    string             `yaml:"type,omitempty"`
	Default descriptor.Default `yaml:"-"`
}

// UnmarshalYAML decodes a parameter. The mapping node is inspected directly
// because a null value never reaches a custom unmarshaler.
func (p *ParamSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: parameter must be a mapping", node.Line)
	}

	type plain ParamSpec

	var raw plain
	if err := node.Decode(&raw); err != nil {
		return err
	}

	*p = ParamSpec(raw)

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != "default" {
			continue
		}

		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("line %d: default: %w", node.Content[i+1].Line, err)
		}

		p.Default = descriptor.Set(value)
	}

	return nil
}
