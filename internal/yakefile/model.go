// Package yakefile defines the Yakefile data model and its YAML ingestion:
// one document per configuration source, holding a tree of group and
// callable targets.
package yakefile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TargetType distinguishes namespace groups from runnable targets.
type TargetType uint8

const (
	typeInvalid TargetType = iota

	// Group is a pure namespace node; its name builds the qualified names
	// of the targets beneath it.
	Group

	// Callable is a runnable node carrying shell commands.
	Callable
)

// String returns the YAML literal for the type.
func (t TargetType) String() string {
	switch t {
	case Group:
		return "group"
	case Callable:
		return "callable"
	default:
		return "invalid"
	}
}

// UnmarshalYAML accepts exactly the literals "group" and "callable".
func (t *TargetType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "group":
		*t = Group
	case "callable":
		*t = Callable
	default:
		return fmt.Errorf("unknown target type %q", s)
	}
	return nil
}

// MarshalYAML emits the YAML literal for the type.
func (t TargetType) MarshalYAML() (any, error) {
	if t != Group && t != Callable {
		return nil, fmt.Errorf("cannot marshal invalid target type %d", t)
	}
	return t.String(), nil
}

// Meta carries document-level metadata. Doc and Version are required;
// IncludeRecursively opts the document into subordinate Yakefile discovery.
type Meta struct {
	Doc                string `yaml:"doc"`
	Version            string `yaml:"version"`
	IncludeRecursively bool   `yaml:"include_recursively"`
}

// TargetMeta carries per-target metadata. Depends lists qualified names of
// targets to run before this one.
type TargetMeta struct {
	Doc     string     `yaml:"doc"`
	Type    TargetType `yaml:"type"`
	Depends []string   `yaml:"depends"`
}

// Target is one node of the target tree. The type does not mechanically
// forbid the other shape: a Group may carry Exec and a Callable may carry
// children, but only Callable nodes become addressable below the top level
// and Exec only runs for whatever target is selected or depended upon.
type Target struct {
	Meta    TargetMeta         `yaml:"meta"`
	Targets map[string]*Target `yaml:"targets"`
	Env     map[string]string  `yaml:"env"`
	Exec    []string           `yaml:"exec"`
}

// Yakefile is one parsed configuration document, root or subordinate. It is
// mutated only by resolver.Merge during composition and read-only afterwards.
type Yakefile struct {
	Meta    Meta               `yaml:"meta"`
	Env     map[string]string  `yaml:"env"`
	Targets map[string]*Target `yaml:"targets"`
}
