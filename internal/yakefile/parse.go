package yakefile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseError reports a malformed or schema-invalid Yakefile.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse yakefile: %v", e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes a Yakefile document from raw YAML and validates its schema.
func Parse(data []byte) (*Yakefile, error) {
	var yf Yakefile
	if err := yaml.Unmarshal(data, &yf); err != nil {
		return nil, &ParseError{Err: err}
	}
	if err := yf.validate(); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &yf, nil
}

// Load reads and parses the Yakefile at path.
func Load(path string) (*Yakefile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yakefile: %w", err)
	}
	yf, err := Parse(data)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return yf, nil
}

func (y *Yakefile) validate() error {
	if y.Meta.Doc == "" {
		return errors.New("meta.doc is required")
	}
	if y.Meta.Version == "" {
		return errors.New("meta.version is required")
	}
	return validateTargets("", y.Targets)
}

func validateTargets(prefix string, targets map[string]*Target) error {
	for name, target := range targets {
		qname := name
		if prefix != "" {
			qname = prefix + "." + name
		}
		if target == nil {
			return fmt.Errorf("target %s: empty definition", qname)
		}
		if target.Meta.Doc == "" {
			return fmt.Errorf("target %s: meta.doc is required", qname)
		}
		if target.Meta.Type == typeInvalid {
			return fmt.Errorf("target %s: meta.type must be %q or %q", qname, Group, Callable)
		}
		if err := validateTargets(qname, target.Targets); err != nil {
			return err
		}
	}
	return nil
}
