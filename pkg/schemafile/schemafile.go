// Package schemafile loads declarative schema definitions from YAML or
// JSON documents and compiles them into runnable schemas.
//
// A definition names a type per column, optionally with a registered
// predicate:
//
//	name: users
//	strict: true
//	columns:
//	  age:
//	    type: int
//	    predicate: non_negative
//	  name: string
//	  notes: any
//
// A bare string is shorthand for the map form with only a type.
package schemafile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/skooma"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ColumnSpec describes the constraints of a single column.
type ColumnSpec struct {
	// Type is one of int, float, bool, string, datetime, any. The long
	// forms integer, double and boolean are accepted too. Empty is
	// treated as any.
	Type string `json:"type" yaml:"type" mapstructure:"type"`
	// Predicate names a predicate registered with
	// skooma.RegisterPredicate.
	Predicate string `json:"predicate,omitempty" yaml:"predicate,omitempty" mapstructure:"predicate"`
}

// Definition is the serializable form of a schema.
type Definition struct {
	Name    string                `json:"name,omitempty" yaml:"name,omitempty"`
	Strict  *bool                 `json:"strict,omitempty" yaml:"strict,omitempty"`
	Columns map[string]ColumnSpec `json:"columns" yaml:"columns"`
}

// UnmarshalYAML accepts either the bare type-string shorthand or the
// full map form for a column.
func (c *ColumnSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var typ string
		if err := node.Decode(&typ); err != nil {
			return err
		}
		*c = ColumnSpec{Type: typ}
		return nil
	}

	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return decodeSpec(raw, c)
}

// UnmarshalJSON mirrors the YAML shorthand for JSON documents.
func (c *ColumnSpec) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err == nil {
		*c = ColumnSpec{Type: typ}
		return nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return decodeSpec(raw, c)
}

// decodeSpec decodes the map form strictly so typos in keys surface as
// errors instead of silently relaxing a column.
func decodeSpec(raw map[string]any, out *ColumnSpec) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("column spec: %w", err)
	}
	return nil
}

// Parse reads a YAML (or JSON) definition document.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing schema definition: %w", err)
	}
	if def.Columns == nil {
		return nil, fmt.Errorf("%w: definition has no columns", skooma.ErrInvalidSchema)
	}
	return &def, nil
}

// Load reads a definition from a file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}
	return Parse(data)
}

// ParseRule converts a type string into a rule. "any" (or "") yields a
// rule with no kind restriction.
func ParseRule(typeStr string) (*skooma.Rule, error) {
	return ruleFor(typeStr)
}

func ruleFor(typeStr string, preds ...skooma.Predicate) (*skooma.Rule, error) {
	switch typeStr {
	case "int", "integer":
		return skooma.Integer(preds...), nil
	case "float", "double":
		return skooma.Float(preds...), nil
	case "bool", "boolean":
		return skooma.Boolean(preds...), nil
	case "string":
		return skooma.String(preds...), nil
	case "datetime":
		return skooma.DateTime(preds...), nil
	case "any", "":
		return skooma.NewRule(0, preds...), nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %q", skooma.ErrInvalidSchema, typeStr)
	}
}

// Compile turns the definition into a Schema. The definition's strict
// flag, when set, takes effect before any extra options.
func (d *Definition) Compile(opts ...skooma.Option) (*skooma.Schema, error) {
	rules := make(map[string]*skooma.Rule, len(d.Columns))
	for column, spec := range d.Columns {
		var preds []skooma.Predicate
		if spec.Predicate != "" {
			pred, err := skooma.LookupPredicate(spec.Predicate)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", column, err)
			}
			preds = append(preds, pred)
		}

		// A bare presence requirement maps to no rule at all.
		if (spec.Type == "any" || spec.Type == "") && len(preds) == 0 {
			rules[column] = nil
			continue
		}

		rule, err := ruleFor(spec.Type, preds...)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", column, err)
		}
		rules[column] = rule
	}

	if d.Strict != nil {
		opts = append([]skooma.Option{skooma.WithStrict(*d.Strict)}, opts...)
	}
	return skooma.New(rules, opts...)
}
