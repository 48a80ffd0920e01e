package param

import (
	"encoding/json"
	"slices"

	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// Type is the declared type facet of a parameter.
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
	TypeBoolean Type = "boolean"
	TypeEnum    Type = "enum"
)

// Description is the serializable record of facets applied to a parameter.
// Unset facets are omitted when encoded.
type Description struct {
	Optional   bool     `json:"optional,omitempty" yaml:"optional,omitempty"`
	Type       Type     `json:"type,omitempty" yaml:"type,omitempty"`
	Minimum    *int64   `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum    *int64   `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	Values     []any    `json:"values,omitempty" yaml:"values,omitempty"`
	Properties []string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Clone returns a copy with its own bounds and slices. Enum values are
// copied shallowly, so a slice or map used as an enum value stays shared.
func (d Description) Clone() Description {
	c := d
	if d.Minimum != nil {
		v := *d.Minimum
		c.Minimum = &v
	}
	if d.Maximum != nil {
		v := *d.Maximum
		c.Maximum = &v
	}
	c.Values = slices.Clone(d.Values)
	c.Properties = slices.Clone(d.Properties)
	return c
}

// Map returns the description as a plain record holding only the facets
// that have been applied.
func (d Description) Map() map[string]any {
	m := make(map[string]any)
	if d.Optional {
		m["optional"] = true
	}
	if d.Type != "" {
		m["type"] = string(d.Type)
	}
	if d.Minimum != nil {
		m["minimum"] = *d.Minimum
	}
	if d.Maximum != nil {
		m["maximum"] = *d.Maximum
	}
	if d.Values != nil {
		m["values"] = slices.Clone(d.Values)
	}
	if d.Properties != nil {
		props := make([]any, len(d.Properties))
		for i, p := range d.Properties {
			props[i] = p
		}
		m["properties"] = props
	}
	return m
}

// encodedDescription mirrors Description so that an empty enum value list
// is written as [] and only a nil one is omitted.
type encodedDescription struct {
	Optional   bool     `json:"optional,omitempty" yaml:"optional,omitempty"`
	Type       Type     `json:"type,omitempty" yaml:"type,omitempty"`
	Minimum    *int64   `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum    *int64   `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	Values     *[]any   `json:"values,omitempty" yaml:"values,omitempty"`
	Properties []string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

func (d Description) encoded() encodedDescription {
	e := encodedDescription{
		Optional:   d.Optional,
		Type:       d.Type,
		Minimum:    d.Minimum,
		Maximum:    d.Maximum,
		Properties: d.Properties,
	}
	if d.Values != nil {
		e.Values = &d.Values
	}
	return e
}

// MarshalJSON encodes the facets that have been applied, matching Map.
func (d Description) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.encoded())
}

// MarshalYAML implements yaml.Marshaler, matching Map.
func (d Description) MarshalYAML() (any, error) {
	return d.encoded(), nil
}

// YAML encodes the description as a YAML document.
func (d Description) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}

// Struct converts the description to a protobuf Struct. It fails when an
// enum value has no protobuf representation.
func (d Description) Struct() (*structpb.Struct, error) {
	return structpb.NewStruct(d.Map())
}
