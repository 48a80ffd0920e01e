package param

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDescriptionJSON(t *testing.T) {
	tests := []struct {
		name string
		p    Validator
		want string
	}{
		{name: "empty", p: MustNew("n"), want: `{}`},
		{name: "optional string", p: MustNew("n").Optional().String(), want: `{"optional":true,"type":"string"}`},
		{name: "bounded integer", p: MustNew("n").Integer().Min(0).Max(10), want: `{"type":"integer","minimum":0,"maximum":10}`},
		{name: "enum", p: MustNew("n").OneOf("A", 1, true), want: `{"type":"enum","values":["A",1,true]}`},
		{name: "object", p: MustNew("n").Object().Property("a").Property("b"), want: `{"type":"object","properties":["a","b"]}`},
		{name: "enum without values", p: MustNew("n").OneOf(), want: `{"type":"enum","values":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.p.Description())
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestDescriptionYAML(t *testing.T) {
	d := MustNew("n").Optional().Integer().Min(1).Max(5).Description()

	data, err := d.YAML()
	require.NoError(t, err)
	assert.Equal(t, "optional: true\ntype: integer\nminimum: 1\nmaximum: 5\n", string(data))

	var decoded Description
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, d, decoded)
}

func TestDescriptionYAMLEmpty(t *testing.T) {
	data, err := MustNew("n").Description().YAML()
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestDescriptionEmptyEnumMatchesMap(t *testing.T) {
	d := MustNew("n").OneOf().Description()
	require.Equal(t, []any{}, d.Map()["values"])

	data, err := d.YAML()
	require.NoError(t, err)
	assert.Equal(t, "type: enum\nvalues: []\n", string(data))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, d.Map(), decoded)

	js, err := json.Marshal(d)
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(js, &fromJSON))
	assert.Equal(t, d.Map(), fromJSON)
}

func TestDescriptionStruct(t *testing.T) {
	d := MustNew("n").Object().Property("id").Property("email").Description()

	s, err := d.Struct()
	require.NoError(t, err)

	assert.Equal(t, "object", s.GetFields()["type"].GetStringValue())
	props := s.GetFields()["properties"].GetListValue().AsSlice()
	assert.Equal(t, []any{"id", "email"}, props)
}

func TestDescriptionStructBounds(t *testing.T) {
	s, err := MustNew("n").Integer().Min(-3).Description().Struct()
	require.NoError(t, err)

	assert.Equal(t, float64(-3), s.GetFields()["minimum"].GetNumberValue())
	assert.Nil(t, s.GetFields()["maximum"])
}

func TestDescriptionStructRejectsUnsupportedValues(t *testing.T) {
	_, err := MustNew("n").OneOf(struct{}{}).Description().Struct()
	assert.Error(t, err)
}

func TestDescriptionClone(t *testing.T) {
	lo, hi := int64(1), int64(2)
	d := Description{
		Type:       TypeInteger,
		Minimum:    &lo,
		Maximum:    &hi,
		Values:     []any{"a"},
		Properties: []string{"p"},
	}

	c := d.Clone()
	require.Equal(t, d, c)

	*c.Minimum = 10
	*c.Maximum = 20
	c.Values[0] = "z"
	c.Properties[0] = "z"

	assert.Equal(t, int64(1), *d.Minimum)
	assert.Equal(t, int64(2), *d.Maximum)
	assert.Equal(t, []any{"a"}, d.Values)
	assert.Equal(t, []string{"p"}, d.Properties)
}
