package param

import (
	"fmt"
	"slices"
)

// Validator is implemented by every parameter builder.
type Validator interface {
	// Name returns the parameter name given to New.
	Name() string

	// Description returns a copy of the facets applied so far.
	Description() Description

	// Test checks value and reports the first violated constraint.
	Test(value any) Result

	// Validate is Test expressed as an error.
	Validate(value any) error
}

var (
	_ Validator = Parameter{}
	_ Validator = StringParameter{}
	_ Validator = BooleanParameter{}
	_ Validator = IntegerParameter{}
	_ Validator = ArrayParameter{}
	_ Validator = ObjectParameter{}
	_ Validator = EnumParameter{}
)

// builder holds the state shared by all parameter types. A builder is never
// modified after it has been returned; with always allocates.
type builder struct {
	name  string
	desc  Description
	rules []rule
}

func (b builder) with(facet func(*Description), r rule) builder {
	next := builder{name: b.name, desc: b.desc.Clone(), rules: b.rules}
	if facet != nil {
		facet(&next.desc)
	}
	if r != nil {
		next.rules = append(slices.Clip(b.rules), r)
	}
	return next
}

func (b builder) optional() builder {
	return b.with(func(d *Description) { d.Optional = true }, nil)
}

func (b builder) Name() string {
	return b.name
}

func (b builder) Description() Description {
	return b.desc.Clone()
}

// Test checks value against the parameter. An absent value is accepted
// when the parameter is optional, wherever Optional appeared in the chain,
// and rejected with KindUndefined otherwise. Present values run through
// the rules in the order their modifiers were applied; the first failure
// is returned.
func (b builder) Test(value any) Result {
	value = unwrap(value)
	if IsUndefined(value) {
		if b.desc.Optional {
			return Accept()
		}
		return Reject(Diagnostic{Kind: KindUndefined})
	}
	for _, r := range b.rules {
		if d, failed := r(value); failed {
			return Reject(d)
		}
	}
	return Accept()
}

// TestIn tests the value stored under the parameter's name in args.
// A missing key is tested as Undefined.
func (b builder) TestIn(args map[string]any) Result {
	value, ok := args[b.name]
	if !ok {
		value = Undefined
	}
	return b.Test(value)
}

// Validate returns nil when value passes Test. Otherwise it returns an
// *Error of KindValidation wrapping a *ValidationError.
func (b builder) Validate(value any) error {
	d, failed := b.Test(value).Diagnostic()
	if !failed {
		return nil
	}
	return NewValidationError("Parameter.Validate", &ValidationError{Parameter: b.name, Diagnostic: d})
}

// Parameter is an untyped parameter. It accepts any present value until a
// type modifier narrows it.
type Parameter struct {
	builder
}

// New starts a parameter called name. It fails with ErrInvalidArgument when
// name is empty.
func New(name string) (Parameter, error) {
	if name == "" {
		return Parameter{}, NewInvalidArgumentError("New", fmt.Errorf("%w: no parameter name given", ErrInvalidArgument))
	}
	return Parameter{builder{name: name}}, nil
}

// MustNew is like New but panics on error.
func MustNew(name string) Parameter {
	p, err := New(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Optional returns a copy that accepts absent values.
func (p Parameter) Optional() Parameter {
	return Parameter{p.optional()}
}

// String narrows the parameter to string values.
func (p Parameter) String() StringParameter {
	return StringParameter{p.with(func(d *Description) { d.Type = TypeString }, categoryRule(CategoryString))}
}

// Boolean narrows the parameter to boolean values.
func (p Parameter) Boolean() BooleanParameter {
	return BooleanParameter{p.with(func(d *Description) { d.Type = TypeBoolean }, categoryRule(CategoryBoolean))}
}

// Integer narrows the parameter to whole numbers.
func (p Parameter) Integer() IntegerParameter {
	return IntegerParameter{p.with(func(d *Description) { d.Type = TypeInteger }, integerRule)}
}

// Array narrows the parameter to slices and arrays.
func (p Parameter) Array() ArrayParameter {
	return ArrayParameter{p.with(func(d *Description) { d.Type = TypeArray }, arrayRule)}
}

// Object narrows the parameter to maps and structs. Arrays are accepted as
// objects too.
func (p Parameter) Object() ObjectParameter {
	return ObjectParameter{p.with(func(d *Description) { d.Type = TypeObject }, objectRule)}
}

// OneOf narrows the parameter to the given values. Numbers match by value
// whatever their Go kind; other values are compared by deep equality.
// Called with no values it rejects every present value.
func (p Parameter) OneOf(values ...any) EnumParameter {
	allowed := make([]any, len(values))
	copy(allowed, values)
	return EnumParameter{p.with(func(d *Description) {
		d.Type = TypeEnum
		d.Values = slices.Clone(allowed)
	}, enumRule(allowed))}
}

// StringParameter accepts string values.
type StringParameter struct {
	builder
}

// Optional returns a copy that accepts absent values.
func (p StringParameter) Optional() StringParameter {
	return StringParameter{p.optional()}
}

// BooleanParameter accepts boolean values.
type BooleanParameter struct {
	builder
}

// Optional returns a copy that accepts absent values.
func (p BooleanParameter) Optional() BooleanParameter {
	return BooleanParameter{p.optional()}
}

// IntegerParameter accepts whole numbers of any Go numeric kind.
type IntegerParameter struct {
	builder
}

// Optional returns a copy that accepts absent values.
func (p IntegerParameter) Optional() IntegerParameter {
	return IntegerParameter{p.optional()}
}

// Min requires values to be at least minimum.
func (p IntegerParameter) Min(minimum int64) IntegerParameter {
	return IntegerParameter{p.with(func(d *Description) { d.Minimum = &minimum }, minimumRule(minimum))}
}

// Max requires values to be at most maximum.
func (p IntegerParameter) Max(maximum int64) IntegerParameter {
	return IntegerParameter{p.with(func(d *Description) { d.Maximum = &maximum }, maximumRule(maximum))}
}

// ArrayParameter accepts slices and arrays.
type ArrayParameter struct {
	builder
}

// Optional returns a copy that accepts absent values.
func (p ArrayParameter) Optional() ArrayParameter {
	return ArrayParameter{p.optional()}
}

// ObjectParameter accepts maps, structs and arrays.
type ObjectParameter struct {
	builder
}

// Optional returns a copy that accepts absent values.
func (p ObjectParameter) Optional() ObjectParameter {
	return ObjectParameter{p.optional()}
}

// Property requires the named property to be present. It may be repeated;
// missing properties are reported in the order they were declared.
func (p ObjectParameter) Property(name string) ObjectParameter {
	return ObjectParameter{p.with(func(d *Description) {
		d.Properties = append(d.Properties, name)
	}, propertyRule(name))}
}

// EnumParameter accepts a fixed set of values.
type EnumParameter struct {
	builder
}

// Optional returns a copy that accepts absent values.
func (p EnumParameter) Optional() EnumParameter {
	return EnumParameter{p.optional()}
}
