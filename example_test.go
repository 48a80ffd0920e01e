package param_test

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zero-day-ai/param"
)

// Example demonstrates building a parameter and testing values against it.
func Example() {
	port := param.MustNew("port").Integer().Min(1).Max(65535)

	fmt.Println(port.Test(8080))
	fmt.Println(port.Test(70000))
	fmt.Println(port.Test(80.5))
	fmt.Println(port.Test(param.Undefined))

	// Output:
	// ok
	// value 70000 is greater than maximum 65535
	// expected integer, got fractional number 80.5
	// value is undefined
}

// ExampleParameter_Optional shows that absence is accepted wherever Optional
// appears in the chain.
func ExampleParameter_Optional() {
	before := param.MustNew("tag").Optional().String()
	after := param.MustNew("tag").String().Optional()

	fmt.Println(before.Test(param.Undefined).OK(), after.Test(param.Undefined).OK())
	fmt.Println(before.Test(42))

	// Output:
	// true true
	// expected string, got number
}

// ExampleObjectParameter_Property demonstrates required properties.
func ExampleObjectParameter_Property() {
	user := param.MustNew("user").Object().Property("id").Property("email")

	data, _ := json.Marshal(user.Test(map[string]any{"email": "a@example.com"}))
	fmt.Println(string(data))

	// Output: {"missingProperty":"id"}
}

// ExampleParameter_OneOf demonstrates enumerated values.
func ExampleParameter_OneOf() {
	mode := param.MustNew("mode").OneOf("A", "B")

	data, _ := json.Marshal(mode.Test("C"))
	fmt.Println(string(data))

	// Output: {"notEnumValue":{"actual":"C","expected":["A","B"]}}
}

// ExampleDescription demonstrates serializing a description.
func ExampleDescription() {
	p := param.MustNew("count").Optional().Integer().Min(0)

	data, _ := json.Marshal(p.Description())
	fmt.Println(string(data))

	yml, _ := p.Description().YAML()
	fmt.Print(string(yml))

	// Output:
	// {"optional":true,"type":"integer","minimum":0}
	// optional: true
	// type: integer
	// minimum: 0
}

// ExampleParameter_Validate demonstrates the error form of a test.
func ExampleParameter_Validate() {
	err := param.MustNew("enabled").Boolean().Validate("yes")

	var verr *param.ValidationError
	if errors.As(err, &verr) {
		fmt.Println(verr.Parameter, verr.Diagnostic.Kind)
	}
	fmt.Println(errors.Is(err, param.ErrValidation))

	// Output:
	// enabled wrongType
	// true
}

// ExampleNew demonstrates the construction error.
func ExampleNew() {
	_, err := param.New("")
	fmt.Println(err)
	fmt.Println(errors.Is(err, param.ErrInvalidArgument))

	// Output:
	// param: New (invalid_argument): invalid argument: no parameter name given
	// true
}
