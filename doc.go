// Package param describes the shape of a single named value and validates
// candidate values against it.
//
// A parameter starts from a name and is narrowed by chaining modifiers.
// Every modifier returns a new value, so intermediate parameters can be kept
// and reused safely, including from multiple goroutines.
//
// # Basic Usage
//
//	port := param.MustNew("port").Integer().Min(1).Max(65535)
//
//	res := port.Test(8080)        // ok
//	res = port.Test(70000)        // {"valueTooBig": 70000, "maximum": 65535}
//	res = port.Test(param.Undefined) // {"isUndefined": true}
//
// # Type Facets
//
// The untyped Parameter offers String, Boolean, Integer, Array, Object and
// OneOf. Each returns a facet-specific type, so Min and Max exist only on
// IntegerParameter and Property only on ObjectParameter, and a parameter
// cannot be typed twice.
//
//	mode := param.MustNew("mode").OneOf("fast", "safe")
//	user := param.MustNew("user").Object().Property("id").Property("email")
//	tags := param.MustNew("tags").Optional().Array()
//
// # Absence
//
// Go nil is treated as a present null value. Absence is spelled Undefined,
// or obtained by looking the parameter up in an argument map with TestIn.
// Optional accepts absent values no matter where it appears in the chain.
//
// # Results
//
// Test returns a Result that is either ok or carries exactly one
// Diagnostic naming the first violated constraint in chain order. Result.Map
// and Result.MarshalJSON render the record form, for example
//
//	{"wrongType": {"expected": "string", "actual": "number"}}
//
// Validate wraps the same outcome in an error for callers that prefer the
// errors package.
//
// # Descriptions
//
// Description returns the declared facets as a plain record that encodes to
// JSON, YAML and protobuf Struct form:
//
//	d := port.Description()
//	d.Map() // map[maximum:65535 minimum:1 type:integer]
//
// # Observability
//
// Recorder runs tests with slog logging and OpenTelemetry tracing and
// metrics attached.
package param
