package param

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"
)

// Kind names the constraint a diagnostic reports. The string value is the
// key used in the record form of the diagnostic.
type Kind string

const (
	KindUndefined       Kind = "isUndefined"
	KindWrongType       Kind = "wrongType"
	KindFractional      Kind = "fractional"
	KindValueTooSmall   Kind = "valueTooSmall"
	KindValueTooBig     Kind = "valueTooBig"
	KindNotArray        Kind = "notArray"
	KindNull            Kind = "isNull"
	KindNotEnumValue    Kind = "notEnumValue"
	KindMissingProperty Kind = "missingProperty"
)

// Diagnostic identifies the violated constraint together with the
// observed and expected values. Which fields are set depends on Kind:
//
//   - KindWrongType: Expected and Actual hold categories
//   - KindNotArray: Actual holds the observed category
//   - KindFractional: Actual holds the value
//   - KindValueTooSmall, KindValueTooBig: Actual holds the value, Limit the bound
//   - KindNotEnumValue: Expected holds the allowed values ([]any), Actual the value
//   - KindMissingProperty: Property holds the property name
type Diagnostic struct {
	Kind     Kind
	Expected any
	Actual   any
	Limit    int64
	Property string
}

// Map renders the diagnostic as a plain record with exactly one
// diagnostic key, e.g. {"valueTooBig": 11, "maximum": 10}.
func (d Diagnostic) Map() map[string]any {
	switch d.Kind {
	case KindUndefined, KindNull:
		return map[string]any{string(d.Kind): true}
	case KindWrongType:
		return map[string]any{string(d.Kind): map[string]any{
			"expected": d.Expected,
			"actual":   d.Actual,
		}}
	case KindFractional:
		return map[string]any{string(d.Kind): encodable(d.Actual)}
	case KindNotArray:
		return map[string]any{string(d.Kind): d.Actual}
	case KindValueTooSmall:
		return map[string]any{string(d.Kind): encodable(d.Actual), "minimum": d.Limit}
	case KindValueTooBig:
		return map[string]any{string(d.Kind): encodable(d.Actual), "maximum": d.Limit}
	case KindNotEnumValue:
		allowed, _ := d.Expected.([]any)
		expected := make([]any, len(allowed))
		for i, v := range allowed {
			expected[i] = encodable(v)
		}
		return map[string]any{string(d.Kind): map[string]any{
			"expected": expected,
			"actual":   encodable(d.Actual),
		}}
	case KindMissingProperty:
		return map[string]any{string(d.Kind): d.Property}
	default:
		return map[string]any{string(d.Kind): d.Actual}
	}
}

// encodable replaces NaN and the infinities, which JSON cannot carry, with
// their string form ("NaN", "+Inf", "-Inf").
func encodable(v any) any {
	switch f := v.(type) {
	case float64:
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
	case float32:
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return strconv.FormatFloat(float64(f), 'g', -1, 32)
		}
	}
	return v
}

// String returns a short human-readable message.
func (d Diagnostic) String() string {
	switch d.Kind {
	case KindUndefined:
		return "value is undefined"
	case KindNull:
		return "value is null"
	case KindWrongType:
		return fmt.Sprintf("expected %v, got %v", d.Expected, d.Actual)
	case KindFractional:
		return fmt.Sprintf("expected integer, got fractional number %v", d.Actual)
	case KindValueTooSmall:
		return fmt.Sprintf("value %v is less than minimum %d", d.Actual, d.Limit)
	case KindValueTooBig:
		return fmt.Sprintf("value %v is greater than maximum %d", d.Actual, d.Limit)
	case KindNotArray:
		return fmt.Sprintf("expected array, got %v", d.Actual)
	case KindNotEnumValue:
		return fmt.Sprintf("value %v is not one of the allowed values: %v", d.Actual, d.Expected)
	case KindMissingProperty:
		return fmt.Sprintf("required property %s is missing", d.Property)
	default:
		return string(d.Kind)
	}
}

// LogValue implements slog.LogValuer.
func (d Diagnostic) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("kind", string(d.Kind))}
	switch d.Kind {
	case KindMissingProperty:
		attrs = append(attrs, slog.String("property", d.Property))
	case KindValueTooSmall, KindValueTooBig:
		attrs = append(attrs, slog.Any("actual", d.Actual), slog.Int64("limit", d.Limit))
	case KindUndefined, KindNull:
	default:
		attrs = append(attrs, slog.Any("expected", d.Expected), slog.Any("actual", d.Actual))
	}
	attrs = append(attrs, slog.String("message", d.String()))
	return slog.GroupValue(attrs...)
}

// Result is the outcome of a test: either ok or exactly one Diagnostic.
// The zero Result is ok.
type Result struct {
	failed bool
	diag   Diagnostic
}

// Accept returns the ok result.
func Accept() Result {
	return Result{}
}

// Reject returns a failing result carrying d.
func Reject(d Diagnostic) Result {
	return Result{failed: true, diag: d}
}

// OK reports whether the value was accepted.
func (r Result) OK() bool {
	return !r.failed
}

// Diagnostic returns the failure diagnostic, if any.
func (r Result) Diagnostic() (Diagnostic, bool) {
	return r.diag, r.failed
}

// Map renders the result as {"ok": true} or the diagnostic record.
func (r Result) Map() map[string]any {
	if !r.failed {
		return map[string]any{"ok": true}
	}
	return r.diag.Map()
}

// MarshalJSON encodes the record form returned by Map.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}

// String returns "ok" or the diagnostic message.
func (r Result) String() string {
	if !r.failed {
		return "ok"
	}
	return r.diag.String()
}

// LogValue implements slog.LogValuer.
func (r Result) LogValue() slog.Value {
	if !r.failed {
		return slog.GroupValue(slog.Bool("ok", true))
	}
	return slog.GroupValue(slog.Bool("ok", false), slog.Any("diagnostic", r.diag))
}
