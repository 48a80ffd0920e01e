package param

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// rule checks one constraint against a present value. It reports the
// diagnostic and true when the constraint is violated.
type rule func(value any) (Diagnostic, bool)

func pass() (Diagnostic, bool) {
	return Diagnostic{}, false
}

func wrongType(expected string, value any) (Diagnostic, bool) {
	return Diagnostic{Kind: KindWrongType, Expected: expected, Actual: Category(value)}, true
}

func categoryRule(expected string) rule {
	return func(value any) (Diagnostic, bool) {
		if Category(value) != expected {
			return wrongType(expected, value)
		}
		return pass()
	}
}

func integerRule(value any) (Diagnostic, bool) {
	if Category(value) != CategoryNumber {
		return wrongType(CategoryNumber, value)
	}
	if !isWhole(value) {
		return Diagnostic{Kind: KindFractional, Actual: value}, true
	}
	return pass()
}

func arrayRule(value any) (Diagnostic, bool) {
	if c := Category(value); c != CategoryArray {
		return Diagnostic{Kind: KindNotArray, Actual: c}, true
	}
	return pass()
}

// objectRule accepts arrays as well as maps and structs.
func objectRule(value any) (Diagnostic, bool) {
	switch c := Category(value); c {
	case CategoryObject, CategoryArray:
		return pass()
	case CategoryNull:
		return Diagnostic{Kind: KindNull}, true
	default:
		return wrongType(CategoryObject, value)
	}
}

func minimumRule(minimum int64) rule {
	return func(value any) (Diagnostic, bool) {
		if compareInt(value, minimum) < 0 {
			return Diagnostic{Kind: KindValueTooSmall, Actual: value, Limit: minimum}, true
		}
		return pass()
	}
}

func maximumRule(maximum int64) rule {
	return func(value any) (Diagnostic, bool) {
		if compareInt(value, maximum) > 0 {
			return Diagnostic{Kind: KindValueTooBig, Actual: value, Limit: maximum}, true
		}
		return pass()
	}
}

// enumRule compares numbers by value regardless of their Go kind, and
// everything else by deep equality.
func enumRule(values []any) rule {
	return func(value any) (Diagnostic, bool) {
		numeric := Category(value) == CategoryNumber
		for _, allowed := range values {
			allowed = unwrap(allowed)
			if numeric && Category(allowed) == CategoryNumber {
				if numbersEqual(value, allowed) {
					return pass()
				}
				continue
			}
			if reflect.DeepEqual(value, allowed) {
				return pass()
			}
		}
		expected := make([]any, len(values))
		copy(expected, values)
		return Diagnostic{Kind: KindNotEnumValue, Expected: expected, Actual: value}, true
	}
}

func propertyRule(name string) rule {
	return func(value any) (Diagnostic, bool) {
		if !hasProperty(value, name) {
			return Diagnostic{Kind: KindMissingProperty, Property: name}, true
		}
		return pass()
	}
}

// isWhole reports whether a number has no fractional part. NaN and the
// infinities are not whole.
func isWhole(value any) bool {
	if n, ok := value.(json.Number); ok {
		if _, err := n.Int64(); err == nil {
			return true
		}
		f, err := n.Float64()
		return err == nil && isWholeFloat(f)
	}
	rv := indirect(reflect.ValueOf(value))
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return isWholeFloat(rv.Float())
	default:
		return true
	}
}

func isWholeFloat(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && math.Trunc(f) == f
}

// compareInt compares a whole number against bound without losing precision
// for 64-bit values. It returns -1, 0 or +1.
func compareInt(value any, bound int64) int {
	if n, ok := value.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return cmpInt64(i, bound)
		}
		f, _ := n.Float64()
		return cmpFloat(f, bound)
	}
	rv := indirect(reflect.ValueOf(value))
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmpInt64(rv.Int(), bound)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if bound < 0 || u > math.MaxInt64 {
			return 1
		}
		return cmpInt64(int64(u), bound)
	case reflect.Float32, reflect.Float64:
		return cmpFloat(rv.Float(), bound)
	default:
		return 0
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// numbersEqual compares exactly when both sides are whole numbers that fit
// int64 or uint64, and as float64 otherwise. NaN equals nothing.
func numbersEqual(a, b any) bool {
	if ai, ok := asInt64(a); ok {
		if bi, ok := asInt64(b); ok {
			return ai == bi
		}
	}
	if au, ok := asUint64(a); ok {
		if bu, ok := asUint64(b); ok {
			return au == bu
		}
	}
	fa, okA := asFloat64(a)
	fb, okB := asFloat64(b)
	return okA && okB && fa == fb
}

func asInt64(value any) (int64, bool) {
	if n, ok := value.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		value = f
	}
	rv := indirect(reflect.ValueOf(value))
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if !isWholeFloat(f) || f >= math.MaxInt64 || f < math.MinInt64 {
			return 0, false
		}
		return int64(f), true
	default:
		return 0, false
	}
}

func asUint64(value any) (uint64, bool) {
	if n, ok := value.(json.Number); ok {
		u, err := strconv.ParseUint(n.String(), 10, 64)
		return u, err == nil
	}
	rv := indirect(reflect.ValueOf(value))
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if !isWholeFloat(f) || f < 0 || f >= math.MaxUint64 {
			return 0, false
		}
		return uint64(f), true
	default:
		return 0, false
	}
}

func asFloat64(value any) (float64, bool) {
	if n, ok := value.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := indirect(reflect.ValueOf(value))
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// cmpFloat expects f to be whole.
func cmpFloat(f float64, bound int64) int {
	if f >= math.MaxInt64 {
		return 1
	}
	if f < math.MinInt64 {
		return -1
	}
	return cmpInt64(int64(f), bound)
}

// hasProperty reports whether value carries a present property called name.
// Maps are looked up by key, structs by their encoding/json field names.
func hasProperty(value any, name string) bool {
	rv := indirect(reflect.ValueOf(value))
	switch rv.Kind() {
	case reflect.Map:
		key, ok := mapKey(rv.Type().Key(), name)
		if !ok {
			return false
		}
		elem := rv.MapIndex(key)
		if !elem.IsValid() {
			return false
		}
		return !IsUndefined(elem.Interface())
	case reflect.Struct:
		return structHasProperty(rv.Type(), name, make(map[reflect.Type]bool))
	default:
		return false
	}
}

// structHasProperty follows encoding/json naming: untagged embedded structs
// promote their fields, tagged ones are a single named property.
func structHasProperty(t reflect.Type, name string, seen map[reflect.Type]bool) bool {
	if seen[t] {
		return false
	}
	seen[t] = true

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		tagName, _, _ := strings.Cut(tag, ",")

		if f.Anonymous && tagName == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if structHasProperty(ft, name, seen) {
					return true
				}
				continue
			}
		}

		if !f.IsExported() {
			continue
		}
		if tagName == "" {
			tagName = f.Name
		}
		if tagName == name {
			return true
		}
	}
	return false
}

func mapKey(keyType reflect.Type, name string) (reflect.Value, bool) {
	key := reflect.ValueOf(name)
	if key.Type().AssignableTo(keyType) {
		return key, true
	}
	if keyType.Kind() == reflect.String {
		return key.Convert(keyType), true
	}
	return reflect.Value{}, false
}
