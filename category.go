package param

import (
	"encoding/json"
	"reflect"

	"google.golang.org/protobuf/types/known/structpb"
)

// Runtime categories reported in diagnostics.
const (
	CategoryUndefined = "undefined"
	CategoryNull      = "null"
	CategoryString    = "string"
	CategoryNumber    = "number"
	CategoryBoolean   = "boolean"
	CategoryArray     = "array"
	CategoryObject    = "object"
	CategoryFunction  = "function"
)

type undefined struct{}

func (undefined) String() string { return CategoryUndefined }

// Undefined marks an absent value. Go nil is a present null value; pass
// Undefined (or look the value up with TestIn) to test absence.
var Undefined any = undefined{}

// IsUndefined reports whether v is the absent marker.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// unwrap strips protobuf well-known wrappers so proto-carried values are
// categorized like their plain Go counterparts.
func unwrap(v any) any {
	switch pv := v.(type) {
	case *structpb.Value:
		if pv == nil {
			return nil
		}
		return pv.AsInterface()
	case *structpb.Struct:
		if pv == nil {
			return nil
		}
		return pv.AsMap()
	case *structpb.ListValue:
		if pv == nil {
			return nil
		}
		return pv.AsSlice()
	case structpb.NullValue:
		return nil
	}
	return v
}

// Category returns the runtime category of v: undefined, null, string,
// number, boolean, array, object or function. Anything else is reported by
// its reflect kind name.
func Category(v any) string {
	v = unwrap(v)
	if IsUndefined(v) {
		return CategoryUndefined
	}
	if _, ok := v.(json.Number); ok {
		return CategoryNumber
	}
	return kindCategory(indirect(reflect.ValueOf(v)))
}

// indirect follows pointers and interfaces. The zero Value stands for null.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func kindCategory(rv reflect.Value) string {
	if !rv.IsValid() {
		return CategoryNull
	}
	switch rv.Kind() {
	case reflect.String:
		return CategoryString
	case reflect.Bool:
		return CategoryBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return CategoryNumber
	case reflect.Slice, reflect.Array:
		return CategoryArray
	case reflect.Map, reflect.Struct:
		return CategoryObject
	case reflect.Func:
		if rv.IsNil() {
			return CategoryNull
		}
		return CategoryFunction
	default:
		return rv.Kind().String()
	}
}
