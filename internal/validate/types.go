package validate

import "reflect"

// TypeTag identifies the broad shape of a mixin argument. Tags deliberately
// mirror the vocabulary used in diagnostic messages rather than Go's own
// type names.
type TypeTag string

const (
	TypeString TypeTag = "string"
	TypeObject TypeTag = "object"
	TypeArray  TypeTag = "array"
	TypeFunc   TypeTag = "function"
	TypeNumber TypeTag = "number"
	TypeBool   TypeTag = "boolean"
)

// Rule declares the type contract for one mixin argument. A non-empty
// Required message makes the argument mandatory; optional arguments are type
// checked only when present.
type Rule struct {
	Value    any
	Type     TypeTag
	Required string
}

// Custom declares an invariant that type tags cannot express, such as a
// minimum collection length or a cross-field constraint. Enforce holds the
// already-evaluated outcome.
type Custom struct {
	Enforce bool
	Message string
}

// Descriptor declares a mixin's top-level calling convention: how many
// arguments it takes and the type contract of its configuration argument.
type Descriptor struct {
	Module  string
	Exactly int
	Config  Rule
}

// TagOf reports the TypeTag for a runtime value, or the empty tag when the
// value fits no recognized shape.
func TagOf(value any) TypeTag {
	if value == nil {
		return ""
	}

	t := reflect.TypeOf(value)
	switch t.Kind() {
	case reflect.String:
		return TypeString
	case reflect.Slice, reflect.Array:
		return TypeArray
	case reflect.Map, reflect.Struct:
		return TypeObject
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct {
			return TypeObject
		}
		return ""
	case reflect.Func:
		return TypeFunc
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.Bool:
		return TypeBool
	default:
		return ""
	}
}

// present reports whether a value counts as supplied. Nil interfaces, nil
// slices/maps/pointers, and empty strings are all treated as absent so that
// optional fields of a configuration record can stay at their zero value.
func present(value any) bool {
	if value == nil {
		return false
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return v.Len() > 0
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Func, reflect.Interface:
		return !v.IsNil()
	default:
		return true
	}
}
