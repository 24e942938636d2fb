// Package absent implements the nil-ness check shared by the value
// containers in this module.
package absent

import "reflect"

// Is reports whether v is absent, i.e. nil itself, or a nil value of a
// nilable kind (pointer, interface, map, slice, func, chan, or unsafe
// pointer).
// Values of non-nilable kinds are never absent, including zero values.
func Is(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map,
		reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
