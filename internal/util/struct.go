package util

import (
	"reflect"

	"github.com/pkg/errors"
)

// IsStructInitialized walks the exported fields of a struct (or pointer to
// struct) and errors on the first nil-able field that is still nil. Used by
// the server readiness check to detect half-initialized components.
func IsStructInitialized(s interface{}) error {
	v := reflect.ValueOf(s)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return errors.New("struct pointer is nil")
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return errors.Errorf("expected a struct, got %s", v.Kind())
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanInterface() {
			continue
		}

		switch field.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if field.IsNil() {
				return errors.Errorf("field %s is not initialized", t.Field(i).Name)
			}
		default:
			// value types are always considered initialized
		}
	}

	return nil
}
