package interpolation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// TagName marks the fields to interpolate: `env_interpolation:"yes"`.
const TagName = "env_interpolation"

// InterpolateStruct expands environment variables in the tagged fields of the struct v
// points to. String fields and string slices are expanded, tagged struct fields, struct
// pointers and slices of structs are walked recursively.
func InterpolateStruct(v any) error {
	if v == nil {
		return nil
	}

	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr {
		return fmt.Errorf("expected pointer to struct, got %T", v)
	}
	if val.IsNil() {
		return nil
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("expected pointer to struct, got %T", v)
	}

	return interpolateStruct("", val)
}

func interpolateStruct(prefix string, val reflect.Value) error {
	typ := val.Type()
	var errs []error

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() || strings.ToLower(fieldType.Tag.Get(TagName)) != "yes" {
			continue
		}

		if err := interpolateField(prefix+fieldType.Name, field); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func interpolateField(path string, field reflect.Value) error {
	switch field.Kind() {
	case reflect.String:
		expanded, err := ExpandEnvVars(field.String())
		if err != nil {
			return fmt.Errorf("field %s: %w", path, err)
		}
		field.SetString(expanded)

	case reflect.Struct:
		return interpolateStruct(path+".", field)

	case reflect.Ptr:
		if field.IsNil() || field.Elem().Kind() != reflect.Struct {
			return nil
		}
		return interpolateStruct(path+".", field.Elem())

	case reflect.Slice:
		var errs []error
		for j := 0; j < field.Len(); j++ {
			if err := interpolateField(fmt.Sprintf("%s[%d]", path, j), field.Index(j)); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
	return nil
}
