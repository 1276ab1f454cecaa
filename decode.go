package argvopts

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/cardinalby/go-argv-options/cmdargs"
)

var ErrOptionRedefined = errors.New("option redefined")
var ErrIsRequired = errors.New("option is required")
var ErrMultipleAliases = errors.New("multiple aliases for the same option are used")
var ErrValueType = errors.New("unexpected option value type")

// CanonicalName replaces every run of '-' and '_' in name with a single '_'
func CanonicalName(name string) string {
	return cmdargs.CanonicalName(name)
}

// Decode assigns option values to the fields of the struct pointed by `p`.
//
// Supported tags:
//   - `opt:"name"` binds the field to the option
//   - `opts:"name,alias"` binds the field to any of the options. Using more than one of them
//     results in ErrMultipleAliases
//   - `optRequired:"true"` makes Decode fail with ErrIsRequired if the option is absent
//   - `optPrefix:"prefix_"` on a nested struct field prepends the prefix to its option names
//
// Tag names are canonicalized, so `opt:"log-level"` matches "--log_level".
// Scalar fields get the last occurrence of an option, slice fields get all of them.
// Options not bound to any field are returned as `unknown`.
func Decode(opts Options, p any) (unknown Options, err error) {
	structPtr := reflect.ValueOf(p)
	if structPtr.Kind() != reflect.Ptr || structPtr.IsNil() || structPtr.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("pointer to struct expected, got %T", p)
	}

	fields, err := collectFieldsInfoRecursive(structPtr.Elem(), "", "")
	if err != nil {
		return nil, err
	}

	boundFields := make(map[string]string)
	for _, field := range fields {
		for _, name := range field.role.optNames {
			if prevFieldName, has := boundFields[name]; has {
				return nil, fmt.Errorf(`%w: "%s" in fields "%s" and "%s"`,
					ErrOptionRedefined, name, prevFieldName, field.fieldName)
			}
			boundFields[name] = field.fieldName
		}
	}

	for _, field := range fields {
		if err := decodeField(opts, field); err != nil {
			return nil, fmt.Errorf(`field "%s": %w`, field.fieldName, err)
		}
	}

	unknown = opts.Filter(func(o Option) bool {
		_, isBound := boundFields[o.Name]
		return !isBound
	})
	return unknown, nil
}

func decodeField(opts Options, field fieldInfo) error {
	var usedName string
	var values []Value
	for _, name := range field.role.optNames {
		nameValues := opts.All(name)
		if len(nameValues) == 0 {
			continue
		}
		if usedName != "" {
			return fmt.Errorf(`%w: "%s" and "%s"`, ErrMultipleAliases, usedName, name)
		}
		usedName = name
		values = nameValues
	}

	if len(values) == 0 {
		if field.role.isRequired {
			return fmt.Errorf(`%w: "%s"`, ErrIsRequired, field.role.optNames[0])
		}
		return nil
	}

	if field.fieldValue.Kind() == reflect.Slice && field.fieldValue.Type().Elem().Kind() != reflect.Uint8 {
		field.fieldValue.Set(reflect.Zero(field.fieldValue.Type()))
	} else {
		values = values[len(values)-1:]
	}
	for _, v := range values {
		if err := field.setter(v); err != nil {
			return fmt.Errorf(`option "%s": %w`, usedName, err)
		}
	}
	return nil
}
