package argvopts

import (
	"encoding"
	"fmt"
	"reflect"
	"time"
)

// valueSetter assigns a single option value to a field.
// For slice fields each call appends an element
type valueSetter func(v Value) error

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

func getValueSetter(fieldValue reflect.Value) (valueSetter, error) {
	valueType := fieldValue.Type()

	if valueType.Kind() == reflect.Ptr && !valueType.Implements(textUnmarshalerType) {
		elemType := valueType.Elem()
		if _, err := getValueSetter(reflect.New(elemType).Elem()); err != nil {
			return nil, err
		}
		return func(v Value) error {
			elem := reflect.New(elemType)
			setter, _ := getValueSetter(elem.Elem())
			if err := setter(v); err != nil {
				return err
			}
			fieldValue.Set(elem)
			return nil
		}, nil
	}

	if valueType.Kind() == reflect.Slice && valueType.Elem().Kind() != reflect.Uint8 {
		if _, err := getValueSetter(reflect.New(valueType.Elem()).Elem()); err != nil {
			return nil, fmt.Errorf("slice of %s: %w", valueType.Elem(), err)
		}
		return func(v Value) error {
			elem := reflect.New(valueType.Elem()).Elem()
			setter, _ := getValueSetter(elem)
			if err := setter(v); err != nil {
				return err
			}
			fieldValue.Set(reflect.Append(fieldValue, elem))
			return nil
		}, nil
	}

	if valueType == durationType {
		return func(v Value) error {
			s, ok := v.Str()
			if !ok {
				return newValueTypeError(v, "duration")
			}
			d, err := time.ParseDuration(s)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrValueType, err)
			}
			fieldValue.SetInt(int64(d))
			return nil
		}, nil
	}

	if reflect.PointerTo(valueType).Implements(textUnmarshalerType) || valueType.Implements(textUnmarshalerType) {
		return func(v Value) error {
			if v.Kind() == KindBool {
				return newValueTypeError(v, "text")
			}
			target := fieldValue
			if valueType.Kind() == reflect.Ptr {
				if fieldValue.IsNil() {
					fieldValue.Set(reflect.New(valueType.Elem()))
				}
			} else {
				target = fieldValue.Addr()
			}
			if err := target.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(v.Text())); err != nil {
				return fmt.Errorf("%w: %w", ErrValueType, err)
			}
			return nil
		}, nil
	}

	if setter := getPrimitiveValueSetter(fieldValue); setter != nil {
		return setter, nil
	}

	return nil, fmt.Errorf("unsupported field type %s", valueType)
}

func getPrimitiveValueSetter(value reflect.Value) valueSetter {
	switch value.Kind() {
	case reflect.Bool:
		return func(v Value) error {
			b, ok := v.Bool()
			if !ok {
				return newValueTypeError(v, "bool")
			}
			value.SetBool(b)
			return nil
		}
	case reflect.String:
		return func(v Value) error {
			if v.Kind() == KindBool {
				return newValueTypeError(v, "string")
			}
			value.SetString(v.Text())
			return nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(v Value) error {
			i, ok := v.Int()
			if !ok || value.OverflowInt(i) {
				return newValueTypeError(v, value.Type().String())
			}
			value.SetInt(i)
			return nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return func(v Value) error {
			i, ok := v.Int()
			if !ok || i < 0 || value.OverflowUint(uint64(i)) {
				return newValueTypeError(v, value.Type().String())
			}
			value.SetUint(uint64(i))
			return nil
		}
	case reflect.Float32, reflect.Float64:
		return func(v Value) error {
			f, ok := v.Float()
			if !ok || value.OverflowFloat(f) {
				return newValueTypeError(v, value.Type().String())
			}
			value.SetFloat(f)
			return nil
		}
	default:
		return nil
	}
}

func newValueTypeError(v Value, expected string) error {
	return fmt.Errorf("%w: %s expected, got %s %s", ErrValueType, expected, v.Kind(), v)
}
