package argvopts

import (
	"fmt"
	"reflect"
)

// fieldInfo contains info about a struct field that receives option values
type fieldInfo struct {
	fieldName  string
	role       namedOptionRole
	setter     valueSetter
	fieldValue reflect.Value
}

// collectFieldsInfoRecursive collects info about all tagged fields of the given struct including
// nested structs. It validates the types of the fields and their tags and returns an error if any
// of them is invalid.
func collectFieldsInfoRecursive(
	structValue reflect.Value,
	parentOptPrefix string,
	parentFieldName string,
) (res []fieldInfo, err error) {
	sValType := structValue.Type()
	for i := 0; i < structValue.NumField(); i++ {
		field := sValType.Field(i)
		fieldName := getFieldName(parentFieldName, field.Name)
		fieldRole, err := getFieldRole(field)
		if err != nil {
			return nil, fmt.Errorf(`field "%s": %w`, fieldName, err)
		}
		if fieldRole == nil {
			continue
		}
		if !field.IsExported() {
			return nil, fmt.Errorf(`field "%s" tagged with "%s": unexported`, fieldName, fieldRole.getRoleTagName())
		}
		fieldInfos, err := collectFieldInfo(
			field.Type,
			structValue.Field(i),
			fieldName,
			parentOptPrefix,
			fieldRole,
		)
		if err != nil {
			return nil, err
		}
		res = append(res, fieldInfos...)
	}
	return res, nil
}

func collectFieldInfo(
	fieldType reflect.Type,
	fieldValue reflect.Value,
	fieldName string,
	parentOptPrefix string,
	fieldRole fieldRole,
) (res []fieldInfo, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf(`field "%s" tagged with "%s": %w`, fieldName, fieldRole.getRoleTagName(), err)
		}
	}()

	switch role := fieldRole.(type) {
	case nestedStructRole:
		if fieldType.Kind() != reflect.Struct {
			return nil, fmt.Errorf("struct expected, got %s", fieldType)
		}
		return collectFieldsInfoRecursive(fieldValue, parentOptPrefix+role.optPrefix, fieldName)
	case namedOptionRole:
		setter, err := getValueSetter(fieldValue)
		if err != nil {
			return nil, err
		}
		return []fieldInfo{{
			fieldName:  fieldName,
			role:       role.withPrefix(parentOptPrefix),
			setter:     setter,
			fieldValue: fieldValue,
		}}, nil
	}
	return nil, nil
}

func getFieldName(parentFieldName, fieldName string) string {
	if parentFieldName == "" {
		return fieldName
	}
	return fmt.Sprintf("%s.%s", parentFieldName, fieldName)
}
