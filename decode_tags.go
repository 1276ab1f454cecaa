package argvopts

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const (
	optNameTag     = "opt"
	optNamesTag    = "opts"
	optRequiredTag = "optRequired"
	optPrefixTag   = "optPrefix"
)

type fieldRole interface {
	getRoleTagName() string
}

type namedOptionRole struct {
	optNames    []string
	roleTagName string
	isRequired  bool
}

func (r namedOptionRole) getRoleTagName() string {
	return r.roleTagName
}

func (r namedOptionRole) withPrefix(namePrefix string) namedOptionRole {
	names := make([]string, len(r.optNames))
	for i, name := range r.optNames {
		names[i] = CanonicalName(namePrefix + name)
	}
	r.optNames = names
	return r
}

type nestedStructRole struct {
	optPrefix string
}

func (r nestedStructRole) getRoleTagName() string {
	return optPrefixTag
}

func getFieldRole(field reflect.StructField) (fieldRole, error) {
	var (
		optName        string
		optNames       []string
		optRequired    bool
		hasOptRequired bool
		optPrefix      string
		hasOptPrefix   bool
		err            error
	)
	tags := field.Tag

	if optName = tags.Get(optNameTag); optName == "-" {
		optName = ""
	}
	optNames = getOptNames(tags)

	if optRequired, hasOptRequired, err = getBoolTag(tags, optRequiredTag); err != nil {
		return nil, err
	}

	optPrefix, hasOptPrefix = tags.Lookup(optPrefixTag)

	hasOptName := optName != ""
	hasOptNames := len(optNames) > 0

	behaviorTagsCount := trueCount(
		hasOptName,
		hasOptNames,
		hasOptPrefix,
	)
	if behaviorTagsCount == 0 {
		if hasOptRequired {
			return nil, fmt.Errorf(
				`"%s" tag can be used only with "%s" or "%s" tags`,
				optRequiredTag, optNameTag, optNamesTag,
			)
		}
		return nil, nil
	}
	if behaviorTagsCount > 1 {
		return nil, fmt.Errorf(
			`only one of "%s", "%s", "%s" tags can be used`,
			optNameTag, optNamesTag, optPrefixTag,
		)
	}

	if hasOptPrefix {
		if hasOptRequired {
			return nil, fmt.Errorf(`"%s" tag can't be used with "%s" tag`, optRequiredTag, optPrefixTag)
		}
		return nestedStructRole{
			optPrefix: optPrefix,
		}, nil
	}

	role := namedOptionRole{
		isRequired: optRequired,
	}
	if hasOptName {
		role.optNames = []string{optName}
		role.roleTagName = optNameTag
	} else {
		role.optNames = optNames
		role.roleTagName = optNamesTag
	}
	return role, nil
}

func getBoolTag(tags reflect.StructTag, tagName string) (val bool, exists bool, err error) {
	var strVal string
	if strVal, exists = tags.Lookup(tagName); strVal != "" {
		if val, err = strconv.ParseBool(strVal); err != nil {
			return false, exists,
				fmt.Errorf(`invalid "%s" tag bool value: "%s"`, tagName, strVal)
		}
	}
	return val, exists, nil
}

func getOptNames(tags reflect.StructTag) []string {
	namesStr := tags.Get(optNamesTag)
	if namesStr == "" {
		return nil
	}
	var names []string
	for _, name := range strings.Split(namesStr, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

func trueCount(values ...bool) (res int) {
	for _, v := range values {
		if v {
			res++
		}
	}
	return res
}
