package main

import (
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// decodeArg turns a command-line argument into a dynamic value by decoding
// it as YAML. Arguments that do not decode, that YAML reads as nothing (a
// "#FFFFFF" comment, an empty string) or as a mapping ("hi :-) bye (-:")
// stay strings; only an explicit null decodes to nil.
func decodeArg(arg string, raw bool) any {
	if raw {
		return arg
	}
	var value any
	if err := yaml.Unmarshal([]byte(arg), &value); err != nil {
		return arg
	}
	if value == nil && !isNull(arg) {
		return arg
	}
	if reflect.ValueOf(value).Kind() == reflect.Map {
		return arg
	}
	return value
}

func isNull(arg string) bool {
	switch strings.TrimSpace(arg) {
	case "null", "Null", "NULL", "~":
		return true
	}
	return false
}

// decodeTextArg decodes an argument for a parameter that takes a string.
// Lists still decode, so a wrong type stays reportable; any scalar keeps its
// original spelling ("000000" and "1E5" are hex colors, not numbers).
func decodeTextArg(arg string, raw bool) any {
	value := decodeArg(arg, raw)
	if _, isList := value.([]any); isList {
		return value
	}
	return arg
}
