package lang

import "reflect"

// resultTypeName names the dynamic type of a value for trace output.
func resultTypeName(value any) string {
	if value == nil {
		return "nil"
	}

	return reflect.TypeOf(value).String()
}
