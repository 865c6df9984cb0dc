package lang

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/ardnew/optexpr/lang/ast"
)

// Undefined is the value of an array elision hole and of a name or member
// that does not exist.
type Undefined = ast.Undefined

// IsUndefined reports whether v is [Undefined].
func IsUndefined(v any) bool {
	_, ok := v.(Undefined)

	return ok
}

// Member is implemented by host values that resolve their own members.
// The key is the evaluated value between brackets, or the string of a
// dotted name.
type Member interface {
	Member(key any) (any, bool)
}

// PropertyKey converts an evaluated key to the property name it denotes.
func PropertyKey(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case float64:
		return ast.FormatNumber(k)
	case int:
		return strconv.Itoa(k)
	case bool:
		return strconv.FormatBool(k)
	case nil:
		return "null"
	case Undefined:
		return "undefined"
	default:
		return fmt.Sprint(k)
	}
}

// arrayIndex converts key to an index when it denotes a non-negative integer.
func arrayIndex(key any) (int, bool) {
	switch k := key.(type) {
	case float64:
		if k >= 0 && k <= math.MaxInt32 && k == math.Trunc(k) {
			return int(k), true
		}
	case int:
		return k, k >= 0
	case string:
		i, err := strconv.Atoi(k)
		if err == nil && i >= 0 && strconv.Itoa(i) == k {
			return i, true
		}
	}

	return 0, false
}

// index returns the member of v named by key. A member that does not exist
// yields [Undefined] and false.
func index(v, key any) (any, bool) {
	switch v := v.(type) {
	case Member:
		if m, ok := v.Member(key); ok {
			return m, true
		}

		return Undefined{}, false

	case map[string]any:
		if m, ok := v[PropertyKey(key)]; ok {
			return m, true
		}

		return Undefined{}, false

	case []any:
		if PropertyKey(key) == "length" {
			return float64(len(v)), true
		}

		if i, ok := arrayIndex(key); ok && i < len(v) {
			return v[i], true
		}

		return Undefined{}, false

	case string:
		if PropertyKey(key) == "length" {
			return float64(utf8.RuneCountInString(v)), true
		}

		if i, ok := arrayIndex(key); ok {
			for n, r := range []rune(v) {
				if n == i {
					return string(r), true
				}
			}
		}

		return Undefined{}, false
	}

	return reflectIndex(reflect.ValueOf(v), key)
}

func reflectIndex(rv reflect.Value, key any) (any, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Undefined{}, false
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}

		k := reflect.ValueOf(PropertyKey(key)).Convert(rv.Type().Key())
		if m := rv.MapIndex(k); m.IsValid() {
			return m.Interface(), true
		}

	case reflect.Struct:
		name := PropertyKey(key)
		if f, ok := rv.Type().FieldByName(name); ok && f.IsExported() {
			if fv, err := rv.FieldByIndexErr(f.Index); err == nil {
				return fv.Interface(), true
			}
		}

	case reflect.Slice, reflect.Array:
		if PropertyKey(key) == "length" {
			return float64(rv.Len()), true
		}

		if i, ok := arrayIndex(key); ok && i < rv.Len() {
			return rv.Index(i).Interface(), true
		}
	}

	return Undefined{}, false
}
