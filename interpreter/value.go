package interpreter

import "strconv"

// Value is any runtime Lox value: nil, bool, float64, string, or a
// Callable (native function, user function, class, or bound method).
// Go's interface{} already gives us the tagged union spec.md §3.4 calls
// for; no wrapper struct is needed.
type Value = interface{}

// IsTruthy implements spec.md §4.4.1: false and nil are falsy, everything
// else — including 0 and "" — is truthy.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements spec.md §4.4.1 equality. nil equals only nil; numbers,
// strings, and bools compare by value; callables/instances compare by
// reference identity (Go's == on interface values already does this for
// pointer-shaped Values). NaN == NaN follows Go's float64 equality
// (false) — the recommended choice noted as an open question in spec.md §9.
func IsEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify implements spec.md §4.4.1's string-form rules.
func Stringify(v Value) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		s := strconv.FormatFloat(t, 'f', -1, 64)
		return s
	case string:
		return t
	case *Instance:
		return t.String()
	case Callable:
		return t.String()
	default:
		return "?"
	}
}
