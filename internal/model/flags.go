package model

// Truthy coerces the mixed activity-flag representations found in stored
// documents (boolean, smallint 0/1, "1") to a strict bool. Anything else,
// including NULL, is false.
func Truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int64:
		return x == 1
	case int:
		return x == 1
	case string:
		return x == "1" || x == "true"
	case []byte:
		s := string(x)
		return s == "1" || s == "true"
	}
	return false
}
