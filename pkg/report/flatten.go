package report

// Flatten turns one level of nested objects into dotted keys:
//
//	{"a": {"b": 1}}          -> {"a.b": 1}
//	{"a": {"b": {"c": 1}}}   -> {"a.b": "{\"c\": 1}"} (opaque)
//	{"a": {}}                -> {}
//
// Members that are not objects pass through unchanged. When enabled is false
// every top-level member is kept as is and nested objects become opaque.
// Later members overwrite earlier ones that flatten to the same key.
func Flatten(obj Object, enabled bool) map[string]Value {
	flat := make(map[string]Value, len(obj))
	for _, m := range obj {
		if !enabled || !isObject(m.Raw) {
			flat[m.Key] = leaf(m.Raw)
			continue
		}

		nested, err := ParseObject(m.Raw)
		if err != nil {
			flat[m.Key] = leaf(m.Raw)
			continue
		}
		for _, sub := range nested {
			flat[m.Key+"."+sub.Key] = leaf(sub.Raw)
		}
	}
	return flat
}

// leaf never fails: members come from an already validated document, and a
// value that still cannot be read is kept as a string of its raw text.
func leaf(raw []byte) Value {
	v, err := FromRaw(raw)
	if err != nil {
		return String(string(raw))
	}
	return v
}
