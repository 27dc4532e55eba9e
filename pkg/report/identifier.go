package report

// ResolveIdentifier returns "<field>:<value>" for the first candidate field
// that carries a non-empty scalar value. The field prefix keeps two naming
// schemes that report the same raw string apart.
func ResolveIdentifier(obj Object, candidates []string) (string, error) {
	for _, field := range candidates {
		v, ok := scalarField(obj, field)
		if !ok {
			continue
		}
		return field + ":" + v.Text(), nil
	}

	tried := make([]string, len(candidates))
	copy(tried, candidates)
	return "", &MissingIdentifierError{Tried: tried}
}

// scalarField reads a top-level member usable as an identifier, type or
// group reference.
func scalarField(obj Object, field string) (Value, bool) {
	raw, ok := obj.Get(field)
	if !ok {
		return Value{}, false
	}
	v, err := FromRaw(raw)
	if err != nil || v.IsEmpty() || !v.IsScalar() {
		return Value{}, false
	}
	return v, true
}
