package argparse

// Values returns the raw typed values of a flag, falling back to its default
// when it never occurred.
func (p *Parser) Values(flag string) ([]Value, error) {
	a, ok := p.args[flag]
	if !ok {
		return nil, &RetrievalError{Type: RetrievalInvalidFlag, Flag: flag}
	}
	if len(a.values) > 0 {
		out := make([]Value, len(a.values))
		copy(out, a.values)
		return out, nil
	}
	if a.def != nil {
		return []Value{*a.def}, nil
	}
	return nil, &RetrievalError{Type: RetrievalNoValue, Flag: flag}
}

// Get returns every value recorded for flag as T, or its default when the flag
// never occurred. It fails when the flag is unknown, when T is not the type the
// flag holds, or when there is neither a value nor a default.
func Get[T Scalar](p *Parser, flag string) ([]T, error) {
	a, ok := p.args[flag]
	if !ok {
		return nil, &RetrievalError{Type: RetrievalInvalidFlag, Flag: flag}
	}
	want := KindOf[T]()
	if a.expected != KindNone && a.expected != want {
		return nil, &RetrievalError{Type: RetrievalInvalidType, Flag: flag, Expected: a.expected, Got: want}
	}

	if len(a.values) == 0 {
		if a.def == nil {
			return nil, &RetrievalError{Type: RetrievalNoValue, Flag: flag}
		}
		v, ok := As[T](*a.def)
		if !ok {
			return nil, &RetrievalError{Type: RetrievalInvalidType, Flag: flag, Expected: a.def.Kind(), Got: want}
		}
		return []T{v}, nil
	}

	out := make([]T, 0, len(a.values))
	for _, raw := range a.values {
		v, ok := As[T](raw)
		if !ok {
			return nil, &RetrievalError{Type: RetrievalInvalidType, Flag: flag, Expected: raw.Kind(), Got: want}
		}
		out = append(out, v)
	}
	return out, nil
}

// Lookup returns the last value of flag as T (or its default) and whether one exists.
func Lookup[T Scalar](p *Parser, flag string) (T, bool) {
	values, err := Get[T](p, flag)
	if err != nil || len(values) == 0 {
		var zero T
		return zero, false
	}
	return values[len(values)-1], true
}

// MustLookup returns the last value of flag as T, or fallback when there is none.
func MustLookup[T Scalar](p *Parser, flag string, fallback T) T {
	if v, ok := Lookup[T](p, flag); ok {
		return v
	}
	return fallback
}

// Count returns how many times flag occurred in the parsed tokens.
func (p *Parser) Count(flag string) int {
	if a, ok := p.args[flag]; ok {
		return len(a.values)
	}
	return 0
}

// Has reports whether flag occurred at least once.
func (p *Parser) Has(flag string) bool {
	return p.Count(flag) > 0
}

// Declared reports whether flag was declared.
func (p *Parser) Declared(flag string) bool {
	_, ok := p.args[flag]
	return ok
}

// Other returns the tokens that matched no declared flag, in input order.
func (p *Parser) Other() []string {
	out := make([]string, len(p.other))
	copy(out, p.other)
	return out
}
