package delta

// diffValue compares two comparable scalars and returns the defined Opt only
// when they differ.
func diffValue[T comparable](prev, curr T) Opt[T] {
	if prev == curr {
		return Opt[T]{}
	}
	return Value(curr)
}

// diffPointer compares two optional scalars by canonical serialized form. A
// change to nil yields a null Opt so the receiver clears the field instead of
// ignoring it.
func diffPointer[T any](prev, curr *T) (Opt[T], error) {
	same, err := Equal(prev, curr)
	if err != nil {
		return Opt[T]{}, err
	}
	if same {
		return Opt[T]{}, nil
	}
	if curr == nil {
		return Null[T](), nil
	}
	return Value(*curr), nil
}

// applyValue assigns the Opt's value to target only when the field is
// defined; null clears target to its zero value.
func applyValue[T any](target *T, o Opt[T]) {
	if !o.Defined() {
		return
	}
	if v, carried := o.Get(); carried {
		*target = v
		return
	}
	var zero T
	*target = zero
}

// applyPointer assigns the Opt's value to the optional target only when the
// field is defined; null clears the pointer.
func applyPointer[T any](target **T, o Opt[T]) {
	if !o.Defined() {
		return
	}
	if v, carried := o.Get(); carried {
		*target = &v
		return
	}
	*target = nil
}
