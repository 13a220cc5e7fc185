package wasm

import "io"

// DiscriminantEntry pairs a predicate over the single leading discriminant
// byte with the decode function for the variant it selects. Entries whose
// Match is nil are catch-alls and are only tried once every specific entry
// has declined. (The instruction table registers its Misc/SIMD/Atomic
// prefix groups as specific entries matching their one reserved byte.)
type DiscriminantEntry[T any] struct {
	Match  func(discriminant byte) bool
	Decode func(r io.Reader, discriminant byte) (T, error)
}

// DecodeByDiscriminant reads one discriminant byte and tries entries in
// order, mirroring the match arms a derive macro would generate: specific
// entries first, catch-alls last, and the discriminant byte is consumed
// exactly once regardless of which entry claims it.
func DecodeByDiscriminant[T any](r io.Reader, typeName string, entries []DiscriminantEntry[T]) (T, error) {
	var zero T
	d, err := readByte(r)
	if err != nil {
		return zero, wrapPath(err, fieldPath("discriminant"))
	}
	var fallback *DiscriminantEntry[T]
	for i := range entries {
		e := &entries[i]
		if e.Match == nil {
			if fallback == nil {
				fallback = e
			}
			continue
		}
		if e.Match(d) {
			return e.Decode(r, d)
		}
	}
	if fallback != nil {
		return fallback.Decode(r, d)
	}
	return zero, errUnsupportedDiscriminant(typeName, int64(d))
}

// writeDiscriminant writes a single leading tag byte ahead of a variant's
// own payload encoding.
func writeDiscriminant(w io.Writer, d byte) error {
	return writeByte(w, d)
}
