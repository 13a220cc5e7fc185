package wasm

import "io"

// Encoder is implemented by every value this package can write back to the
// wire. Encoding a well-formed tree never fails except for the underlying
// writer misbehaving (spec §7 "encoding is otherwise infallible").
type Encoder interface {
	EncodeWasm(w io.Writer) error
}

// Decoder is implemented by every value this package can read off the wire.
// DecodeWasm is called on a zero value through its pointer receiver and
// populates it in place, mirroring the generated `decode` impls the Rust
// original derives per struct/enum.
type Decoder interface {
	Encoder
	DecodeWasm(r io.Reader) error
}

// decoderPtr is the constraint-trick that lets decodeNew construct a T and
// call its pointer-receiver DecodeWasm without the caller having to thread
// a constructor through: *T must both point at T and satisfy Decoder.
type decoderPtr[T any] interface {
	*T
	Decoder
}

// decodeNew decodes a fresh T from r.
func decodeNew[T any, PT decoderPtr[T]](r io.Reader) (T, error) {
	var v T
	if err := PT(&v).DecodeWasm(r); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// DecodeVec reads a u32 element count followed by that many T values (spec
// §4.3's "countable" framing: a count prefix, no further length framing per
// element beyond what T itself imposes).
func DecodeVec[T any, PT decoderPtr[T]](r io.Reader) ([]T, error) {
	count, err := readU32(r)
	if err != nil {
		return nil, wrapPath(err, fieldPath("count"))
	}
	out := make([]T, 0, count)
	for i := uint32(0); i < count; i++ {
		v, err := decodeNew[T, PT](r)
		if err != nil {
			return nil, wrapPath(err, indexPath(int(i)))
		}
		out = append(out, v)
	}
	return out, nil
}

// EncodeVec writes a u32 element count followed by the encoded elements.
func EncodeVec[T Encoder](w io.Writer, items []T) error {
	if err := writeU32(w, uint32(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if err := item.EncodeWasm(w); err != nil {
			return err
		}
	}
	return nil
}
