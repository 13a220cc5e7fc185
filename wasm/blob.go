package wasm

import (
	"bytes"
	"io"
)

// Blob is a length-prefixed region of the wire format whose contents are
// decoded lazily (spec §4.2). The PT parameter mirrors decoderPtr so that
// Blob itself can implement Decoder without extra type parameters on its
// methods: callers spell it out as Blob[Type, *Type].
type Blob[T any, PT decoderPtr[T]] struct {
	inner *Lazy[T]
}

// NewBlobFromValue wraps an already-decoded value in a Blob, as if it had
// just been constructed in memory rather than read off the wire.
func NewBlobFromValue[T any, PT decoderPtr[T]](v T) *Blob[T, PT] {
	return &Blob[T, PT]{inner: NewLazyFromValue(v)}
}

// DecodeWasm reads the u32 length prefix and stores the following bytes
// without parsing them; parsing is deferred to the first Contents call.
func (b *Blob[T, PT]) DecodeWasm(r io.Reader) error {
	n, err := readU32(r)
	if err != nil {
		return wrapPath(err, fieldPath("len"))
	}
	raw, err := readBytesExact(r, n)
	if err != nil {
		return wrapPath(err, fieldPath("contents"))
	}
	b.inner = NewLazyFromRaw[T, PT](raw)
	return nil
}

// EncodeWasm writes the stored raw bytes back out verbatim while the blob
// is still in its from-input state (a read-only Contents call does not
// change that), and re-serializes only once the contents were accessed
// through ContentsMut or the blob was built from a value.
func (b *Blob[T, PT]) EncodeWasm(w io.Writer) error {
	raw, value, fromInput := b.inner.TryAsRaw()
	if fromInput {
		if err := writeU32(w, uint32(len(raw))); err != nil {
			return err
		}
		_, err := w.Write(raw)
		return err
	}

	var scratch bytes.Buffer
	if err := PT(value).EncodeWasm(&scratch); err != nil {
		return err
	}
	if err := writeU32(w, uint32(scratch.Len())); err != nil {
		return err
	}
	_, err := w.Write(scratch.Bytes())
	return err
}

// RawBytes returns the blob's original wire bytes and whether they are
// still valid, i.e. the contents have not been accessed through
// ContentsMut or replaced since DecodeWasm populated them. A read-only
// Contents call leaves them valid.
func (b *Blob[T, PT]) RawBytes() ([]byte, bool) {
	raw, _, fromInput := b.inner.TryAsRaw()
	return raw, fromInput
}

// Contents decodes the blob's contents on first access and memoizes them.
func (b *Blob[T, PT]) Contents() (*T, error) { return b.inner.TryContents() }

// ContentsMut decodes if necessary and transitions the blob to owned, so
// subsequent encodes re-serialize instead of replaying raw bytes.
func (b *Blob[T, PT]) ContentsMut() (*T, error) { return b.inner.TryContentsMut() }

// IntoContents decodes and returns the contents by value.
func (b *Blob[T, PT]) IntoContents() (T, error) { return b.inner.TryIntoContents() }

// BlobEqual compares two blobs the way Lazy does: raw-bytes-first, falling
// back to structural equality of the decoded contents.
func BlobEqual[T any, PT decoderPtr[T]](a, b *Blob[T, PT]) bool {
	return LazyEqual(a.inner, b.inner)
}
