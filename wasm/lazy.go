package wasm

import (
	"bytes"
	"reflect"
	"sync"
)

type lazyState uint8

const (
	lazyFromInput lazyState = iota
	lazyOwned
)

// Lazy holds either undecoded bytes plus a memoized parse result, or an
// owned value, transitioning one-way from "from input" to "owned" the
// moment a mutable accessor is used (spec §4.4). The zero value is not
// usable; construct one with NewLazyFromRaw or NewLazyFromValue.
type Lazy[T any] struct {
	mu      sync.Mutex
	state   lazyState
	raw     []byte
	parsed  bool
	memo    T
	memoErr error
	value   T
	decode  func([]byte) (T, error)
}

// decodeRaw decodes a T from exactly the given bytes, failing with
// UnrecognizedData if any bytes are left over once T has been read (spec
// §4.2: a Blob's contents must consume the whole length-framed region).
func decodeRaw[T any, PT decoderPtr[T]](raw []byte) (T, error) {
	br := bytes.NewReader(raw)
	v, err := decodeNew[T, PT](br)
	if err != nil {
		return v, err
	}
	if br.Len() != 0 {
		var zero T
		return zero, errUnrecognizedData()
	}
	return v, nil
}

// NewLazyFromRaw constructs a Lazy in the "from input" state.
func NewLazyFromRaw[T any, PT decoderPtr[T]](raw []byte) *Lazy[T] {
	return &Lazy[T]{
		state:  lazyFromInput,
		raw:    raw,
		decode: decodeRaw[T, PT],
	}
}

// NewLazyFromValue constructs a Lazy already holding an owned value.
func NewLazyFromValue[T any](v T) *Lazy[T] {
	return &Lazy[T]{state: lazyOwned, value: v}
}

// TryAsRaw reports the raw bytes when still unparsed, or the owned value
// otherwise — the Either<&[u8], &T> of spec §4.4.
func (l *Lazy[T]) TryAsRaw() (raw []byte, value *T, fromInput bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == lazyFromInput {
		return l.raw, nil, true
	}
	return nil, &l.value, false
}

// TryContents decodes on demand; the result is memoized behind a
// once-initialization so repeat reads are O(1), and concurrent callers
// sharing the Lazy behind the usual sharing discipline observe either the
// pre- or post-memoization state, never a partially initialized one.
func (l *Lazy[T]) TryContents() (*T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == lazyOwned {
		return &l.value, nil
	}
	if !l.parsed {
		l.memo, l.memoErr = l.decode(l.raw)
		l.parsed = true
	}
	if l.memoErr != nil {
		return nil, l.memoErr
	}
	return &l.memo, nil
}

// TryContentsMut decodes if necessary, then transitions the Lazy to Owned:
// the raw bytes can no longer be trusted to match a value the caller is
// about to mutate through the returned pointer, so they're dropped.
func (l *Lazy[T]) TryContentsMut() (*T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == lazyFromInput {
		var v T
		var err error
		if l.parsed {
			v, err = l.memo, l.memoErr
		} else {
			v, err = l.decode(l.raw)
		}
		if err != nil {
			return nil, err
		}
		l.value = v
		l.state = lazyOwned
		l.raw = nil
		l.decode = nil
	}
	return &l.value, nil
}

// TryIntoContents consumes the Lazy and returns its decoded value.
func (l *Lazy[T]) TryIntoContents() (T, error) {
	v, err := l.TryContents()
	if err != nil {
		var zero T
		return zero, err
	}
	return *v, nil
}

// LazyEqual compares two lazies without materializing either side when
// both are still unparsed with identical raw bytes; otherwise it decodes
// and compares structurally (spec §4.4, exercised by spec §8 property 5).
func LazyEqual[T any](a, b *Lazy[T]) bool {
	araw, _, aFromInput := a.TryAsRaw()
	braw, _, bFromInput := b.TryAsRaw()
	if aFromInput && bFromInput && bytes.Equal(araw, braw) {
		return true
	}
	av, aerr := a.TryContents()
	bv, berr := b.TryContents()
	if aerr != nil || berr != nil {
		return false
	}
	return reflect.DeepEqual(*av, *bv)
}
