package wasm

import (
	"errors"
	"fmt"
	"strings"
)

// errInvalidUTF8 is the sentinel wrapped by errUTF8 when a length-prefixed
// string contains invalid UTF-8 (spec §4.1).
var errInvalidUTF8 = errors.New("invalid utf-8 string")

// ErrorKind is the closed set of ways a decode can fail.
type ErrorKind int

const (
	// KindIO wraps an underlying reader/writer error.
	KindIO ErrorKind = iota
	// KindLeb128 marks an overflowing or truncated LEB128 sequence.
	KindLeb128
	// KindUTF8 marks invalid UTF-8 inside a length-prefixed string.
	KindUTF8
	// KindUnsupportedDiscriminant marks a discriminant no variant declares.
	KindUnsupportedDiscriminant
	// KindInvalidMagic marks a module whose 8-byte prefix doesn't match.
	KindInvalidMagic
	// KindUnrecognizedData marks leftover bytes inside a length-framed region.
	KindUnrecognizedData
	// KindSectionOutOfOrder marks a canonical section-ordering violation.
	KindSectionOutOfOrder
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindLeb128:
		return "leb128"
	case KindUTF8:
		return "utf8"
	case KindUnsupportedDiscriminant:
		return "unsupported-discriminant"
	case KindInvalidMagic:
		return "invalid-magic"
	case KindUnrecognizedData:
		return "unrecognized-data"
	case KindSectionOutOfOrder:
		return "section-out-of-order"
	default:
		return "unknown"
	}
}

// PathItem is one step of the structural path attached to a DecodeError.
type PathItem struct {
	// Exactly one of Name, HasIndex, Variant is populated.
	Name     string
	HasIndex bool
	Index    int
	Variant  string
}

func fieldPath(name string) PathItem    { return PathItem{Name: name} }
func indexPath(i int) PathItem          { return PathItem{HasIndex: true, Index: i} }
func variantPath(name string) PathItem  { return PathItem{Variant: name} }

func (p PathItem) String() string {
	switch {
	case p.HasIndex:
		return fmt.Sprintf("[%d]", p.Index)
	case p.Variant != "":
		return fmt.Sprintf("<%s>", p.Variant)
	default:
		return p.Name
	}
}

// Path is the structural path accumulated as an error propagates outward
// through nested decode or visit calls. Each enclosing call prepends its
// own item, so the slice is stored root-first and printed root-first.
type Path []PathItem

func (p Path) String() string {
	var b strings.Builder
	b.WriteString("(root)")
	for _, item := range p {
		if item.Name != "" {
			b.WriteByte('.')
		}
		b.WriteString(item.String())
	}
	return b.String()
}

// DecodeError is the single error type returned by every decoder in this
// package. It carries the structural Path accumulated between the point of
// failure and the call that ultimately reported it.
type DecodeError struct {
	Path Path
	Kind ErrorKind

	// Detail carries the kind-specific payload (an overflow message, the
	// offending discriminant value, the invalid magic bytes, the
	// conflicting section kinds...). It is rendered by Error() and is not
	// meant to be inspected directly; use the Kind-specific accessors below.
	Detail string

	// Cause is the underlying error (io error, utf8 error) when one exists.
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path.String(), e.Detail)
}

// Unwrap exposes the underlying I/O or UTF-8 error to errors.Is/errors.As.
func (e *DecodeError) Unwrap() error { return e.Cause }

// WithPath returns a copy of err with item pushed onto its Path. It is the
// mechanism by which every nested decoder attaches its own
// structural context before returning an error to its caller.
func (e *DecodeError) WithPath(item PathItem) *DecodeError {
	cp := *e
	cp.Path = append(append(Path(nil), item), e.Path...)
	return &cp
}

func wrapPath(err error, item PathItem) error {
	if err == nil {
		return nil
	}
	if de, ok := err.(*DecodeError); ok {
		return de.WithPath(item)
	}
	return &DecodeError{Kind: KindIO, Detail: err.Error(), Cause: err}
}

func errIO(err error) *DecodeError {
	return &DecodeError{Kind: KindIO, Detail: err.Error(), Cause: err}
}

func errLeb128(detail string) *DecodeError {
	return &DecodeError{Kind: KindLeb128, Detail: detail}
}

func errUTF8(err error) *DecodeError {
	return &DecodeError{Kind: KindUTF8, Detail: err.Error(), Cause: err}
}

func errUnsupportedDiscriminant(typeName string, value int64) *DecodeError {
	return &DecodeError{
		Kind:   KindUnsupportedDiscriminant,
		Detail: fmt.Sprintf("could not recognise discriminant 0x%X for %s", value, typeName),
	}
}

func errInvalidMagic(actual [8]byte) *DecodeError {
	return &DecodeError{
		Kind:   KindInvalidMagic,
		Detail: fmt.Sprintf("invalid module magic signature %02X", actual),
	}
}

func errUnrecognizedData() *DecodeError {
	return &DecodeError{Kind: KindUnrecognizedData, Detail: "unrecognized data"}
}

func errSectionOutOfOrder(prev, current Kind) *DecodeError {
	return &DecodeError{
		Kind:   KindSectionOutOfOrder,
		Detail: fmt.Sprintf("section out of order: %s after %s", current, prev),
	}
}
