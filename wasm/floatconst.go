package wasm

import (
	"io"
	"math"

	"github.com/chewxy/math32"
)

// FloatConst32 wraps an f32.const immediate. Its wire encoding is always
// the exact 32 raw bits; its equality treats every NaN bit pattern as
// interchangeable, since two constant pools that both mean "not a number"
// are equal for this package's purposes even if their payload bits differ
// (spec §4.6's float constants; exercised by spec §8 property 6).
type FloatConst32 struct {
	Bits uint32
}

// NewFloatConst32 wraps a float32 value, preserving its exact bit pattern.
func NewFloatConst32(v float32) FloatConst32 {
	return FloatConst32{Bits: math32.Float32bits(v)}
}

// Float32 returns the wrapped value.
func (f FloatConst32) Float32() float32 { return math32.Float32frombits(f.Bits) }

// Equal reports whether f and other represent the same constant, treating
// all NaNs as equal to one another regardless of sign or payload.
func (f FloatConst32) Equal(other FloatConst32) bool {
	if math32.IsNaN(f.Float32()) && math32.IsNaN(other.Float32()) {
		return true
	}
	return f.Bits == other.Bits
}

func (f FloatConst32) EncodeWasm(w io.Writer) error { return writeF32bits(w, f.Bits) }

func (f *FloatConst32) DecodeWasm(r io.Reader) error {
	bits, err := readF32bits(r)
	if err != nil {
		return err
	}
	f.Bits = bits
	return nil
}

// FloatConst64 is FloatConst32's f64.const counterpart.
type FloatConst64 struct {
	Bits uint64
}

// NewFloatConst64 wraps a float64 value, preserving its exact bit pattern.
func NewFloatConst64(v float64) FloatConst64 {
	return FloatConst64{Bits: math.Float64bits(v)}
}

// Float64 returns the wrapped value.
func (f FloatConst64) Float64() float64 { return math.Float64frombits(f.Bits) }

// Equal reports whether f and other represent the same constant, treating
// all NaNs as equal to one another regardless of sign or payload.
func (f FloatConst64) Equal(other FloatConst64) bool {
	if math.IsNaN(f.Float64()) && math.IsNaN(other.Float64()) {
		return true
	}
	return f.Bits == other.Bits
}

func (f FloatConst64) EncodeWasm(w io.Writer) error { return writeF64bits(w, f.Bits) }

func (f *FloatConst64) DecodeWasm(r io.Reader) error {
	bits, err := readF64bits(r)
	if err != nil {
		return err
	}
	f.Bits = bits
	return nil
}
