package wasm

import (
	"bytes"
	"math"
	"testing"

	"github.com/chewxy/math32"
)

func TestFloatConst32Roundtrip(t *testing.T) {
	v := NewFloatConst32(3.14)
	var buf bytes.Buffer
	if err := v.EncodeWasm(&buf); err != nil {
		t.Fatalf("EncodeWasm: %v", err)
	}
	var got FloatConst32
	if err := got.DecodeWasm(&buf); err != nil {
		t.Fatalf("DecodeWasm: %v", err)
	}
	if got.Float32() != v.Float32() {
		t.Errorf("roundtrip mismatch: got %v, want %v", got.Float32(), v.Float32())
	}
}

func TestFloatConst32NaNsAreEqual(t *testing.T) {
	a := NewFloatConst32(math32.NaN())
	b := FloatConst32{Bits: 0x7FC00001} // a different NaN payload
	if !a.Equal(b) {
		t.Errorf("expected all NaN payloads to compare equal")
	}
}

func TestFloatConst32DistinctValuesNotEqual(t *testing.T) {
	a := NewFloatConst32(1.0)
	b := NewFloatConst32(2.0)
	if a.Equal(b) {
		t.Errorf("expected distinct values to compare unequal")
	}
}

func TestFloatConst64Roundtrip(t *testing.T) {
	v := NewFloatConst64(2.71828)
	var buf bytes.Buffer
	if err := v.EncodeWasm(&buf); err != nil {
		t.Fatalf("EncodeWasm: %v", err)
	}
	var got FloatConst64
	if err := got.DecodeWasm(&buf); err != nil {
		t.Fatalf("DecodeWasm: %v", err)
	}
	if got.Float64() != v.Float64() {
		t.Errorf("roundtrip mismatch: got %v, want %v", got.Float64(), v.Float64())
	}
}

func TestFloatConst64NaNsAreEqual(t *testing.T) {
	a := NewFloatConst64(math.NaN())
	b := FloatConst64{Bits: 0x7FF8000000000001}
	if !a.Equal(b) {
		t.Errorf("expected all NaN payloads to compare equal")
	}
}
