package leb128

import (
	"bytes"
	"testing"
)

func TestUint32Roundtrip(t *testing.T) {
	cases := []uint32{0, 1, 127, 128, 300, 1 << 20, ^uint32(0)}
	for _, v := range cases {
		var buf bytes.Buffer
		if err := WriteUint32(&buf, v); err != nil {
			t.Fatalf("WriteUint32(%d): %v", v, err)
		}
		got, err := ReadUint32(&buf)
		if err != nil {
			t.Fatalf("ReadUint32(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("roundtrip %d, got %d", v, got)
		}
	}
}

func TestInt32Roundtrip(t *testing.T) {
	cases := []int32{0, 1, -1, 63, -64, 64, -65, 1 << 20, -(1 << 20)}
	for _, v := range cases {
		var buf bytes.Buffer
		if err := WriteInt32(&buf, v); err != nil {
			t.Fatalf("WriteInt32(%d): %v", v, err)
		}
		got, err := ReadInt32(&buf)
		if err != nil {
			t.Fatalf("ReadInt32(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("roundtrip %d, got %d", v, got)
		}
	}
}

func TestInt64Roundtrip(t *testing.T) {
	cases := []int64{0, -1, 1 << 40, -(1 << 40)}
	for _, v := range cases {
		var buf bytes.Buffer
		if err := WriteInt64(&buf, v); err != nil {
			t.Fatalf("WriteInt64(%d): %v", v, err)
		}
		got, err := ReadInt64(&buf)
		if err != nil {
			t.Fatalf("ReadInt64(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("roundtrip %d, got %d", v, got)
		}
	}
}

// A non-minimal (padded) encoding of 0 must still decode to the correct
// value even though Go never produces such an encoding itself.
func TestReadUint32PaddedEncoding(t *testing.T) {
	padded := []byte{0x80, 0x80, 0x80, 0x00}
	got, err := ReadUint32(bytes.NewReader(padded))
	if err != nil {
		t.Fatalf("ReadUint32: %v", err)
	}
	if got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestReadUint32Overflow(t *testing.T) {
	// Encodes a value one bit too wide for 32 bits.
	tooWide := []byte{0x80, 0x80, 0x80, 0x80, 0x10}
	if _, err := ReadUint32(bytes.NewReader(tooWide)); err != ErrOverflow {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}

func TestReadInt32Overflow(t *testing.T) {
	tooWide := []byte{0x80, 0x80, 0x80, 0x80, 0x70}
	if _, err := ReadInt32(bytes.NewReader(tooWide)); err != ErrOverflow {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}
