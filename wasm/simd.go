package wasm

import "io"

// SIMDOp is one operation of the 0xFD v128 instruction prefix. Unlike
// AtomicOp, this is a subset: only v128.load, v128.store and the
// v128.const immediate are modelled, and every other sub-opcode is
// rejected with an UnsupportedDiscriminant error.
type SIMDOp interface {
	Encoder
}

const (
	simdV128Load  = 0x00
	simdV128Store = 0x0B
	simdV128Const = 0x0C
)

// SIMDMemOp covers the v128 load and store opcodes.
type SIMDMemOp struct {
	Opcode uint32
	Arg    MemArg
}

func (s SIMDMemOp) EncodeWasm(w io.Writer) error {
	if err := writeU32(w, s.Opcode); err != nil {
		return err
	}
	return s.Arg.EncodeWasm(w)
}

// SIMDConst is the v128.const immediate: 16 raw bytes, little-endian.
type SIMDConst struct {
	Bytes [16]byte
}

func (s SIMDConst) EncodeWasm(w io.Writer) error {
	if err := writeU32(w, simdV128Const); err != nil {
		return err
	}
	_, err := w.Write(s.Bytes[:])
	return err
}

// DecodeSIMDOp reads the LEB128 sub-opcode and dispatches to the matching
// v128 operation.
func DecodeSIMDOp(r io.Reader) (SIMDOp, error) {
	sub, err := readU32(r)
	if err != nil {
		return nil, wrapPath(err, fieldPath("subopcode"))
	}
	switch sub {
	case simdV128Load, simdV128Store:
		var arg MemArg
		if err := arg.DecodeWasm(r); err != nil {
			return nil, err
		}
		return SIMDMemOp{Opcode: sub, Arg: arg}, nil
	case simdV128Const:
		raw, err := readBytesExact(r, 16)
		if err != nil {
			return nil, wrapPath(err, fieldPath("bytes"))
		}
		var c SIMDConst
		copy(c.Bytes[:], raw)
		return c, nil
	default:
		return nil, errUnsupportedDiscriminant("SIMDOp", int64(sub))
	}
}
