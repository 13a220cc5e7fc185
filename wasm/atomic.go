package wasm

import "io"

// AtomicOp is one operation of the 0xFE threads/atomics instruction
// prefix (spec §4.5, supplemented by original_source/src/instructions/
// threads.rs). Every variant shares the same wire shape — a MemArg
// operand — so rather than one Go struct per opcode (as Misc/SIMD do,
// where operand shapes actually differ) this is a single AtomicMemOp
// carrying whichever opcode byte matched.
type AtomicOp interface {
	Encoder
}

const (
	atomicNotify          = 0x00
	atomicI32Wait         = 0x01
	atomicI64Wait         = 0x02
	atomicI32Load         = 0x10
	atomicI64Load         = 0x11
	atomicI32Load8U       = 0x12
	atomicI32Load16U      = 0x13
	atomicI64Load8U       = 0x14
	atomicI64Load16U      = 0x15
	atomicI64Load32U      = 0x16
	atomicI32Store        = 0x17
	atomicI64Store        = 0x18
	atomicI32Store8       = 0x19
	atomicI32Store16      = 0x1A
	atomicI64Store8       = 0x1B
	atomicI64Store16      = 0x1C
	atomicI64Store32      = 0x1D
	atomicI32RmwAdd       = 0x1E
	atomicI64RmwAdd       = 0x1F
	atomicI32Rmw8AddU     = 0x20
	atomicI32Rmw16AddU    = 0x21
	atomicI64Rmw8AddU     = 0x22
	atomicI64Rmw16AddU    = 0x23
	atomicI64Rmw32AddU    = 0x24
	atomicI32RmwSub       = 0x25
	atomicI64RmwSub       = 0x26
	atomicI32Rmw8SubU     = 0x27
	atomicI32Rmw16SubU    = 0x28
	atomicI64Rmw8SubU     = 0x29
	atomicI64Rmw16SubU    = 0x2A
	atomicI64Rmw32SubU    = 0x2B
	atomicI32RmwAnd       = 0x2C
	atomicI64RmwAnd       = 0x2D
	atomicI32Rmw8AndU     = 0x2E
	atomicI32Rmw16AndU    = 0x2F
	atomicI64Rmw8AndU     = 0x30
	atomicI64Rmw16AndU    = 0x31
	atomicI64Rmw32AndU    = 0x32
	atomicI32RmwOr        = 0x33
	atomicI64RmwOr        = 0x34
	atomicI32Rmw8OrU      = 0x35
	atomicI32Rmw16OrU     = 0x36
	atomicI64Rmw8OrU      = 0x37
	atomicI64Rmw16OrU     = 0x38
	atomicI64Rmw32OrU     = 0x39
	atomicI32RmwXor       = 0x3A
	atomicI64RmwXor       = 0x3B
	atomicI32Rmw8XorU     = 0x3C
	atomicI32Rmw16XorU    = 0x3D
	atomicI64Rmw8XorU     = 0x3E
	atomicI64Rmw16XorU    = 0x3F
	atomicI64Rmw32XorU    = 0x40
	atomicI32RmwXchg      = 0x41
	atomicI64RmwXchg      = 0x42
	atomicI32Rmw8XchgU    = 0x43
	atomicI32Rmw16XchgU   = 0x44
	atomicI64Rmw8XchgU    = 0x45
	atomicI64Rmw16XchgU   = 0x46
	atomicI64Rmw32XchgU   = 0x47
	atomicI32RmwCmpXchg    = 0x48
	atomicI64RmwCmpXchg    = 0x49
	atomicI32Rmw8CmpXchgU  = 0x4A
	atomicI32Rmw16CmpXchgU = 0x4B
	atomicI64Rmw8CmpXchgU  = 0x4C
	atomicI64Rmw16CmpXchgU = 0x4D
	atomicI64Rmw32CmpXchgU = 0x4E
)

// atomicOpcodes lists every recognized sub-opcode: notify/wait and the
// full load, store and read-modify-write families (unlike the SIMD
// catch-all, which is a subset, see its own doc comment). atomic.fence
// (sub-opcode 0x03) is not among them and is rejected as unsupported.
var atomicOpcodes = []byte{
	atomicNotify, atomicI32Wait, atomicI64Wait,
	atomicI32Load, atomicI64Load, atomicI32Load8U, atomicI32Load16U,
	atomicI64Load8U, atomicI64Load16U, atomicI64Load32U,
	atomicI32Store, atomicI64Store, atomicI32Store8, atomicI32Store16,
	atomicI64Store8, atomicI64Store16, atomicI64Store32,
	atomicI32RmwAdd, atomicI64RmwAdd, atomicI32Rmw8AddU, atomicI32Rmw16AddU,
	atomicI64Rmw8AddU, atomicI64Rmw16AddU, atomicI64Rmw32AddU,
	atomicI32RmwSub, atomicI64RmwSub, atomicI32Rmw8SubU, atomicI32Rmw16SubU,
	atomicI64Rmw8SubU, atomicI64Rmw16SubU, atomicI64Rmw32SubU,
	atomicI32RmwAnd, atomicI64RmwAnd, atomicI32Rmw8AndU, atomicI32Rmw16AndU,
	atomicI64Rmw8AndU, atomicI64Rmw16AndU, atomicI64Rmw32AndU,
	atomicI32RmwOr, atomicI64RmwOr, atomicI32Rmw8OrU, atomicI32Rmw16OrU,
	atomicI64Rmw8OrU, atomicI64Rmw16OrU, atomicI64Rmw32OrU,
	atomicI32RmwXor, atomicI64RmwXor, atomicI32Rmw8XorU, atomicI32Rmw16XorU,
	atomicI64Rmw8XorU, atomicI64Rmw16XorU, atomicI64Rmw32XorU,
	atomicI32RmwXchg, atomicI64RmwXchg, atomicI32Rmw8XchgU, atomicI32Rmw16XchgU,
	atomicI64Rmw8XchgU, atomicI64Rmw16XchgU, atomicI64Rmw32XchgU,
	atomicI32RmwCmpXchg, atomicI64RmwCmpXchg, atomicI32Rmw8CmpXchgU, atomicI32Rmw16CmpXchgU,
	atomicI64Rmw8CmpXchgU, atomicI64Rmw16CmpXchgU, atomicI64Rmw32CmpXchgU,
}

// AtomicMemOp is every atomic operation: an opcode byte plus the MemArg
// alignment/offset pair every one of them carries (spec §4.5). The
// original crate narrows Align to a fixed per-opcode constant at the type
// level (MemArg8/16/32/64); this package keeps it a plain field instead,
// since nothing here validates alignment semantics (an explicit non-goal:
// this is a codec, not a validator).
type AtomicMemOp struct {
	Opcode byte
	Arg    MemArg
}

func (a AtomicMemOp) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, a.Opcode); err != nil {
		return err
	}
	return a.Arg.EncodeWasm(w)
}

// DecodeAtomicOp reads the LEB128 atomic sub-opcode and its MemArg operand.
func DecodeAtomicOp(r io.Reader) (AtomicOp, error) {
	sub, err := readU32(r)
	if err != nil {
		return nil, wrapPath(err, fieldPath("subopcode"))
	}
	for _, op := range atomicOpcodes {
		if sub == uint32(op) {
			var arg MemArg
			if err := arg.DecodeWasm(r); err != nil {
				return nil, err
			}
			return AtomicMemOp{Opcode: op, Arg: arg}, nil
		}
	}
	return nil, errUnsupportedDiscriminant("AtomicOp", int64(sub))
}
