package wasm

import "io"

// Instruction is any single WebAssembly instruction (spec §4.5). Encoding
// a value writes its leading opcode byte followed by its operands, if any.
type Instruction interface {
	Encoder
}

// Leading opcode bytes, named after the mnemonic they encode. Structured
// control instructions get their own named constants because the stream
// decoder inspects them directly for block-depth tracking.
const (
	opUnreachable     = 0x00
	opNop             = 0x01
	opBlockStart      = 0x02
	opLoopStart       = 0x03
	opIfStart         = 0x04
	opIfElse          = 0x05
	opEnd             = 0x0B
	opBr              = 0x0C
	opBrIf            = 0x0D
	opBrTable         = 0x0E
	opReturn          = 0x0F
	opCall            = 0x10
	opCallIndirect    = 0x11
	opDrop            = 0x1A
	opSelect          = 0x1B
	opSelectWithTypes = 0x1C
	opLocalGet        = 0x20
	opLocalSet        = 0x21
	opLocalTee        = 0x22
	opGlobalGet       = 0x23
	opGlobalSet       = 0x24
	opTableGet        = 0x25
	opTableSet        = 0x26
	opI32Load         = 0x28
	opI64Load         = 0x29
	opF32Load         = 0x2A
	opF64Load         = 0x2B
	opI32Load8S       = 0x2C
	opI32Load8U       = 0x2D
	opI32Load16S      = 0x2E
	opI32Load16U      = 0x2F
	opI64Load8S       = 0x30
	opI64Load8U       = 0x31
	opI64Load16S      = 0x32
	opI64Load16U      = 0x33
	opI64Load32S      = 0x34
	opI64Load32U      = 0x35
	opI32Store        = 0x36
	opI64Store        = 0x37
	opF32Store        = 0x38
	opF64Store        = 0x39
	opI32Store8       = 0x3A
	opI32Store16      = 0x3B
	opI64Store8       = 0x3C
	opI64Store16      = 0x3D
	opI64Store32      = 0x3E
	opMemorySize      = 0x3F
	opMemoryGrow      = 0x40
	opI32Const        = 0x41
	opI64Const        = 0x42
	opF32Const        = 0x43
	opF64Const        = 0x44
	opRefNull         = 0xD0
	opRefIsNull       = 0xD1
	opRefFunc         = 0xD2
	opMisc            = 0xFC
	opSIMD            = 0xFD
	opAtomic          = 0xFE
)

// simpleOpcodes names every instruction with no operands, covering the
// comparison, numeric, and conversion opcodes (spec §4.5's "simple
// instructions"). The byte is both the wire discriminant and the value
// stored in SimpleInstruction.
const (
	opI32Eqz             = 0x45
	opI32Eq              = 0x46
	opI32Ne              = 0x47
	opI32LtS             = 0x48
	opI32LtU             = 0x49
	opI32GtS             = 0x4A
	opI32GtU             = 0x4B
	opI32LeS             = 0x4C
	opI32LeU             = 0x4D
	opI32GeS             = 0x4E
	opI32GeU             = 0x4F
	opI64Eqz             = 0x50
	opI64Eq              = 0x51
	opI64Ne              = 0x52
	opI64LtS             = 0x53
	opI64LtU             = 0x54
	opI64GtS             = 0x55
	opI64GtU             = 0x56
	opI64LeS             = 0x57
	opI64LeU             = 0x58
	opI64GeS             = 0x59
	opI64GeU             = 0x5A
	opF32Eq              = 0x5B
	opF32Ne              = 0x5C
	opF32Lt              = 0x5D
	opF32Gt              = 0x5E
	opF32Le              = 0x5F
	opF32Ge              = 0x60
	opF64Eq              = 0x61
	opF64Ne              = 0x62
	opF64Lt              = 0x63
	opF64Gt              = 0x64
	opF64Le              = 0x65
	opF64Ge              = 0x66
	opI32Clz             = 0x67
	opI32Ctz             = 0x68
	opI32PopCnt          = 0x69
	opI32Add             = 0x6A
	opI32Sub             = 0x6B
	opI32Mul             = 0x6C
	opI32DivS            = 0x6D
	opI32DivU            = 0x6E
	opI32RemS            = 0x6F
	opI32RemU            = 0x70
	opI32And             = 0x71
	opI32Or              = 0x72
	opI32Xor             = 0x73
	opI32Shl             = 0x74
	opI32ShrS            = 0x75
	opI32ShrU            = 0x76
	opI32RotL            = 0x77
	opI32RotR            = 0x78
	opI64Clz             = 0x79
	opI64Ctz             = 0x7A
	opI64PopCnt          = 0x7B
	opI64Add             = 0x7C
	opI64Sub             = 0x7D
	opI64Mul             = 0x7E
	opI64DivS            = 0x7F
	opI64DivU            = 0x80
	opI64RemS            = 0x81
	opI64RemU            = 0x82
	opI64And             = 0x83
	opI64Or              = 0x84
	opI64Xor             = 0x85
	opI64Shl             = 0x86
	opI64ShrS            = 0x87
	opI64ShrU            = 0x88
	opI64RotL            = 0x89
	opI64RotR            = 0x8A
	opF32Abs             = 0x8B
	opF32Neg             = 0x8C
	opF32Ceil            = 0x8D
	opF32Floor           = 0x8E
	opF32Trunc           = 0x8F
	opF32Nearest         = 0x90
	opF32Sqrt            = 0x91
	opF32Add             = 0x92
	opF32Sub             = 0x93
	opF32Mul             = 0x94
	opF32Div             = 0x95
	opF32Min             = 0x96
	opF32Max             = 0x97
	opF32CopySign        = 0x98
	opF64Abs             = 0x99
	opF64Neg             = 0x9A
	opF64Ceil            = 0x9B
	opF64Floor           = 0x9C
	opF64Trunc           = 0x9D
	opF64Nearest         = 0x9E
	opF64Sqrt            = 0x9F
	opF64Add             = 0xA0
	opF64Sub             = 0xA1
	opF64Mul             = 0xA2
	opF64Div             = 0xA3
	opF64Min             = 0xA4
	opF64Max             = 0xA5
	opF64CopySign        = 0xA6
	opI32WrapI64         = 0xA7
	opI32TruncF32S       = 0xA8
	opI32TruncF32U       = 0xA9
	opI32TruncF64S       = 0xAA
	opI32TruncF64U       = 0xAB
	opI64ExtendI32S      = 0xAC
	opI64ExtendI32U      = 0xAD
	opI64TruncF32S       = 0xAE
	opI64TruncF32U       = 0xAF
	opI64TruncF64S       = 0xB0
	opI64TruncF64U       = 0xB1
	opF32ConvertI32S     = 0xB2
	opF32ConvertI32U     = 0xB3
	opF32ConvertI64S     = 0xB4
	opF32ConvertI64U     = 0xB5
	opF32DemoteF64       = 0xB6
	opF64ConvertI32S     = 0xB7
	opF64ConvertI32U     = 0xB8
	opF64ConvertI64S     = 0xB9
	opF64ConvertI64U     = 0xBA
	opF64PromoteF32      = 0xBB
	opI32ReinterpretF32  = 0xBC
	opI64ReinterpretF64  = 0xBD
	opF32ReinterpretI32  = 0xBE
	opF64ReinterpretI64  = 0xBF
	opI32Extend8S        = 0xC0
	opI32Extend16S       = 0xC1
	opI64Extend8S        = 0xC2
	opI64Extend16S       = 0xC3
	opI64Extend32S       = 0xC4
)

// SimpleInstruction is any instruction consisting of nothing but its
// opcode byte.
type SimpleInstruction byte

func (s SimpleInstruction) EncodeWasm(w io.Writer) error { return writeByte(w, byte(s)) }

var simpleInstructionOpcodes = []byte{
	opUnreachable, opNop, opIfElse, opEnd, opReturn, opDrop, opSelect,
	opRefIsNull,
	opI32Eqz, opI32Eq, opI32Ne, opI32LtS, opI32LtU, opI32GtS, opI32GtU, opI32LeS, opI32LeU, opI32GeS, opI32GeU,
	opI64Eqz, opI64Eq, opI64Ne, opI64LtS, opI64LtU, opI64GtS, opI64GtU, opI64LeS, opI64LeU, opI64GeS, opI64GeU,
	opF32Eq, opF32Ne, opF32Lt, opF32Gt, opF32Le, opF32Ge,
	opF64Eq, opF64Ne, opF64Lt, opF64Gt, opF64Le, opF64Ge,
	opI32Clz, opI32Ctz, opI32PopCnt, opI32Add, opI32Sub, opI32Mul, opI32DivS, opI32DivU, opI32RemS, opI32RemU,
	opI32And, opI32Or, opI32Xor, opI32Shl, opI32ShrS, opI32ShrU, opI32RotL, opI32RotR,
	opI64Clz, opI64Ctz, opI64PopCnt, opI64Add, opI64Sub, opI64Mul, opI64DivS, opI64DivU, opI64RemS, opI64RemU,
	opI64And, opI64Or, opI64Xor, opI64Shl, opI64ShrS, opI64ShrU, opI64RotL, opI64RotR,
	opF32Abs, opF32Neg, opF32Ceil, opF32Floor, opF32Trunc, opF32Nearest, opF32Sqrt,
	opF32Add, opF32Sub, opF32Mul, opF32Div, opF32Min, opF32Max, opF32CopySign,
	opF64Abs, opF64Neg, opF64Ceil, opF64Floor, opF64Trunc, opF64Nearest, opF64Sqrt,
	opF64Add, opF64Sub, opF64Mul, opF64Div, opF64Min, opF64Max, opF64CopySign,
	opI32WrapI64, opI32TruncF32S, opI32TruncF32U, opI32TruncF64S, opI32TruncF64U,
	opI64ExtendI32S, opI64ExtendI32U, opI64TruncF32S, opI64TruncF32U, opI64TruncF64S, opI64TruncF64U,
	opF32ConvertI32S, opF32ConvertI32U, opF32ConvertI64S, opF32ConvertI64U, opF32DemoteF64,
	opF64ConvertI32S, opF64ConvertI32U, opF64ConvertI64S, opF64ConvertI64U, opF64PromoteF32,
	opI32ReinterpretF32, opI64ReinterpretF64, opF32ReinterpretI32, opF64ReinterpretI64,
	opI32Extend8S, opI32Extend16S, opI64Extend8S, opI64Extend16S, opI64Extend32S,
}

// MemArg is the alignment hint and offset carried by every load/store
// instruction.
type MemArg struct {
	Align  uint32
	Offset uint32
}

func (m MemArg) EncodeWasm(w io.Writer) error {
	if err := writeU32(w, m.Align); err != nil {
		return err
	}
	return writeU32(w, m.Offset)
}

func (m *MemArg) DecodeWasm(r io.Reader) error {
	align, err := readU32(r)
	if err != nil {
		return wrapPath(err, fieldPath("align"))
	}
	offset, err := readU32(r)
	if err != nil {
		return wrapPath(err, fieldPath("offset"))
	}
	m.Align, m.Offset = align, offset
	return nil
}

// CallIndirectArgs is the operand of a call_indirect instruction.
type CallIndirectArgs struct {
	Type  TypeIdx
	Table TableIdx
}

func (a CallIndirectArgs) EncodeWasm(w io.Writer) error {
	if err := a.Type.EncodeWasm(w); err != nil {
		return err
	}
	return a.Table.EncodeWasm(w)
}

func (a *CallIndirectArgs) DecodeWasm(r io.Reader) error {
	if err := a.Type.DecodeWasm(r); err != nil {
		return wrapPath(err, fieldPath("ty"))
	}
	if err := a.Table.DecodeWasm(r); err != nil {
		return wrapPath(err, fieldPath("table"))
	}
	return nil
}

// Below are the instructions that carry an operand. Each EncodeWasm writes
// its own leading opcode byte; each is decoded by a closure registered in
// the discriminant table further down.

type InstrBlockStart struct{ Type BlockType }
type InstrLoopStart struct{ Type BlockType }
type InstrIfStart struct{ Type BlockType }
type InstrBr struct{ Label LabelIdx }
type InstrBrIf struct{ Label LabelIdx }
type InstrBrTable struct {
	Branches  []LabelIdx
	Otherwise LabelIdx
}
type InstrCall struct{ Func FuncIdx }
type InstrCallIndirect struct{ Args CallIndirectArgs }
type InstrSelectWithTypes struct{ Types []ValueType }
type InstrLocalGet struct{ Local LocalIdx }
type InstrLocalSet struct{ Local LocalIdx }
type InstrLocalTee struct{ Local LocalIdx }
type InstrGlobalGet struct{ Global GlobalIdx }
type InstrGlobalSet struct{ Global GlobalIdx }
type InstrTableGet struct{ Table TableIdx }
type InstrTableSet struct{ Table TableIdx }
type InstrLoad struct {
	Opcode byte
	Arg    MemArg
}
type InstrStore struct {
	Opcode byte
	Arg    MemArg
}
type InstrMemorySize struct{ Mem MemIdx }
type InstrMemoryGrow struct{ Mem MemIdx }
type InstrI32Const struct{ Value int32 }
type InstrI64Const struct{ Value int64 }
type InstrF32Const struct{ Value FloatConst32 }
type InstrF64Const struct{ Value FloatConst64 }
type InstrRefNull struct{ Type RefType }
type InstrRefFunc struct{ Func FuncIdx }
type InstrMisc struct{ Op MiscOp }
type InstrSIMD struct{ Op SIMDOp }
type InstrAtomic struct{ Op AtomicOp }

func (i InstrBlockStart) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opBlockStart); err != nil {
		return err
	}
	return i.Type.EncodeWasm(w)
}
func (i InstrLoopStart) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opLoopStart); err != nil {
		return err
	}
	return i.Type.EncodeWasm(w)
}
func (i InstrIfStart) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opIfStart); err != nil {
		return err
	}
	return i.Type.EncodeWasm(w)
}
func (i InstrBr) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opBr); err != nil {
		return err
	}
	return i.Label.EncodeWasm(w)
}
func (i InstrBrIf) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opBrIf); err != nil {
		return err
	}
	return i.Label.EncodeWasm(w)
}
func (i InstrBrTable) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opBrTable); err != nil {
		return err
	}
	if err := EncodeVec(w, i.Branches); err != nil {
		return wrapPath(err, fieldPath("branches"))
	}
	return i.Otherwise.EncodeWasm(w)
}
func (i InstrCall) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opCall); err != nil {
		return err
	}
	return i.Func.EncodeWasm(w)
}
func (i InstrCallIndirect) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opCallIndirect); err != nil {
		return err
	}
	return i.Args.EncodeWasm(w)
}
func (i InstrSelectWithTypes) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opSelectWithTypes); err != nil {
		return err
	}
	return EncodeVec(w, i.Types)
}
func (i InstrLocalGet) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opLocalGet); err != nil {
		return err
	}
	return i.Local.EncodeWasm(w)
}
func (i InstrLocalSet) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opLocalSet); err != nil {
		return err
	}
	return i.Local.EncodeWasm(w)
}
func (i InstrLocalTee) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opLocalTee); err != nil {
		return err
	}
	return i.Local.EncodeWasm(w)
}
func (i InstrGlobalGet) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opGlobalGet); err != nil {
		return err
	}
	return i.Global.EncodeWasm(w)
}
func (i InstrGlobalSet) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opGlobalSet); err != nil {
		return err
	}
	return i.Global.EncodeWasm(w)
}
func (i InstrTableGet) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opTableGet); err != nil {
		return err
	}
	return i.Table.EncodeWasm(w)
}
func (i InstrTableSet) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opTableSet); err != nil {
		return err
	}
	return i.Table.EncodeWasm(w)
}
func (i InstrLoad) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, i.Opcode); err != nil {
		return err
	}
	return i.Arg.EncodeWasm(w)
}
func (i InstrStore) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, i.Opcode); err != nil {
		return err
	}
	return i.Arg.EncodeWasm(w)
}
func (i InstrMemorySize) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opMemorySize); err != nil {
		return err
	}
	return i.Mem.EncodeWasm(w)
}
func (i InstrMemoryGrow) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opMemoryGrow); err != nil {
		return err
	}
	return i.Mem.EncodeWasm(w)
}
func (i InstrI32Const) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opI32Const); err != nil {
		return err
	}
	return writeI32(w, i.Value)
}
func (i InstrI64Const) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opI64Const); err != nil {
		return err
	}
	return writeI64(w, i.Value)
}
func (i InstrF32Const) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opF32Const); err != nil {
		return err
	}
	return i.Value.EncodeWasm(w)
}
func (i InstrF64Const) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opF64Const); err != nil {
		return err
	}
	return i.Value.EncodeWasm(w)
}
func (i InstrRefNull) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opRefNull); err != nil {
		return err
	}
	return i.Type.EncodeWasm(w)
}
func (i InstrRefFunc) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opRefFunc); err != nil {
		return err
	}
	return i.Func.EncodeWasm(w)
}
func (i InstrMisc) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opMisc); err != nil {
		return err
	}
	return i.Op.EncodeWasm(w)
}
func (i InstrSIMD) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opSIMD); err != nil {
		return err
	}
	return i.Op.EncodeWasm(w)
}
func (i InstrAtomic) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, opAtomic); err != nil {
		return err
	}
	return i.Op.EncodeWasm(w)
}

// decodeInstructionEntries is the discriminant table used by the stream
// decoder: specific opcodes first, then the catch-all Misc/SIMD/Atomic
// prefix bytes whose real opcode lives in a following LEB128 sub-opcode.
var decodeInstructionEntries = buildInstructionEntries()

func buildInstructionEntries() []DiscriminantEntry[Instruction] {
	entries := make([]DiscriminantEntry[Instruction], 0, 256)

	byteOp := func(op byte, decode func(r io.Reader) (Instruction, error)) {
		entries = append(entries, DiscriminantEntry[Instruction]{
			Match:  func(d byte) bool { return d == op },
			Decode: func(r io.Reader, _ byte) (Instruction, error) { return decode(r) },
		})
	}

	for _, op := range simpleInstructionOpcodes {
		op := op
		byteOp(op, func(io.Reader) (Instruction, error) { return SimpleInstruction(op), nil })
	}

	byteOp(opBlockStart, func(r io.Reader) (Instruction, error) {
		var t BlockType
		if err := t.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("type"))
		}
		return InstrBlockStart{Type: t}, nil
	})
	byteOp(opLoopStart, func(r io.Reader) (Instruction, error) {
		var t BlockType
		if err := t.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("type"))
		}
		return InstrLoopStart{Type: t}, nil
	})
	byteOp(opIfStart, func(r io.Reader) (Instruction, error) {
		var t BlockType
		if err := t.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("type"))
		}
		return InstrIfStart{Type: t}, nil
	})
	byteOp(opBr, func(r io.Reader) (Instruction, error) {
		var l LabelIdx
		if err := l.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("label"))
		}
		return InstrBr{Label: l}, nil
	})
	byteOp(opBrIf, func(r io.Reader) (Instruction, error) {
		var l LabelIdx
		if err := l.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("label"))
		}
		return InstrBrIf{Label: l}, nil
	})
	byteOp(opBrTable, func(r io.Reader) (Instruction, error) {
		branches, err := DecodeVec[LabelIdx, *LabelIdx](r)
		if err != nil {
			return nil, wrapPath(err, fieldPath("branches"))
		}
		var otherwise LabelIdx
		if err := otherwise.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("otherwise"))
		}
		return InstrBrTable{Branches: branches, Otherwise: otherwise}, nil
	})
	byteOp(opCall, func(r io.Reader) (Instruction, error) {
		var f FuncIdx
		if err := f.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("func"))
		}
		return InstrCall{Func: f}, nil
	})
	byteOp(opCallIndirect, func(r io.Reader) (Instruction, error) {
		var a CallIndirectArgs
		if err := a.DecodeWasm(r); err != nil {
			return nil, err
		}
		return InstrCallIndirect{Args: a}, nil
	})
	byteOp(opSelectWithTypes, func(r io.Reader) (Instruction, error) {
		types, err := DecodeVec[ValueType, *ValueType](r)
		if err != nil {
			return nil, wrapPath(err, fieldPath("types"))
		}
		return InstrSelectWithTypes{Types: types}, nil
	})
	byteOp(opLocalGet, func(r io.Reader) (Instruction, error) {
		var l LocalIdx
		if err := l.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("local"))
		}
		return InstrLocalGet{Local: l}, nil
	})
	byteOp(opLocalSet, func(r io.Reader) (Instruction, error) {
		var l LocalIdx
		if err := l.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("local"))
		}
		return InstrLocalSet{Local: l}, nil
	})
	byteOp(opLocalTee, func(r io.Reader) (Instruction, error) {
		var l LocalIdx
		if err := l.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("local"))
		}
		return InstrLocalTee{Local: l}, nil
	})
	byteOp(opGlobalGet, func(r io.Reader) (Instruction, error) {
		var g GlobalIdx
		if err := g.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("global"))
		}
		return InstrGlobalGet{Global: g}, nil
	})
	byteOp(opGlobalSet, func(r io.Reader) (Instruction, error) {
		var g GlobalIdx
		if err := g.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("global"))
		}
		return InstrGlobalSet{Global: g}, nil
	})
	byteOp(opTableGet, func(r io.Reader) (Instruction, error) {
		var t TableIdx
		if err := t.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("table"))
		}
		return InstrTableGet{Table: t}, nil
	})
	byteOp(opTableSet, func(r io.Reader) (Instruction, error) {
		var t TableIdx
		if err := t.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("table"))
		}
		return InstrTableSet{Table: t}, nil
	})

	loadStoreOps := []byte{
		opI32Load, opI64Load, opF32Load, opF64Load,
		opI32Load8S, opI32Load8U, opI32Load16S, opI32Load16U,
		opI64Load8S, opI64Load8U, opI64Load16S, opI64Load16U, opI64Load32S, opI64Load32U,
	}
	for _, op := range loadStoreOps {
		op := op
		byteOp(op, func(r io.Reader) (Instruction, error) {
			var arg MemArg
			if err := arg.DecodeWasm(r); err != nil {
				return nil, err
			}
			return InstrLoad{Opcode: op, Arg: arg}, nil
		})
	}
	storeOps := []byte{
		opI32Store, opI64Store, opF32Store, opF64Store,
		opI32Store8, opI32Store16, opI64Store8, opI64Store16, opI64Store32,
	}
	for _, op := range storeOps {
		op := op
		byteOp(op, func(r io.Reader) (Instruction, error) {
			var arg MemArg
			if err := arg.DecodeWasm(r); err != nil {
				return nil, err
			}
			return InstrStore{Opcode: op, Arg: arg}, nil
		})
	}

	byteOp(opMemorySize, func(r io.Reader) (Instruction, error) {
		var m MemIdx
		if err := m.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("mem"))
		}
		return InstrMemorySize{Mem: m}, nil
	})
	byteOp(opMemoryGrow, func(r io.Reader) (Instruction, error) {
		var m MemIdx
		if err := m.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("mem"))
		}
		return InstrMemoryGrow{Mem: m}, nil
	})
	byteOp(opI32Const, func(r io.Reader) (Instruction, error) {
		v, err := readI32(r)
		if err != nil {
			return nil, wrapPath(err, fieldPath("value"))
		}
		return InstrI32Const{Value: v}, nil
	})
	byteOp(opI64Const, func(r io.Reader) (Instruction, error) {
		v, err := readI64(r)
		if err != nil {
			return nil, wrapPath(err, fieldPath("value"))
		}
		return InstrI64Const{Value: v}, nil
	})
	byteOp(opF32Const, func(r io.Reader) (Instruction, error) {
		var f FloatConst32
		if err := f.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("value"))
		}
		return InstrF32Const{Value: f}, nil
	})
	byteOp(opF64Const, func(r io.Reader) (Instruction, error) {
		var f FloatConst64
		if err := f.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("value"))
		}
		return InstrF64Const{Value: f}, nil
	})
	byteOp(opRefNull, func(r io.Reader) (Instruction, error) {
		var t RefType
		if err := t.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("type"))
		}
		return InstrRefNull{Type: t}, nil
	})
	byteOp(opRefFunc, func(r io.Reader) (Instruction, error) {
		var f FuncIdx
		if err := f.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("func"))
		}
		return InstrRefFunc{Func: f}, nil
	})
	byteOp(opMisc, func(r io.Reader) (Instruction, error) {
		op, err := DecodeMiscOp(r)
		if err != nil {
			return nil, wrapPath(err, variantPath("misc"))
		}
		return InstrMisc{Op: op}, nil
	})
	byteOp(opSIMD, func(r io.Reader) (Instruction, error) {
		op, err := DecodeSIMDOp(r)
		if err != nil {
			return nil, wrapPath(err, variantPath("simd"))
		}
		return InstrSIMD{Op: op}, nil
	})
	byteOp(opAtomic, func(r io.Reader) (Instruction, error) {
		op, err := DecodeAtomicOp(r)
		if err != nil {
			return nil, wrapPath(err, variantPath("atomic"))
		}
		return InstrAtomic{Op: op}, nil
	})

	return entries
}

// decodeInstructionWithDiscriminant reads a single instruction whose discriminant byte has
// already been consumed by the caller (the stream decoder needs it first
// to track block depth).
func decodeInstructionWithDiscriminant(r io.Reader, discriminant byte) (Instruction, error) {
	for i := range decodeInstructionEntries {
		e := &decodeInstructionEntries[i]
		if e.Match(discriminant) {
			return e.Decode(r, discriminant)
		}
	}
	return nil, errUnsupportedDiscriminant("Instruction", int64(discriminant))
}

// DecodeExpression reads a non-recursive instruction stream terminated by
// a matching End: BlockStart/LoopStart/IfStart increase the nesting depth
// and End decreases it, so the sequence unwinds to the top-level End
// without recursive descent (spec §4.5).
func DecodeExpression(r io.Reader) ([]Instruction, error) {
	var out []Instruction
	depth := 0
	for {
		d, err := readByte(r)
		if err != nil {
			return nil, err
		}
		switch d {
		case opBlockStart, opLoopStart, opIfStart:
			depth++
		case opEnd:
			if depth == 0 {
				return out, nil
			}
			depth--
		}
		instr, err := decodeInstructionWithDiscriminant(r, d)
		if err != nil {
			return nil, wrapPath(err, indexPath(len(out)))
		}
		out = append(out, instr)
	}
}

// EncodeExpression writes every instruction followed by the terminating
// End byte.
func EncodeExpression(w io.Writer, instrs []Instruction) error {
	for _, instr := range instrs {
		if err := instr.EncodeWasm(w); err != nil {
			return err
		}
	}
	return writeByte(w, opEnd)
}
