package wasm

import "io"

// MiscOp is one operation of the 0xFC "misc" instruction prefix: the
// saturating truncations and the bulk memory/table operations (spec §4.5,
// grounded on the original crate's misc opcode table). Unlike the
// top-level opcode, the misc sub-opcode is itself LEB128-encoded.
type MiscOp interface {
	Encoder
}

const (
	miscI32TruncSatF32S = 0x00
	miscI32TruncSatF32U = 0x01
	miscI32TruncSatF64S = 0x02
	miscI32TruncSatF64U = 0x03
	miscI64TruncSatF32S = 0x04
	miscI64TruncSatF32U = 0x05
	miscI64TruncSatF64S = 0x06
	miscI64TruncSatF64U = 0x07
	miscMemoryInit      = 0x08
	miscDataDrop        = 0x09
	miscMemoryCopy      = 0x0A
	miscMemoryFill      = 0x0B
	miscTableInit       = 0x0C
	miscElemDrop        = 0x0D
	miscTableCopy       = 0x0E
	miscTableGrow       = 0x0F
	miscTableSize       = 0x10
	miscTableFill       = 0x11
)

var simpleMiscOpcodes = []uint32{
	miscI32TruncSatF32S, miscI32TruncSatF32U, miscI32TruncSatF64S, miscI32TruncSatF64U,
	miscI64TruncSatF32S, miscI64TruncSatF32U, miscI64TruncSatF64S, miscI64TruncSatF64U,
}

// MiscSimple is a misc op with no operand: the eight saturating
// truncation conversions.
type MiscSimple uint32

func (m MiscSimple) EncodeWasm(w io.Writer) error { return writeU32(w, uint32(m)) }

type MiscMemoryInit struct {
	Data DataIdx
	Mem  MemIdx
}
type MiscDataDrop struct{ Data DataIdx }
type MiscMemoryCopy struct {
	Dest MemIdx
	Src  MemIdx
}
type MiscMemoryFill struct{ Mem MemIdx }
type MiscTableInit struct {
	Elem  ElemIdx
	Table TableIdx
}
type MiscElemDrop struct{ Elem ElemIdx }
type MiscTableCopy struct {
	Dest TableIdx
	Src  TableIdx
}
type MiscTableGrow struct{ Table TableIdx }
type MiscTableSize struct{ Table TableIdx }
type MiscTableFill struct{ Table TableIdx }

func (m MiscMemoryInit) EncodeWasm(w io.Writer) error {
	if err := writeU32(w, miscMemoryInit); err != nil {
		return err
	}
	if err := m.Data.EncodeWasm(w); err != nil {
		return err
	}
	return m.Mem.EncodeWasm(w)
}
func (m MiscDataDrop) EncodeWasm(w io.Writer) error {
	if err := writeU32(w, miscDataDrop); err != nil {
		return err
	}
	return m.Data.EncodeWasm(w)
}
func (m MiscMemoryCopy) EncodeWasm(w io.Writer) error {
	if err := writeU32(w, miscMemoryCopy); err != nil {
		return err
	}
	if err := m.Dest.EncodeWasm(w); err != nil {
		return err
	}
	return m.Src.EncodeWasm(w)
}
func (m MiscMemoryFill) EncodeWasm(w io.Writer) error {
	if err := writeU32(w, miscMemoryFill); err != nil {
		return err
	}
	return m.Mem.EncodeWasm(w)
}
func (m MiscTableInit) EncodeWasm(w io.Writer) error {
	if err := writeU32(w, miscTableInit); err != nil {
		return err
	}
	if err := m.Elem.EncodeWasm(w); err != nil {
		return err
	}
	return m.Table.EncodeWasm(w)
}
func (m MiscElemDrop) EncodeWasm(w io.Writer) error {
	if err := writeU32(w, miscElemDrop); err != nil {
		return err
	}
	return m.Elem.EncodeWasm(w)
}
func (m MiscTableCopy) EncodeWasm(w io.Writer) error {
	if err := writeU32(w, miscTableCopy); err != nil {
		return err
	}
	if err := m.Dest.EncodeWasm(w); err != nil {
		return err
	}
	return m.Src.EncodeWasm(w)
}
func (m MiscTableGrow) EncodeWasm(w io.Writer) error {
	if err := writeU32(w, miscTableGrow); err != nil {
		return err
	}
	return m.Table.EncodeWasm(w)
}
func (m MiscTableSize) EncodeWasm(w io.Writer) error {
	if err := writeU32(w, miscTableSize); err != nil {
		return err
	}
	return m.Table.EncodeWasm(w)
}
func (m MiscTableFill) EncodeWasm(w io.Writer) error {
	if err := writeU32(w, miscTableFill); err != nil {
		return err
	}
	return m.Table.EncodeWasm(w)
}

// DecodeMiscOp reads the LEB128 sub-opcode and dispatches to the matching
// misc operation.
func DecodeMiscOp(r io.Reader) (MiscOp, error) {
	sub, err := readU32(r)
	if err != nil {
		return nil, wrapPath(err, fieldPath("subopcode"))
	}
	for _, simple := range simpleMiscOpcodes {
		if sub == simple {
			return MiscSimple(sub), nil
		}
	}
	switch sub {
	case miscMemoryInit:
		var data DataIdx
		var mem MemIdx
		if err := data.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("data"))
		}
		if err := mem.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("mem"))
		}
		return MiscMemoryInit{Data: data, Mem: mem}, nil
	case miscDataDrop:
		var data DataIdx
		if err := data.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("data"))
		}
		return MiscDataDrop{Data: data}, nil
	case miscMemoryCopy:
		var dest, src MemIdx
		if err := dest.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("dest"))
		}
		if err := src.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("src"))
		}
		return MiscMemoryCopy{Dest: dest, Src: src}, nil
	case miscMemoryFill:
		var mem MemIdx
		if err := mem.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("mem"))
		}
		return MiscMemoryFill{Mem: mem}, nil
	case miscTableInit:
		var elem ElemIdx
		var table TableIdx
		if err := elem.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("elem"))
		}
		if err := table.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("table"))
		}
		return MiscTableInit{Elem: elem, Table: table}, nil
	case miscElemDrop:
		var elem ElemIdx
		if err := elem.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("elem"))
		}
		return MiscElemDrop{Elem: elem}, nil
	case miscTableCopy:
		var dest, src TableIdx
		if err := dest.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("dest"))
		}
		if err := src.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("src"))
		}
		return MiscTableCopy{Dest: dest, Src: src}, nil
	case miscTableGrow:
		var table TableIdx
		if err := table.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("table"))
		}
		return MiscTableGrow{Table: table}, nil
	case miscTableSize:
		var table TableIdx
		if err := table.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("table"))
		}
		return MiscTableSize{Table: table}, nil
	case miscTableFill:
		var table TableIdx
		if err := table.DecodeWasm(r); err != nil {
			return nil, wrapPath(err, fieldPath("table"))
		}
		return MiscTableFill{Table: table}, nil
	default:
		return nil, errUnsupportedDiscriminant("MiscOp", int64(sub))
	}
}
