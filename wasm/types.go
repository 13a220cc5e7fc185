package wasm

import (
	"io"

	"github.com/vertexdlt/wasmbin/leb128"
)

// ValueType is one of the value types a local, global, or stack slot can
// hold (spec §4.6). Each is a single reserved byte on the wire.
type ValueType byte

const (
	ValueTypeI32  ValueType = 0x7F
	ValueTypeI64  ValueType = 0x7E
	ValueTypeF32  ValueType = 0x7D
	ValueTypeF64  ValueType = 0x7C
	ValueTypeV128 ValueType = 0x7B
)

func (t ValueType) String() string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeV128:
		return "v128"
	default:
		return "unknown"
	}
}

func (t ValueType) EncodeWasm(w io.Writer) error { return writeByte(w, byte(t)) }

func (t *ValueType) DecodeWasm(r io.Reader) error {
	b, err := readByte(r)
	if err != nil {
		return err
	}
	switch ValueType(b) {
	case ValueTypeI32, ValueTypeI64, ValueTypeF32, ValueTypeF64, ValueTypeV128:
		*t = ValueType(b)
		return nil
	default:
		return errUnsupportedDiscriminant("ValueType", int64(b))
	}
}

// RefType is a reference type usable in tables and as a value (spec §4.6).
type RefType byte

const (
	RefTypeFunc   RefType = 0x70
	RefTypeExtern RefType = 0x6F
)

func (t RefType) EncodeWasm(w io.Writer) error { return writeByte(w, byte(t)) }

func (t *RefType) DecodeWasm(r io.Reader) error {
	b, err := readByte(r)
	if err != nil {
		return err
	}
	switch RefType(b) {
	case RefTypeFunc, RefTypeExtern:
		*t = RefType(b)
		return nil
	default:
		return errUnsupportedDiscriminant("RefType", int64(b))
	}
}

// BlockType is the type annotation on Block/Loop/If: empty, a single
// result value type, or (spec §4.6) a type index into the module's type
// section for blocks whose signature takes parameters or returns more
// than one result. On the wire this is 0x40 for Empty, a ValueType
// discriminant for Value, or otherwise a signed LEB128 whose non-negative
// value is the type index.
type BlockType struct {
	Empty bool
	Value ValueType
	Type  *TypeIdx
}

const blockTypeEmptyByte = 0x40

func (t BlockType) EncodeWasm(w io.Writer) error {
	if t.Empty {
		return writeByte(w, blockTypeEmptyByte)
	}
	if t.Type != nil {
		return leb128.WriteInt64(w, int64(*t.Type))
	}
	return t.Value.EncodeWasm(w)
}

func (t *BlockType) DecodeWasm(r io.Reader) error {
	b, err := readByte(r)
	if err != nil {
		return err
	}
	if b == blockTypeEmptyByte {
		*t = BlockType{Empty: true}
		return nil
	}
	switch ValueType(b) {
	case ValueTypeI32, ValueTypeI64, ValueTypeF32, ValueTypeF64, ValueTypeV128:
		*t = BlockType{Value: ValueType(b)}
		return nil
	}
	idx, err := leb128.ReadInt33From(r, b)
	if err != nil {
		return leb128Err(err)
	}
	if idx < 0 {
		return errUnsupportedDiscriminant("BlockType", idx)
	}
	ti := TypeIdx(idx)
	*t = BlockType{Type: &ti}
	return nil
}

// FuncType is a function signature: parameter types followed by result
// types, prefixed with the 0x60 form byte (spec §4.6).
type FuncType struct {
	Params  []ValueType
	Results []ValueType
}

const funcTypeFormByte = 0x60

func (t FuncType) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, funcTypeFormByte); err != nil {
		return err
	}
	if err := EncodeVec(w, t.Params); err != nil {
		return wrapPath(err, fieldPath("params"))
	}
	if err := EncodeVec(w, t.Results); err != nil {
		return wrapPath(err, fieldPath("results"))
	}
	return nil
}

func (t *FuncType) DecodeWasm(r io.Reader) error {
	b, err := readByte(r)
	if err != nil {
		return err
	}
	if b != funcTypeFormByte {
		return errUnsupportedDiscriminant("FuncType", int64(b))
	}
	params, err := DecodeVec[ValueType, *ValueType](r)
	if err != nil {
		return wrapPath(err, fieldPath("params"))
	}
	results, err := DecodeVec[ValueType, *ValueType](r)
	if err != nil {
		return wrapPath(err, fieldPath("results"))
	}
	t.Params, t.Results = params, results
	return nil
}

// Limits bounds a table or memory's size: a required minimum and an
// optional maximum (spec §4.6). The wire form is a flag byte followed by
// one or two u32s.
type Limits struct {
	Min uint32
	Max *uint32
}

func (l Limits) EncodeWasm(w io.Writer) error {
	if l.Max == nil {
		if err := writeByte(w, 0x00); err != nil {
			return err
		}
		return writeU32(w, l.Min)
	}
	if err := writeByte(w, 0x01); err != nil {
		return err
	}
	if err := writeU32(w, l.Min); err != nil {
		return err
	}
	return writeU32(w, *l.Max)
}

func (l *Limits) DecodeWasm(r io.Reader) error {
	flag, err := readByte(r)
	if err != nil {
		return err
	}
	min, err := readU32(r)
	if err != nil {
		return wrapPath(err, fieldPath("min"))
	}
	switch flag {
	case 0x00:
		*l = Limits{Min: min}
		return nil
	case 0x01:
		max, err := readU32(r)
		if err != nil {
			return wrapPath(err, fieldPath("max"))
		}
		*l = Limits{Min: min, Max: &max}
		return nil
	default:
		return errUnsupportedDiscriminant("Limits", int64(flag))
	}
}

// MemType is a memory's Limits, counted in 64KiB pages.
type MemType struct {
	Limits Limits
}

func (t MemType) EncodeWasm(w io.Writer) error  { return t.Limits.EncodeWasm(w) }
func (t *MemType) DecodeWasm(r io.Reader) error { return t.Limits.DecodeWasm(r) }

// TableType is an element type paired with Limits on the number of slots.
type TableType struct {
	ElemType RefType
	Limits   Limits
}

func (t TableType) EncodeWasm(w io.Writer) error {
	if err := t.ElemType.EncodeWasm(w); err != nil {
		return err
	}
	return t.Limits.EncodeWasm(w)
}

func (t *TableType) DecodeWasm(r io.Reader) error {
	if err := t.ElemType.DecodeWasm(r); err != nil {
		return wrapPath(err, fieldPath("elem_type"))
	}
	if err := t.Limits.DecodeWasm(r); err != nil {
		return wrapPath(err, fieldPath("limits"))
	}
	return nil
}

// GlobalType is a value type paired with a mutability flag.
type GlobalType struct {
	ValueType ValueType
	Mutable   bool
}

func (t GlobalType) EncodeWasm(w io.Writer) error {
	if err := t.ValueType.EncodeWasm(w); err != nil {
		return err
	}
	return writeBool(w, t.Mutable)
}

func (t *GlobalType) DecodeWasm(r io.Reader) error {
	if err := t.ValueType.DecodeWasm(r); err != nil {
		return wrapPath(err, fieldPath("value_type"))
	}
	mutable, err := readBool(r)
	if err != nil {
		return wrapPath(err, fieldPath("mutable"))
	}
	t.Mutable = mutable
	return nil
}
