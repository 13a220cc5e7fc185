package wasm

import "io"

// TypeIdx indexes into the type section.
type TypeIdx uint32

// FuncIdx indexes into the combined function index space (imported then
// locally defined functions).
type FuncIdx uint32

// TableIdx indexes into the combined table index space.
type TableIdx uint32

// MemIdx indexes into the combined memory index space.
type MemIdx uint32

// GlobalIdx indexes into the combined global index space.
type GlobalIdx uint32

// ElemIdx indexes into the element section.
type ElemIdx uint32

// DataIdx indexes into the data section.
type DataIdx uint32

// LocalIdx indexes a function's parameters and locals, in declaration
// order.
type LocalIdx uint32

// LabelIdx is a relative branch target: 0 is the innermost enclosing
// structured control instruction.
type LabelIdx uint32

func (i TypeIdx) EncodeWasm(w io.Writer) error   { return writeU32(w, uint32(i)) }
func (i *TypeIdx) DecodeWasm(r io.Reader) error  { v, err := readU32(r); *i = TypeIdx(v); return err }
func (i FuncIdx) EncodeWasm(w io.Writer) error   { return writeU32(w, uint32(i)) }
func (i *FuncIdx) DecodeWasm(r io.Reader) error  { v, err := readU32(r); *i = FuncIdx(v); return err }
func (i TableIdx) EncodeWasm(w io.Writer) error  { return writeU32(w, uint32(i)) }
func (i *TableIdx) DecodeWasm(r io.Reader) error { v, err := readU32(r); *i = TableIdx(v); return err }
func (i MemIdx) EncodeWasm(w io.Writer) error    { return writeU32(w, uint32(i)) }
func (i *MemIdx) DecodeWasm(r io.Reader) error   { v, err := readU32(r); *i = MemIdx(v); return err }
func (i GlobalIdx) EncodeWasm(w io.Writer) error { return writeU32(w, uint32(i)) }
func (i *GlobalIdx) DecodeWasm(r io.Reader) error {
	v, err := readU32(r)
	*i = GlobalIdx(v)
	return err
}
func (i ElemIdx) EncodeWasm(w io.Writer) error  { return writeU32(w, uint32(i)) }
func (i *ElemIdx) DecodeWasm(r io.Reader) error { v, err := readU32(r); *i = ElemIdx(v); return err }
func (i DataIdx) EncodeWasm(w io.Writer) error  { return writeU32(w, uint32(i)) }
func (i *DataIdx) DecodeWasm(r io.Reader) error { v, err := readU32(r); *i = DataIdx(v); return err }
func (i LocalIdx) EncodeWasm(w io.Writer) error { return writeU32(w, uint32(i)) }
func (i *LocalIdx) DecodeWasm(r io.Reader) error {
	v, err := readU32(r)
	*i = LocalIdx(v)
	return err
}
func (i LabelIdx) EncodeWasm(w io.Writer) error { return writeU32(w, uint32(i)) }
func (i *LabelIdx) DecodeWasm(r io.Reader) error {
	v, err := readU32(r)
	*i = LabelIdx(v)
	return err
}
