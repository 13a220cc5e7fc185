package wasm

import "io"

// Kind is a module section's wire discriminant byte (spec §4.7).
type Kind byte

const (
	KindCustom    Kind = 0
	KindType      Kind = 1
	KindImport    Kind = 2
	KindFunction  Kind = 3
	KindTable     Kind = 4
	KindMemory    Kind = 5
	KindGlobal    Kind = 6
	KindExport    Kind = 7
	KindStart     Kind = 8
	KindElement   Kind = 9
	KindCode      Kind = 10
	KindData      Kind = 11
	KindDataCount Kind = 12
	KindException Kind = 13
)

func (k Kind) String() string {
	switch k {
	case KindCustom:
		return "custom"
	case KindType:
		return "type"
	case KindImport:
		return "import"
	case KindFunction:
		return "function"
	case KindTable:
		return "table"
	case KindMemory:
		return "memory"
	case KindGlobal:
		return "global"
	case KindExport:
		return "export"
	case KindStart:
		return "start"
	case KindElement:
		return "element"
	case KindCode:
		return "code"
	case KindData:
		return "data"
	case KindDataCount:
		return "data-count"
	case KindException:
		return "exception"
	default:
		return "unknown"
	}
}

// canonicalOrder lists the standard sections in logical order. Exception
// sits between Memory and Global despite carrying the higher wire byte
// 13: the ordering tracker compares positions in this slice, never raw
// discriminant values (spec §4.7's open question about section 13).
var canonicalOrder = []Kind{
	KindType, KindImport, KindFunction, KindTable, KindMemory, KindException,
	KindGlobal, KindExport, KindStart, KindElement, KindDataCount, KindCode, KindData,
}

// logicalRank returns a non-custom section's position in canonicalOrder,
// or -1 for Custom (and anything else exempt from ordering).
func logicalRank(k Kind) int {
	for i, c := range canonicalOrder {
		if c == k {
			return i
		}
	}
	return -1
}

// sectionOrderTracker enforces spec §4.7: the largest logical rank seen so
// far must never be revisited or gone backwards past by a later non-custom
// section.
type sectionOrderTracker struct {
	maxRank int
	maxKind Kind
	seen    bool
}

func newSectionOrderTracker() *sectionOrderTracker {
	return &sectionOrderTracker{maxRank: -1}
}

func (t *sectionOrderTracker) observe(k Kind) error {
	rank := logicalRank(k)
	if rank < 0 {
		return nil
	}
	if t.seen && rank <= t.maxRank {
		return errSectionOutOfOrder(t.maxKind, k)
	}
	t.maxRank, t.maxKind, t.seen = rank, k, true
	return nil
}

// byteVec is a raw byte slice framed entirely by its enclosing Blob, used
// for blobs nested inside an already length-framed section (spec §4.2).
type byteVec []byte

func (b byteVec) EncodeWasm(w io.Writer) error {
	_, err := w.Write(b)
	return err
}

func (b *byteVec) DecodeWasm(r io.Reader) error {
	v, err := readBytesToEOF(r)
	*b = byteVec(v)
	return err
}

// uint32Val lets a bare u32 be wrapped in a Blob (DataCount).
type uint32Val uint32

func (v uint32Val) EncodeWasm(w io.Writer) error  { return writeU32(w, uint32(v)) }
func (v *uint32Val) DecodeWasm(r io.Reader) error { x, err := readU32(r); *v = uint32Val(x); return err }

// funcIdxVal lets FuncIdx be wrapped in a Blob (Start section).
type funcIdxVal = FuncIdx

// CustomSectionPayload is the raw, undispatched form of a custom section:
// a name followed by an opaque byte payload (spec §4.7). customsection.go
// dispatches on Name to produce a typed interpretation.
type CustomSectionPayload struct {
	Name string
	Data []byte
}

func (c CustomSectionPayload) EncodeWasm(w io.Writer) error {
	if err := writeString(w, c.Name); err != nil {
		return err
	}
	_, err := w.Write(c.Data)
	return err
}

func (c *CustomSectionPayload) DecodeWasm(r io.Reader) error {
	name, err := readString(r)
	if err != nil {
		return wrapPath(err, fieldPath("name"))
	}
	data, err := readBytesToEOF(r)
	if err != nil {
		return wrapPath(err, fieldPath("data"))
	}
	c.Name, c.Data = name, data
	return nil
}

// ImportDesc is what an import binds: a function signature, table, memory,
// or global type, plus the exception-handling "tag" extension (spec §4.3).
type ImportDesc interface {
	Encoder
}

type ImportDescFunc struct{ Type TypeIdx }
type ImportDescTable struct{ Type TableType }
type ImportDescMem struct{ Type MemType }
type ImportDescGlobal struct{ Type GlobalType }
type ImportDescTag struct{ Type TypeIdx }

const (
	importDescFunc   = 0x00
	importDescTable  = 0x01
	importDescMem    = 0x02
	importDescGlobal = 0x03
	importDescTag    = 0x04
)

func (d ImportDescFunc) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, importDescFunc); err != nil {
		return err
	}
	return d.Type.EncodeWasm(w)
}
func (d ImportDescTable) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, importDescTable); err != nil {
		return err
	}
	return d.Type.EncodeWasm(w)
}
func (d ImportDescMem) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, importDescMem); err != nil {
		return err
	}
	return d.Type.EncodeWasm(w)
}
func (d ImportDescGlobal) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, importDescGlobal); err != nil {
		return err
	}
	return d.Type.EncodeWasm(w)
}
func (d ImportDescTag) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, importDescTag); err != nil {
		return err
	}
	return d.Type.EncodeWasm(w)
}

func decodeImportDesc(r io.Reader) (ImportDesc, error) {
	d, err := readByte(r)
	if err != nil {
		return nil, wrapPath(err, fieldPath("discriminant"))
	}
	switch d {
	case importDescFunc:
		var t TypeIdx
		if err := t.DecodeWasm(r); err != nil {
			return nil, err
		}
		return ImportDescFunc{Type: t}, nil
	case importDescTable:
		var t TableType
		if err := t.DecodeWasm(r); err != nil {
			return nil, err
		}
		return ImportDescTable{Type: t}, nil
	case importDescMem:
		var t MemType
		if err := t.DecodeWasm(r); err != nil {
			return nil, err
		}
		return ImportDescMem{Type: t}, nil
	case importDescGlobal:
		var t GlobalType
		if err := t.DecodeWasm(r); err != nil {
			return nil, err
		}
		return ImportDescGlobal{Type: t}, nil
	case importDescTag:
		var t TypeIdx
		if err := t.DecodeWasm(r); err != nil {
			return nil, err
		}
		return ImportDescTag{Type: t}, nil
	default:
		return nil, errUnsupportedDiscriminant("ImportDesc", int64(d))
	}
}

// Import is one entry of the import section.
type Import struct {
	Module string
	Name   string
	Desc   ImportDesc
}

func (i Import) EncodeWasm(w io.Writer) error {
	if err := writeString(w, i.Module); err != nil {
		return err
	}
	if err := writeString(w, i.Name); err != nil {
		return err
	}
	return i.Desc.EncodeWasm(w)
}

func (i *Import) DecodeWasm(r io.Reader) error {
	mod, err := readString(r)
	if err != nil {
		return wrapPath(err, fieldPath("module"))
	}
	name, err := readString(r)
	if err != nil {
		return wrapPath(err, fieldPath("name"))
	}
	desc, err := decodeImportDesc(r)
	if err != nil {
		return wrapPath(err, fieldPath("desc"))
	}
	i.Module, i.Name, i.Desc = mod, name, desc
	return nil
}

// ExportDesc names the kind of item an export refers to (spec §4.3).
type ExportDesc interface {
	Encoder
}

type ExportDescFunc struct{ Index FuncIdx }
type ExportDescTable struct{ Index TableIdx }
type ExportDescMem struct{ Index MemIdx }
type ExportDescGlobal struct{ Index GlobalIdx }

const (
	exportDescFunc   = 0x00
	exportDescTable  = 0x01
	exportDescMem    = 0x02
	exportDescGlobal = 0x03
)

func (d ExportDescFunc) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, exportDescFunc); err != nil {
		return err
	}
	return d.Index.EncodeWasm(w)
}
func (d ExportDescTable) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, exportDescTable); err != nil {
		return err
	}
	return d.Index.EncodeWasm(w)
}
func (d ExportDescMem) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, exportDescMem); err != nil {
		return err
	}
	return d.Index.EncodeWasm(w)
}
func (d ExportDescGlobal) EncodeWasm(w io.Writer) error {
	if err := writeByte(w, exportDescGlobal); err != nil {
		return err
	}
	return d.Index.EncodeWasm(w)
}

func decodeExportDesc(r io.Reader) (ExportDesc, error) {
	d, err := readByte(r)
	if err != nil {
		return nil, wrapPath(err, fieldPath("discriminant"))
	}
	switch d {
	case exportDescFunc:
		var i FuncIdx
		if err := i.DecodeWasm(r); err != nil {
			return nil, err
		}
		return ExportDescFunc{Index: i}, nil
	case exportDescTable:
		var i TableIdx
		if err := i.DecodeWasm(r); err != nil {
			return nil, err
		}
		return ExportDescTable{Index: i}, nil
	case exportDescMem:
		var i MemIdx
		if err := i.DecodeWasm(r); err != nil {
			return nil, err
		}
		return ExportDescMem{Index: i}, nil
	case exportDescGlobal:
		var i GlobalIdx
		if err := i.DecodeWasm(r); err != nil {
			return nil, err
		}
		return ExportDescGlobal{Index: i}, nil
	default:
		return nil, errUnsupportedDiscriminant("ExportDesc", int64(d))
	}
}

// Export is one entry of the export section.
type Export struct {
	Name string
	Desc ExportDesc
}

func (e Export) EncodeWasm(w io.Writer) error {
	if err := writeString(w, e.Name); err != nil {
		return err
	}
	return e.Desc.EncodeWasm(w)
}

func (e *Export) DecodeWasm(r io.Reader) error {
	name, err := readString(r)
	if err != nil {
		return wrapPath(err, fieldPath("name"))
	}
	desc, err := decodeExportDesc(r)
	if err != nil {
		return wrapPath(err, fieldPath("desc"))
	}
	e.Name, e.Desc = name, desc
	return nil
}

// Global is one entry of the global section: its type and its constant
// initializer expression.
type Global struct {
	Type GlobalType
	Init []Instruction
}

func (g Global) EncodeWasm(w io.Writer) error {
	if err := g.Type.EncodeWasm(w); err != nil {
		return err
	}
	return EncodeExpression(w, g.Init)
}

func (g *Global) DecodeWasm(r io.Reader) error {
	if err := g.Type.DecodeWasm(r); err != nil {
		return wrapPath(err, fieldPath("ty"))
	}
	init, err := DecodeExpression(r)
	if err != nil {
		return wrapPath(err, fieldPath("init"))
	}
	g.Init = init
	return nil
}

// Element is one entry of the element section: the table it initializes,
// the offset expression, and the function indices placed there.
type Element struct {
	Table  TableIdx
	Offset []Instruction
	Init   []FuncIdx
}

func (e Element) EncodeWasm(w io.Writer) error {
	if err := e.Table.EncodeWasm(w); err != nil {
		return err
	}
	if err := EncodeExpression(w, e.Offset); err != nil {
		return wrapPath(err, fieldPath("offset"))
	}
	return EncodeVec(w, e.Init)
}

func (e *Element) DecodeWasm(r io.Reader) error {
	if err := e.Table.DecodeWasm(r); err != nil {
		return wrapPath(err, fieldPath("table"))
	}
	offset, err := DecodeExpression(r)
	if err != nil {
		return wrapPath(err, fieldPath("offset"))
	}
	init, err := DecodeVec[FuncIdx, *FuncIdx](r)
	if err != nil {
		return wrapPath(err, fieldPath("init"))
	}
	e.Offset, e.Init = offset, init
	return nil
}

// Locals is a run-length-encoded group of function locals sharing a type.
type Locals struct {
	Repeat uint32
	Type   ValueType
}

func (l Locals) EncodeWasm(w io.Writer) error {
	if err := writeU32(w, l.Repeat); err != nil {
		return err
	}
	return l.Type.EncodeWasm(w)
}

func (l *Locals) DecodeWasm(r io.Reader) error {
	repeat, err := readU32(r)
	if err != nil {
		return wrapPath(err, fieldPath("repeat"))
	}
	if err := l.Type.DecodeWasm(r); err != nil {
		return wrapPath(err, fieldPath("ty"))
	}
	l.Repeat = repeat
	return nil
}

// Func is a function body: its locals and its instruction sequence. Each
// Func in the code section is itself wrapped in a Blob, giving per-function
// length framing that tools can skip over without decoding the body.
type Func struct {
	Locals []Locals
	Body   []Instruction
}

func (f Func) EncodeWasm(w io.Writer) error {
	if err := EncodeVec(w, f.Locals); err != nil {
		return wrapPath(err, fieldPath("locals"))
	}
	return EncodeExpression(w, f.Body)
}

func (f *Func) DecodeWasm(r io.Reader) error {
	locals, err := DecodeVec[Locals, *Locals](r)
	if err != nil {
		return wrapPath(err, fieldPath("locals"))
	}
	body, err := DecodeExpression(r)
	if err != nil {
		return wrapPath(err, fieldPath("body"))
	}
	f.Locals, f.Body = locals, body
	return nil
}

// BlobFunc is a single code-section entry: a length-framed, lazily
// decoded Func.
type BlobFunc = Blob[Func, *Func]

// Data is one entry of the data section: the memory it targets, its
// offset expression, and its raw byte contents (themselves wrapped in a
// nested Blob, matching the double length-framing of the original wire
// format).
type Data struct {
	Mem    MemIdx
	Offset []Instruction
	Init   *Blob[byteVec, *byteVec]
}

func (d Data) EncodeWasm(w io.Writer) error {
	if err := d.Mem.EncodeWasm(w); err != nil {
		return err
	}
	if err := EncodeExpression(w, d.Offset); err != nil {
		return wrapPath(err, fieldPath("offset"))
	}
	return d.Init.EncodeWasm(w)
}

func (d *Data) DecodeWasm(r io.Reader) error {
	if err := d.Mem.DecodeWasm(r); err != nil {
		return wrapPath(err, fieldPath("mem"))
	}
	offset, err := DecodeExpression(r)
	if err != nil {
		return wrapPath(err, fieldPath("offset"))
	}
	init := &Blob[byteVec, *byteVec]{}
	if err := init.DecodeWasm(r); err != nil {
		return wrapPath(err, fieldPath("init"))
	}
	d.Offset, d.Init = offset, init
	return nil
}

// The named list types below exist purely so a slice can be wrapped in a
// Blob: Blob requires its contents to implement Decoder, and Go does not
// let methods attach directly to unnamed slice types.
type (
	funcTypeList   []FuncType
	importList     []Import
	typeIdxList    []TypeIdx
	tableTypeList  []TableType
	memTypeList    []MemType
	globalList     []Global
	exportList     []Export
	elementList    []Element
	codeList       []BlobFunc
	dataList       []Data
)

func (l funcTypeList) EncodeWasm(w io.Writer) error  { return EncodeVec(w, []FuncType(l)) }
func (l importList) EncodeWasm(w io.Writer) error    { return EncodeVec(w, []Import(l)) }
func (l typeIdxList) EncodeWasm(w io.Writer) error   { return EncodeVec(w, []TypeIdx(l)) }
func (l tableTypeList) EncodeWasm(w io.Writer) error { return EncodeVec(w, []TableType(l)) }
func (l memTypeList) EncodeWasm(w io.Writer) error   { return EncodeVec(w, []MemType(l)) }
func (l globalList) EncodeWasm(w io.Writer) error    { return EncodeVec(w, []Global(l)) }
func (l exportList) EncodeWasm(w io.Writer) error    { return EncodeVec(w, []Export(l)) }
func (l elementList) EncodeWasm(w io.Writer) error   { return EncodeVec(w, []Element(l)) }
func (l codeList) EncodeWasm(w io.Writer) error      { return EncodeVec(w, []BlobFunc(l)) }
func (l dataList) EncodeWasm(w io.Writer) error      { return EncodeVec(w, []Data(l)) }

func (l *funcTypeList) DecodeWasm(r io.Reader) error {
	v, err := DecodeVec[FuncType, *FuncType](r)
	if err != nil {
		return err
	}
	*l = funcTypeList(v)
	return nil
}

func (l *importList) DecodeWasm(r io.Reader) error {
	v, err := DecodeVec[Import, *Import](r)
	if err != nil {
		return err
	}
	*l = importList(v)
	return nil
}

func (l *typeIdxList) DecodeWasm(r io.Reader) error {
	v, err := DecodeVec[TypeIdx, *TypeIdx](r)
	if err != nil {
		return err
	}
	*l = typeIdxList(v)
	return nil
}

func (l *tableTypeList) DecodeWasm(r io.Reader) error {
	v, err := DecodeVec[TableType, *TableType](r)
	if err != nil {
		return err
	}
	*l = tableTypeList(v)
	return nil
}

func (l *memTypeList) DecodeWasm(r io.Reader) error {
	v, err := DecodeVec[MemType, *MemType](r)
	if err != nil {
		return err
	}
	*l = memTypeList(v)
	return nil
}

func (l *globalList) DecodeWasm(r io.Reader) error {
	v, err := DecodeVec[Global, *Global](r)
	if err != nil {
		return err
	}
	*l = globalList(v)
	return nil
}

func (l *exportList) DecodeWasm(r io.Reader) error {
	v, err := DecodeVec[Export, *Export](r)
	if err != nil {
		return err
	}
	*l = exportList(v)
	return nil
}

func (l *elementList) DecodeWasm(r io.Reader) error {
	v, err := DecodeVec[Element, *Element](r)
	if err != nil {
		return err
	}
	*l = elementList(v)
	return nil
}

func (l *codeList) DecodeWasm(r io.Reader) error {
	v, err := DecodeVec[BlobFunc, *BlobFunc](r)
	if err != nil {
		return err
	}
	*l = codeList(v)
	return nil
}

func (l *dataList) DecodeWasm(r io.Reader) error {
	v, err := DecodeVec[Data, *Data](r)
	if err != nil {
		return err
	}
	*l = dataList(v)
	return nil
}

// Section is one module section, tagged by Kind, whose payload is a
// length-framed Blob (spec §4.2, §4.7). Each variant below is a distinct
// Go type implementing Section; Module.Sections holds them behind the
// interface, mirroring the Rust enum's discriminant-tagged variants.
type Section interface {
	Kind() Kind
	Encoder
	Node
}

type CustomSec struct{ Payload *Blob[CustomSectionPayload, *CustomSectionPayload] }
type TypeSec struct{ Payload *Blob[funcTypeList, *funcTypeList] }
type ImportSec struct{ Payload *Blob[importList, *importList] }
type FunctionSec struct{ Payload *Blob[typeIdxList, *typeIdxList] }
type TableSec struct{ Payload *Blob[tableTypeList, *tableTypeList] }
type MemorySec struct{ Payload *Blob[memTypeList, *memTypeList] }
type ExceptionSec struct{ Payload *Blob[typeIdxList, *typeIdxList] }
type GlobalSec struct{ Payload *Blob[globalList, *globalList] }
type ExportSec struct{ Payload *Blob[exportList, *exportList] }
type StartSec struct{ Payload *Blob[funcIdxVal, *funcIdxVal] }
type ElementSec struct{ Payload *Blob[elementList, *elementList] }
type DataCountSec struct{ Payload *Blob[uint32Val, *uint32Val] }
type CodeSec struct{ Payload *Blob[codeList, *codeList] }
type DataSec struct{ Payload *Blob[dataList, *dataList] }

func (s *CustomSec) Kind() Kind    { return KindCustom }
func (s *TypeSec) Kind() Kind      { return KindType }
func (s *ImportSec) Kind() Kind    { return KindImport }
func (s *FunctionSec) Kind() Kind  { return KindFunction }
func (s *TableSec) Kind() Kind     { return KindTable }
func (s *MemorySec) Kind() Kind    { return KindMemory }
func (s *ExceptionSec) Kind() Kind { return KindException }
func (s *GlobalSec) Kind() Kind    { return KindGlobal }
func (s *ExportSec) Kind() Kind    { return KindExport }
func (s *StartSec) Kind() Kind     { return KindStart }
func (s *ElementSec) Kind() Kind   { return KindElement }
func (s *DataCountSec) Kind() Kind { return KindDataCount }
func (s *CodeSec) Kind() Kind      { return KindCode }
func (s *DataSec) Kind() Kind      { return KindData }

func encodeSectionWith(w io.Writer, k Kind, payload Encoder) error {
	if err := writeByte(w, byte(k)); err != nil {
		return err
	}
	return payload.EncodeWasm(w)
}

func (s *CustomSec) EncodeWasm(w io.Writer) error    { return encodeSectionWith(w, KindCustom, s.Payload) }
func (s *TypeSec) EncodeWasm(w io.Writer) error      { return encodeSectionWith(w, KindType, s.Payload) }
func (s *ImportSec) EncodeWasm(w io.Writer) error    { return encodeSectionWith(w, KindImport, s.Payload) }
func (s *FunctionSec) EncodeWasm(w io.Writer) error  { return encodeSectionWith(w, KindFunction, s.Payload) }
func (s *TableSec) EncodeWasm(w io.Writer) error     { return encodeSectionWith(w, KindTable, s.Payload) }
func (s *MemorySec) EncodeWasm(w io.Writer) error    { return encodeSectionWith(w, KindMemory, s.Payload) }
func (s *ExceptionSec) EncodeWasm(w io.Writer) error { return encodeSectionWith(w, KindException, s.Payload) }
func (s *GlobalSec) EncodeWasm(w io.Writer) error    { return encodeSectionWith(w, KindGlobal, s.Payload) }
func (s *ExportSec) EncodeWasm(w io.Writer) error    { return encodeSectionWith(w, KindExport, s.Payload) }
func (s *StartSec) EncodeWasm(w io.Writer) error     { return encodeSectionWith(w, KindStart, s.Payload) }
func (s *ElementSec) EncodeWasm(w io.Writer) error   { return encodeSectionWith(w, KindElement, s.Payload) }
func (s *DataCountSec) EncodeWasm(w io.Writer) error { return encodeSectionWith(w, KindDataCount, s.Payload) }
func (s *CodeSec) EncodeWasm(w io.Writer) error      { return encodeSectionWith(w, KindCode, s.Payload) }
func (s *DataSec) EncodeWasm(w io.Writer) error      { return encodeSectionWith(w, KindData, s.Payload) }

// decodeSection reads one section's payload given its discriminant byte,
// which the caller (DecodeModule) has already consumed in order to
// run the order tracker before committing to a decode.
func decodeSection(r io.Reader, k Kind) (Section, error) {
	switch k {
	case KindCustom:
		s := &CustomSec{Payload: &Blob[CustomSectionPayload, *CustomSectionPayload]{}}
		return s, wrapPath(s.Payload.DecodeWasm(r), fieldPath("custom"))
	case KindType:
		s := &TypeSec{Payload: &Blob[funcTypeList, *funcTypeList]{}}
		return s, wrapPath(s.Payload.DecodeWasm(r), fieldPath("type"))
	case KindImport:
		s := &ImportSec{Payload: &Blob[importList, *importList]{}}
		return s, wrapPath(s.Payload.DecodeWasm(r), fieldPath("import"))
	case KindFunction:
		s := &FunctionSec{Payload: &Blob[typeIdxList, *typeIdxList]{}}
		return s, wrapPath(s.Payload.DecodeWasm(r), fieldPath("function"))
	case KindTable:
		s := &TableSec{Payload: &Blob[tableTypeList, *tableTypeList]{}}
		return s, wrapPath(s.Payload.DecodeWasm(r), fieldPath("table"))
	case KindMemory:
		s := &MemorySec{Payload: &Blob[memTypeList, *memTypeList]{}}
		return s, wrapPath(s.Payload.DecodeWasm(r), fieldPath("memory"))
	case KindException:
		s := &ExceptionSec{Payload: &Blob[typeIdxList, *typeIdxList]{}}
		return s, wrapPath(s.Payload.DecodeWasm(r), fieldPath("exception"))
	case KindGlobal:
		s := &GlobalSec{Payload: &Blob[globalList, *globalList]{}}
		return s, wrapPath(s.Payload.DecodeWasm(r), fieldPath("global"))
	case KindExport:
		s := &ExportSec{Payload: &Blob[exportList, *exportList]{}}
		return s, wrapPath(s.Payload.DecodeWasm(r), fieldPath("export"))
	case KindStart:
		s := &StartSec{Payload: &Blob[funcIdxVal, *funcIdxVal]{}}
		return s, wrapPath(s.Payload.DecodeWasm(r), fieldPath("start"))
	case KindElement:
		s := &ElementSec{Payload: &Blob[elementList, *elementList]{}}
		return s, wrapPath(s.Payload.DecodeWasm(r), fieldPath("element"))
	case KindDataCount:
		s := &DataCountSec{Payload: &Blob[uint32Val, *uint32Val]{}}
		return s, wrapPath(s.Payload.DecodeWasm(r), fieldPath("data_count"))
	case KindCode:
		s := &CodeSec{Payload: &Blob[codeList, *codeList]{}}
		return s, wrapPath(s.Payload.DecodeWasm(r), fieldPath("code"))
	case KindData:
		s := &DataSec{Payload: &Blob[dataList, *dataList]{}}
		return s, wrapPath(s.Payload.DecodeWasm(r), fieldPath("data"))
	default:
		return nil, errUnsupportedDiscriminant("Section", int64(k))
	}
}
