package wasm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeModuleInvalidMagic(t *testing.T) {
	_, err := DecodeModule(bytes.NewReader([]byte("not a module")))
	require.Error(t, err)
	de, ok := err.(*DecodeError)
	require.True(t, ok)
	assert.Equal(t, KindInvalidMagic, de.Kind)
}

func TestDecodeModuleEmpty(t *testing.T) {
	m, err := DecodeModule(bytes.NewReader(magic[:]))
	require.NoError(t, err)
	assert.Empty(t, m.Sections)
}

// buildModule writes the magic prefix followed by the given sections and
// returns the resulting bytes, a small stand-in for a real encoder/decoder
// fixture.
func buildModule(t *testing.T, sections ...Section) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(magic[:])
	for _, s := range sections {
		require.NoError(t, s.EncodeWasm(&buf))
	}
	return buf.Bytes()
}

func TestModuleRoundtripTypeAndFunctionSections(t *testing.T) {
	typeSec := &TypeSec{Payload: NewBlobFromValue[funcTypeList, *funcTypeList](funcTypeList{
		{Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}},
	})}
	funcSec := &FunctionSec{Payload: NewBlobFromValue[typeIdxList, *typeIdxList](typeIdxList{0})}

	raw := buildModule(t, typeSec, funcSec)
	m, err := DecodeModule(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, m.Sections, 2)

	gotType, ok := FindStdSection[*TypeSec](m)
	require.True(t, ok)
	types, err := gotType.Payload.Contents()
	require.NoError(t, err)
	require.Len(t, *types, 1)
	assert.Equal(t, []ValueType{ValueTypeI32}, (*types)[0].Params)

	var reencoded bytes.Buffer
	require.NoError(t, m.EncodeWasm(&reencoded))
	assert.Equal(t, raw, reencoded.Bytes())
}

func TestSectionOrderExceptionBetweenMemoryAndGlobal(t *testing.T) {
	memSec := &MemorySec{Payload: NewBlobFromValue[memTypeList, *memTypeList](nil)}
	excSec := &ExceptionSec{Payload: NewBlobFromValue[typeIdxList, *typeIdxList](nil)}
	globalSec := &GlobalSec{Payload: NewBlobFromValue[globalList, *globalList](nil)}

	raw := buildModule(t, memSec, excSec, globalSec)
	_, err := DecodeModule(bytes.NewReader(raw))
	assert.NoError(t, err, "exception must be accepted between memory and global despite its higher wire byte")
}

func TestSectionOrderViolationIsRejected(t *testing.T) {
	globalSec := &GlobalSec{Payload: NewBlobFromValue[globalList, *globalList](nil)}
	memSec := &MemorySec{Payload: NewBlobFromValue[memTypeList, *memTypeList](nil)}

	raw := buildModule(t, globalSec, memSec)
	_, err := DecodeModule(bytes.NewReader(raw))
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindSectionOutOfOrder, de.Kind)
}

func TestSectionOrderAllowsRepeatedCustomSections(t *testing.T) {
	c1 := &CustomSec{Payload: NewBlobFromValue[CustomSectionPayload, *CustomSectionPayload](CustomSectionPayload{Name: "a"})}
	c2 := &CustomSec{Payload: NewBlobFromValue[CustomSectionPayload, *CustomSectionPayload](CustomSectionPayload{Name: "b"})}

	raw := buildModule(t, c1, c2)
	m, err := DecodeModule(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Len(t, m.Sections, 2)
}

func TestFindOrInsertStdSectionRespectsCanonicalOrder(t *testing.T) {
	m := &Module{}
	m.Sections = append(m.Sections, &TypeSec{Payload: NewBlobFromValue[funcTypeList, *funcTypeList](nil)})
	m.Sections = append(m.Sections, &ExportSec{Payload: NewBlobFromValue[exportList, *exportList](nil)})

	FindOrInsertStdSection(m, KindMemory, func() *MemorySec {
		return &MemorySec{Payload: NewBlobFromValue[memTypeList, *memTypeList](nil)}
	})

	require.Len(t, m.Sections, 3)
	assert.Equal(t, KindType, m.Sections[0].Kind())
	assert.Equal(t, KindMemory, m.Sections[1].Kind())
	assert.Equal(t, KindExport, m.Sections[2].Kind())
}
