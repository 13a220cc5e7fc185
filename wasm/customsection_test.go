package wasm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeCustomSec(t *testing.T, payload CustomSectionPayload) *CustomSec {
	t.Helper()
	blob := NewBlobFromValue[CustomSectionPayload, *CustomSectionPayload](payload)
	var buf bytes.Buffer
	require.NoError(t, blob.EncodeWasm(&buf))
	s := &CustomSec{Payload: &Blob[CustomSectionPayload, *CustomSectionPayload]{}}
	require.NoError(t, s.Payload.DecodeWasm(bytes.NewReader(buf.Bytes())))
	return s
}

func TestCustomSectionUnknownNameFallsBackToRaw(t *testing.T) {
	s := decodeCustomSec(t, CustomSectionPayload{Name: "some_tool_section", Data: []byte{1, 2, 3}})
	raw, ok := s.Typed().(RawCustomSection)
	require.True(t, ok)
	assert.Equal(t, "some_tool_section", raw.Name)
	assert.Equal(t, []byte{1, 2, 3}, raw.Data)
}

func TestCustomSectionNameSectionFallsBackOnGarbage(t *testing.T) {
	s := decodeCustomSec(t, CustomSectionPayload{Name: "name", Data: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}})
	_, ok := s.Typed().(RawCustomSection)
	assert.True(t, ok, "a malformed name section must fall back to raw rather than fail the enclosing module")
}

func TestCustomSectionNameModuleNameRoundtrip(t *testing.T) {
	var body bytes.Buffer
	require.NoError(t, body.WriteByte(nameSubModule))
	var inner bytes.Buffer
	require.NoError(t, writeString(&inner, "my_module"))
	require.NoError(t, writeU32(&body, uint32(inner.Len())))
	body.Write(inner.Bytes())

	s := decodeCustomSec(t, CustomSectionPayload{Name: "name", Data: body.Bytes()})
	ns, ok := s.Typed().(NameSection)
	require.True(t, ok)
	require.Len(t, ns.SubSections, 1)
	assert.Equal(t, "my_module", ns.SubSections[0].ModuleName)
}

func TestCustomSectionBuildID(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	s := decodeCustomSec(t, CustomSectionPayload{Name: "build_id", Data: data})
	bid, ok := s.Typed().(BuildIDSection)
	require.True(t, ok)
	assert.Equal(t, data, bid.Data)
}

func TestCustomSectionExternalDebugInfo(t *testing.T) {
	var body bytes.Buffer
	require.NoError(t, writeString(&body, "https://example.com/debug.wasm"))
	s := decodeCustomSec(t, CustomSectionPayload{Name: "external_debug_info", Data: body.Bytes()})
	info, ok := s.Typed().(ExternalDebugInfoSection)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/debug.wasm", info.URL)
}
