package wasm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockTypeEmptyRoundtrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BlockType{Empty: true}.EncodeWasm(&buf))

	var got BlockType
	require.NoError(t, got.DecodeWasm(&buf))
	assert.Equal(t, BlockType{Empty: true}, got)
}

func TestBlockTypeValueRoundtrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BlockType{Value: ValueTypeI64}.EncodeWasm(&buf))

	var got BlockType
	require.NoError(t, got.DecodeWasm(&buf))
	assert.Equal(t, BlockType{Value: ValueTypeI64}, got)
}

// TestBlockTypeTypeIndexRoundtrip exercises the multi-value form's type
// index, the third BlockType variant alongside Empty and Value.
func TestBlockTypeTypeIndexRoundtrip(t *testing.T) {
	idx := TypeIdx(42)
	var buf bytes.Buffer
	require.NoError(t, BlockType{Type: &idx}.EncodeWasm(&buf))

	var got BlockType
	require.NoError(t, got.DecodeWasm(&buf))
	require.NotNil(t, got.Type)
	assert.Equal(t, idx, *got.Type)
	assert.False(t, got.Empty)
}

// TestBlockTypeTypeIndexMultiByte pins down that a type index large enough
// to need LEB128 continuation bytes still decodes correctly, unlike the
// single-byte Empty/Value forms.
func TestBlockTypeTypeIndexMultiByte(t *testing.T) {
	idx := TypeIdx(300)
	var buf bytes.Buffer
	require.NoError(t, BlockType{Type: &idx}.EncodeWasm(&buf))
	assert.Greater(t, buf.Len(), 1)

	var got BlockType
	require.NoError(t, got.DecodeWasm(&buf))
	require.NotNil(t, got.Type)
	assert.Equal(t, idx, *got.Type)
}
