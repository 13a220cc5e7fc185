package wasm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobRoundtripPreservesRawBytes(t *testing.T) {
	inner := CustomSectionPayload{Name: "x", Data: []byte{1, 2, 3}}
	orig := NewBlobFromValue[CustomSectionPayload, *CustomSectionPayload](inner)

	var encoded bytes.Buffer
	require.NoError(t, orig.EncodeWasm(&encoded))

	decoded := &Blob[CustomSectionPayload, *CustomSectionPayload]{}
	require.NoError(t, decoded.DecodeWasm(bytes.NewReader(encoded.Bytes())))

	raw, fromInput := decoded.RawBytes()
	assert.True(t, fromInput)
	assert.NotEmpty(t, raw)

	var reencoded bytes.Buffer
	require.NoError(t, decoded.EncodeWasm(&reencoded))
	assert.Equal(t, encoded.Bytes(), reencoded.Bytes(), "unchanged blob must round-trip byte-identical")
}

func TestBlobEncodeAfterMutateReserializes(t *testing.T) {
	inner := CustomSectionPayload{Name: "x", Data: []byte{1, 2, 3}}
	orig := NewBlobFromValue[CustomSectionPayload, *CustomSectionPayload](inner)

	var encoded bytes.Buffer
	require.NoError(t, orig.EncodeWasm(&encoded))

	decoded := &Blob[CustomSectionPayload, *CustomSectionPayload]{}
	require.NoError(t, decoded.DecodeWasm(bytes.NewReader(encoded.Bytes())))

	contents, err := decoded.ContentsMut()
	require.NoError(t, err)
	contents.Data = append(contents.Data, 4)

	_, fromInput := decoded.RawBytes()
	assert.False(t, fromInput)

	var reencoded bytes.Buffer
	require.NoError(t, decoded.EncodeWasm(&reencoded))
	assert.NotEqual(t, encoded.Bytes(), reencoded.Bytes())

	final := &Blob[CustomSectionPayload, *CustomSectionPayload]{}
	require.NoError(t, final.DecodeWasm(bytes.NewReader(reencoded.Bytes())))
	got, err := final.Contents()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, got.Data)
}

func TestBlobEqual(t *testing.T) {
	a := NewBlobFromValue[uint32Val, *uint32Val](uint32Val(5))
	var encoded bytes.Buffer
	require.NoError(t, a.EncodeWasm(&encoded))

	b := &Blob[uint32Val, *uint32Val]{}
	require.NoError(t, b.DecodeWasm(bytes.NewReader(encoded.Bytes())))

	assert.True(t, BlobEqual(a, b))
}
