package wasm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyDecodesOnDemand(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeU32(&buf, 42))

	l := NewLazyFromRaw[uint32Val, *uint32Val](buf.Bytes())
	raw, value, fromInput := l.TryAsRaw()
	assert.True(t, fromInput)
	assert.Nil(t, value)
	assert.Equal(t, buf.Bytes(), raw)

	got, err := l.TryContents()
	require.NoError(t, err)
	assert.Equal(t, uint32Val(42), *got)
}

func TestLazyContentsMutTransitionsToOwned(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeU32(&buf, 7))
	l := NewLazyFromRaw[uint32Val, *uint32Val](buf.Bytes())

	got, err := l.TryContentsMut()
	require.NoError(t, err)
	*got = 8

	_, _, fromInput := l.TryAsRaw()
	assert.False(t, fromInput, "ContentsMut must drop the raw-bytes fast path")

	final, err := l.TryIntoContents()
	require.NoError(t, err)
	assert.Equal(t, uint32Val(8), final)
}

func TestLazyEqualPrefersRawBytes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeU32(&buf, 1))

	a := NewLazyFromRaw[uint32Val, *uint32Val](buf.Bytes())
	b := NewLazyFromRaw[uint32Val, *uint32Val](buf.Bytes())
	assert.True(t, LazyEqual(a, b))

	c := NewLazyFromValue(uint32Val(1))
	assert.True(t, LazyEqual(a, c), "raw and decoded forms of the same value must compare equal")

	d := NewLazyFromValue(uint32Val(2))
	assert.False(t, LazyEqual(a, d))
}

func TestLazyDecodeRejectsTrailingBytes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeU32(&buf, 1))
	buf.WriteByte(0xFF)

	l := NewLazyFromRaw[uint32Val, *uint32Val](buf.Bytes())
	_, err := l.TryContents()
	require.Error(t, err)
	de, ok := err.(*DecodeError)
	require.True(t, ok)
	assert.Equal(t, KindUnrecognizedData, de.Kind)
}
