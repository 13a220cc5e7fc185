package wasm

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discTestResult string

func TestDecodeByDiscriminantSpecificBeforeCatchAll(t *testing.T) {
	entries := []DiscriminantEntry[discTestResult]{
		{Match: nil, Decode: func(io.Reader, byte) (discTestResult, error) { return "catch-all", nil }},
		{
			Match:  func(d byte) bool { return d == 0x01 },
			Decode: func(io.Reader, byte) (discTestResult, error) { return "specific", nil },
		},
	}

	got, err := DecodeByDiscriminant(bytes.NewReader([]byte{0x01}), "discTestResult", entries)
	require.NoError(t, err)
	assert.Equal(t, discTestResult("specific"), got, "a specific entry must win even when listed after a catch-all")
}

func TestDecodeByDiscriminantFallsBackToCatchAll(t *testing.T) {
	entries := []DiscriminantEntry[discTestResult]{
		{
			Match:  func(d byte) bool { return d == 0x01 },
			Decode: func(io.Reader, byte) (discTestResult, error) { return "specific", nil },
		},
		{Match: nil, Decode: func(io.Reader, byte) (discTestResult, error) { return "catch-all", nil }},
	}

	got, err := DecodeByDiscriminant(bytes.NewReader([]byte{0x02}), "discTestResult", entries)
	require.NoError(t, err)
	assert.Equal(t, discTestResult("catch-all"), got)
}

func TestDecodeByDiscriminantUnrecognized(t *testing.T) {
	entries := []DiscriminantEntry[discTestResult]{
		{
			Match:  func(d byte) bool { return d == 0x01 },
			Decode: func(io.Reader, byte) (discTestResult, error) { return "specific", nil },
		},
	}

	_, err := DecodeByDiscriminant(bytes.NewReader([]byte{0x02}), "discTestResult", entries)
	require.Error(t, err)
	de, ok := err.(*DecodeError)
	require.True(t, ok)
	assert.Equal(t, KindUnsupportedDiscriminant, de.Kind)
}
