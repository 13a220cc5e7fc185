package wasm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeExpressionFlat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SimpleInstruction(opI32Add).EncodeWasm(&buf))
	require.NoError(t, InstrI32Const{Value: 5}.EncodeWasm(&buf))
	require.NoError(t, buf.WriteByte(opEnd))

	instrs, err := DecodeExpression(&buf)
	require.NoError(t, err)
	require.Len(t, instrs, 2)
	assert.Equal(t, SimpleInstruction(opI32Add), instrs[0])
	assert.Equal(t, InstrI32Const{Value: 5}, instrs[1])
}

func TestDecodeExpressionNestedBlock(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InstrBlockStart{Type: BlockType{Empty: true}}.EncodeWasm(&buf))
	require.NoError(t, SimpleInstruction(opNop).EncodeWasm(&buf))
	require.NoError(t, buf.WriteByte(opEnd)) // closes the block
	require.NoError(t, buf.WriteByte(opEnd)) // closes the expression

	instrs, err := DecodeExpression(&buf)
	require.NoError(t, err)
	require.Len(t, instrs, 3)
	assert.Equal(t, InstrBlockStart{Type: BlockType{Empty: true}}, instrs[0])
	assert.Equal(t, SimpleInstruction(opNop), instrs[1])
	assert.Equal(t, SimpleInstruction(opEnd), instrs[2])
}

// TestDecodeExpressionBlockTypeIndex proves a block using the multi-value
// "type index" BlockType form (as opposed to Empty or a single ValueType)
// decodes correctly through an ordinary instruction stream.
func TestDecodeExpressionBlockTypeIndex(t *testing.T) {
	idx := TypeIdx(7)
	var buf bytes.Buffer
	require.NoError(t, InstrBlockStart{Type: BlockType{Type: &idx}}.EncodeWasm(&buf))
	require.NoError(t, buf.WriteByte(opEnd)) // closes the block
	require.NoError(t, buf.WriteByte(opEnd)) // closes the expression

	instrs, err := DecodeExpression(&buf)
	require.NoError(t, err)
	require.Len(t, instrs, 2)
	got, ok := instrs[0].(InstrBlockStart)
	require.True(t, ok)
	require.NotNil(t, got.Type.Type)
	assert.Equal(t, idx, *got.Type.Type)
}

func TestExpressionRoundtrip(t *testing.T) {
	instrs := []Instruction{
		InstrLocalGet{Local: 0},
		InstrLocalGet{Local: 1},
		SimpleInstruction(opI32Add),
	}
	var buf bytes.Buffer
	require.NoError(t, EncodeExpression(&buf, instrs))

	got, err := DecodeExpression(&buf)
	require.NoError(t, err)
	assert.Equal(t, instrs, got)
}

func TestDecodeInstructionUnsupportedDiscriminant(t *testing.T) {
	// 0x06 is not a wired opcode.
	_, err := decodeInstructionWithDiscriminant(bytes.NewReader(nil), 0x06)
	require.Error(t, err)
	de, ok := err.(*DecodeError)
	require.True(t, ok)
	assert.Equal(t, KindUnsupportedDiscriminant, de.Kind)
}

func TestMiscOpRoundtrip(t *testing.T) {
	op := MiscMemoryCopy{Dest: 0, Src: 1}
	var buf bytes.Buffer
	require.NoError(t, op.EncodeWasm(&buf))
	got, err := DecodeMiscOp(&buf)
	require.NoError(t, err)
	assert.Equal(t, op, got)
}

func TestAtomicOpRoundtrip(t *testing.T) {
	op := AtomicMemOp{Opcode: atomicI32RmwAdd, Arg: MemArg{Align: 2, Offset: 4}}
	var buf bytes.Buffer
	require.NoError(t, op.EncodeWasm(&buf))
	got, err := DecodeAtomicOp(&buf)
	require.NoError(t, err)
	assert.Equal(t, op, got)
}

func TestSIMDOpRoundtrip(t *testing.T) {
	op := SIMDMemOp{Opcode: simdV128Load, Arg: MemArg{Align: 4, Offset: 0}}
	var buf bytes.Buffer
	require.NoError(t, op.EncodeWasm(&buf))
	got, err := DecodeSIMDOp(&buf)
	require.NoError(t, err)
	assert.Equal(t, op, got)
}
