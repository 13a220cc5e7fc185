package wasm

import (
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/vertexdlt/wasmbin/leb128"
)

func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errIO(err)
	}
	return buf[0], nil
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func readU32(r io.Reader) (uint32, error) {
	v, err := leb128.ReadUint32(r)
	if err != nil {
		return 0, leb128Err(err)
	}
	return v, nil
}

func writeU32(w io.Writer, v uint32) error {
	return leb128.WriteUint32(w, v)
}

func readU64(r io.Reader) (uint64, error) {
	v, err := leb128.ReadUint64(r)
	if err != nil {
		return 0, leb128Err(err)
	}
	return v, nil
}

func writeU64(w io.Writer, v uint64) error {
	return leb128.WriteUint64(w, v)
}

func readI32(r io.Reader) (int32, error) {
	v, err := leb128.ReadInt32(r)
	if err != nil {
		return 0, leb128Err(err)
	}
	return v, nil
}

func writeI32(w io.Writer, v int32) error {
	return leb128.WriteInt32(w, v)
}

func readI64(r io.Reader) (int64, error) {
	v, err := leb128.ReadInt64(r)
	if err != nil {
		return 0, leb128Err(err)
	}
	return v, nil
}

func writeI64(w io.Writer, v int64) error {
	return leb128.WriteInt64(w, v)
}

func leb128Err(err error) error {
	if err == leb128.ErrOverflow {
		return errLeb128(err.Error())
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errIO(err)
	}
	return errIO(err)
}

func readF32bits(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errIO(err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func writeF32bits(w io.Writer, bits uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], bits)
	_, err := w.Write(buf[:])
	return err
}

func readF64bits(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errIO(err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func writeF64bits(w io.Writer, bits uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], bits)
	_, err := w.Write(buf[:])
	return err
}

func readBool(r io.Reader) (bool, error) {
	b, err := readByte(r)
	if err != nil {
		return false, err
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, errUnsupportedDiscriminant("bool", int64(b))
	}
}

func writeBool(w io.Writer, v bool) error {
	if v {
		return writeByte(w, 0x01)
	}
	return writeByte(w, 0x00)
}

// readBytesExact reads exactly n raw bytes, used once a length prefix has
// already been consumed (spec §4.1 "u8 and byte arrays ... read verbatim").
func readBytesExact(r io.Reader, n uint32) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errIO(err)
	}
	return buf, nil
}

// readBytesToEOF reads raw bytes until the reader is exhausted. It is used
// for byte slices living inside an already length-framed region (spec
// §4.3: "the byte length already bounds the sequence").
func readBytesToEOF(r io.Reader) ([]byte, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errIO(err)
	}
	return buf, nil
}

func readString(r io.Reader) (string, error) {
	n, err := readU32(r)
	if err != nil {
		return "", wrapPath(err, fieldPath("len"))
	}
	raw, err := readBytesExact(r, n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", errUTF8(errInvalidUTF8)
	}
	return string(raw), nil
}

func writeString(w io.Writer, s string) error {
	if err := writeU32(w, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}
