package leb128

import (
	"errors"
	"io"
)

// ErrOverflow is returned when a LEB128-encoded integer does not fit the
// requested bit width, mirroring the original panic-on-overflow behavior
// but as a plain error the caller can fold into a DecodeError.
var ErrOverflow = errors.New("leb128: value overflows target width")

// maxShift bounds how many continuation bytes we tolerate before giving up
// on a stream that never terminates. WASM never needs more than 10 bytes
// even for a padded 64-bit value, so 80 bits of shift is generous slack for
// non-minimal encodings real-world producers emit.
const maxShift = 80

func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func readUnsigned(r io.Reader, width uint) (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := readByte(r)
		if err != nil {
			return 0, err
		}
		if shift < 64 {
			result |= uint64(b&0x7f) << shift
		}
		shift += 7
		if b&0x80 == 0 {
			if width < 64 && result>>width != 0 {
				return 0, ErrOverflow
			}
			return result, nil
		}
		if shift > maxShift {
			return 0, ErrOverflow
		}
	}
}

func readSigned(r io.Reader, width uint) (int64, error) {
	first, err := readByte(r)
	if err != nil {
		return 0, err
	}
	return readSignedFrom(r, first, width)
}

// readSignedFrom runs the signed LEB128 continuation loop starting from a
// first byte the caller already read, for callers that need to inspect
// that byte before committing to this decode (BlockType's type-index
// form, see ReadInt33From).
func readSignedFrom(r io.Reader, first byte, width uint) (int64, error) {
	var result int64
	var shift uint
	var last byte
	b := first
	for {
		if shift < 64 {
			result |= int64(b&0x7f) << shift
		}
		shift += 7
		last = b
		if b&0x80 == 0 {
			break
		}
		if shift > maxShift {
			return 0, ErrOverflow
		}
		next, err := readByte(r)
		if err != nil {
			return 0, err
		}
		b = next
	}
	if shift < 64 && last&0x40 != 0 {
		result |= -1 << shift
	}
	if width < 64 {
		min := int64(-1) << (width - 1)
		max := (int64(1) << (width - 1)) - 1
		if result < min || result > max {
			return 0, ErrOverflow
		}
	}
	return result, nil
}

// ReadUint32 reads a LEB128-encoded unsigned integer bounded to 32 bits.
func ReadUint32(r io.Reader) (uint32, error) {
	v, err := readUnsigned(r, 32)
	return uint32(v), err
}

// ReadUint64 reads a LEB128-encoded unsigned integer bounded to 64 bits.
func ReadUint64(r io.Reader) (uint64, error) {
	return readUnsigned(r, 64)
}

// ReadInt32 reads a LEB128-encoded signed integer bounded to 32 bits.
func ReadInt32(r io.Reader) (int32, error) {
	v, err := readSigned(r, 32)
	return int32(v), err
}

// ReadInt64 reads a LEB128-encoded signed integer bounded to 64 bits.
func ReadInt64(r io.Reader) (int64, error) {
	return readSigned(r, 64)
}

// ReadInt33From reads a signed LEB128 integer bounded to 33 bits, given
// its first byte has already been consumed by the caller. Used where a
// discriminant byte must be inspected against a set of single-byte forms
// before falling back to a multi-byte signed integer (WASM's blocktype
// type-index form).
func ReadInt33From(r io.Reader, first byte) (int64, error) {
	return readSignedFrom(r, first, 33)
}
