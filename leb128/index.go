package leb128

import "io"

// WriteUint64 writes v as an unsigned LEB128 integer.
func WriteUint64(w io.Writer, v uint64) error {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		if _, err := w.Write([]byte{b}); err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
	}
}

// WriteUint32 writes v as an unsigned LEB128 integer.
func WriteUint32(w io.Writer, v uint32) error {
	return WriteUint64(w, uint64(v))
}

// WriteInt64 writes v as a signed LEB128 integer.
func WriteInt64(w io.Writer, v int64) error {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		signBitSet := b&0x40 != 0
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			_, err := w.Write([]byte{b})
			return err
		}
		b |= 0x80
		if _, err := w.Write([]byte{b}); err != nil {
			return err
		}
	}
}

// WriteInt32 writes v as a signed LEB128 integer.
func WriteInt32(w io.Writer, v int32) error {
	return WriteInt64(w, int64(v))
}
