package wasm

import "io"

// magic is the 4-byte "\0asm" signature followed by the 4-byte version
// this package reads and writes (spec §4.1).
var magic = [8]byte{0x00, 'a', 's', 'm', 0x01, 0x00, 0x00, 0x00}

// Module is an ordered list of sections preceded by the magic/version
// prefix (spec §4.7). Sections appear in canonical order; custom sections
// may appear anywhere among them without disturbing that order.
type Module struct {
	Sections []Section
}

// DecodeModule reads a whole module: the magic prefix, then sections until
// the reader is exhausted. Each section is checked against the canonical
// order before being appended.
func DecodeModule(r io.Reader) (*Module, error) {
	var got [8]byte
	if _, err := io.ReadFull(r, got[:]); err != nil {
		return nil, errInvalidMagic(got)
	}
	if got != magic {
		return nil, errInvalidMagic(got)
	}

	tracker := newSectionOrderTracker()
	var sections []Section
	for {
		kindByte, err := readByte(r)
		if err != nil {
			if de, ok := err.(*DecodeError); ok && de.Cause == io.EOF {
				break
			}
			return nil, err
		}
		kind := Kind(kindByte)
		if err := tracker.observe(kind); err != nil {
			return nil, wrapPath(err, indexPath(len(sections)))
		}
		section, err := decodeSection(r, kind)
		if err != nil {
			return nil, wrapPath(err, indexPath(len(sections)))
		}
		sections = append(sections, section)
	}
	return &Module{Sections: sections}, nil
}

// EncodeWasm writes the magic prefix followed by every section in order.
func (m *Module) EncodeWasm(w io.Writer) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	for i, s := range m.Sections {
		if err := s.EncodeWasm(w); err != nil {
			return wrapPath(err, indexPath(i))
		}
	}
	return nil
}

// FindSection returns the first section for which match returns true.
func FindSection(m *Module, match func(Section) bool) (Section, bool) {
	for _, s := range m.Sections {
		if match(s) {
			return s, true
		}
	}
	return nil, false
}

// FindStdSection returns the first section of the given concrete type,
// mirroring the original crate's typed accessors (spec §4.7 "exposes
// typed accessors").
func FindStdSection[S Section](m *Module) (S, bool) {
	var zero S
	for _, s := range m.Sections {
		if typed, ok := s.(S); ok {
			return typed, true
		}
	}
	return zero, false
}

// insertionIndexFor reports where a new section of kind k belongs so that
// m.Sections keeps its canonical order.
func insertionIndexFor(sections []Section, k Kind) int {
	rank := logicalRank(k)
	for i, s := range sections {
		sr := logicalRank(s.Kind())
		if sr < 0 {
			continue
		}
		if sr > rank {
			return i
		}
	}
	return len(sections)
}

// FindOrInsertStdSection returns the existing section of kind, or builds
// one with makeSection, inserts it at the position canonical order
// requires, and returns it (spec §4.7).
func FindOrInsertStdSection[S Section](m *Module, kind Kind, makeSection func() S) S {
	if existing, ok := FindStdSection[S](m); ok {
		return existing
	}
	fresh := makeSection()
	idx := insertionIndexFor(m.Sections, kind)
	m.Sections = append(m.Sections, nil)
	copy(m.Sections[idx+1:], m.Sections[idx:])
	m.Sections[idx] = fresh
	return fresh
}
