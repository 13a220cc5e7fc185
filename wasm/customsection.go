package wasm

import (
	"bytes"
	"io"

	"github.com/sirupsen/logrus"
)

// CustomSectionContent is the typed interpretation of a custom section's
// body, dispatched on its name (spec §4.8). RawCustomSection is itself a
// valid CustomSectionContent for unrecognized names, or as the fallback
// when a recognized name's body fails to parse.
type CustomSectionContent interface{}

// RawCustomSection is the undispatched form: a name the dispatcher didn't
// recognize, or one whose body failed to parse.
type RawCustomSection struct {
	Name string
	Data []byte
}

// NameAssoc pairs an index with a name, the repeated element of the
// function-names and local-index-space name maps.
type NameAssoc struct {
	Index uint32
	Name  string
}

func (n NameAssoc) EncodeWasm(w io.Writer) error {
	if err := writeU32(w, n.Index); err != nil {
		return err
	}
	return writeString(w, n.Name)
}

func (n *NameAssoc) DecodeWasm(r io.Reader) error {
	idx, err := readU32(r)
	if err != nil {
		return wrapPath(err, fieldPath("index"))
	}
	name, err := readString(r)
	if err != nil {
		return wrapPath(err, fieldPath("name"))
	}
	n.Index, n.Name = idx, name
	return nil
}

// IndirectNameAssoc is one entry of the local-names sub-section: a
// function index paired with that function's own NameAssoc list.
type IndirectNameAssoc struct {
	Index uint32
	Names []NameAssoc
}

func (n IndirectNameAssoc) EncodeWasm(w io.Writer) error {
	if err := writeU32(w, n.Index); err != nil {
		return err
	}
	return EncodeVec(w, n.Names)
}

func (n *IndirectNameAssoc) DecodeWasm(r io.Reader) error {
	idx, err := readU32(r)
	if err != nil {
		return wrapPath(err, fieldPath("index"))
	}
	names, err := DecodeVec[NameAssoc, *NameAssoc](r)
	if err != nil {
		return wrapPath(err, fieldPath("names"))
	}
	n.Index, n.Names = idx, names
	return nil
}

const (
	nameSubModule = 0
	nameSubFunc   = 1
	nameSubLocal  = 2
)

// NameSubSection is one entry of a "name" custom section: exactly one of
// ModuleName, FuncNames, LocalNames is populated, selected by Kind.
type NameSubSection struct {
	Kind       byte
	ModuleName string
	FuncNames  []NameAssoc
	LocalNames []IndirectNameAssoc
}

// NameSection is the fully dispatched "name" custom section: an ascending
// sequence of sub-sections (spec §4.8, §3).
type NameSection struct {
	SubSections []NameSubSection
}

func decodeNameSubSections(data []byte) ([]NameSubSection, error) {
	r := bytes.NewReader(data)
	var out []NameSubSection
	for r.Len() > 0 {
		kind, err := readByte(r)
		if err != nil {
			return nil, err
		}
		length, err := readU32(r)
		if err != nil {
			return nil, wrapPath(err, fieldPath("len"))
		}
		raw, err := readBytesExact(r, length)
		if err != nil {
			return nil, err
		}
		sr := bytes.NewReader(raw)
		switch kind {
		case nameSubModule:
			name, err := readString(sr)
			if err != nil {
				return nil, wrapPath(err, variantPath("module"))
			}
			out = append(out, NameSubSection{Kind: kind, ModuleName: name})
		case nameSubFunc:
			names, err := DecodeVec[NameAssoc, *NameAssoc](sr)
			if err != nil {
				return nil, wrapPath(err, variantPath("func"))
			}
			out = append(out, NameSubSection{Kind: kind, FuncNames: names})
		case nameSubLocal:
			locals, err := DecodeVec[IndirectNameAssoc, *IndirectNameAssoc](sr)
			if err != nil {
				return nil, wrapPath(err, variantPath("local"))
			}
			out = append(out, NameSubSection{Kind: kind, LocalNames: locals})
		default:
			return nil, errUnsupportedDiscriminant("NameSubSection", int64(kind))
		}
	}
	return out, nil
}

// VersionedName is one {name, version} pair inside a producers field.
type VersionedName struct {
	Name    string
	Version string
}

func (v VersionedName) EncodeWasm(w io.Writer) error {
	if err := writeString(w, v.Name); err != nil {
		return err
	}
	return writeString(w, v.Version)
}

func (v *VersionedName) DecodeWasm(r io.Reader) error {
	name, err := readString(r)
	if err != nil {
		return wrapPath(err, fieldPath("name"))
	}
	version, err := readString(r)
	if err != nil {
		return wrapPath(err, fieldPath("version"))
	}
	v.Name, v.Version = name, version
	return nil
}

// ProducersField is one entry of the "producers" custom section: a field
// name (language/processed-by/sdk) mapped to its versioned tool list.
type ProducersField struct {
	FieldName string
	Values    []VersionedName
}

func (f ProducersField) EncodeWasm(w io.Writer) error {
	if err := writeString(w, f.FieldName); err != nil {
		return err
	}
	return EncodeVec(w, f.Values)
}

func (f *ProducersField) DecodeWasm(r io.Reader) error {
	name, err := readString(r)
	if err != nil {
		return wrapPath(err, fieldPath("field_name"))
	}
	values, err := DecodeVec[VersionedName, *VersionedName](r)
	if err != nil {
		return wrapPath(err, fieldPath("values"))
	}
	f.FieldName, f.Values = name, values
	return nil
}

// ProducersSection is the fully dispatched "producers" custom section.
type ProducersSection struct {
	Fields []ProducersField
}

func decodeProducersFields(data []byte) ([]ProducersField, error) {
	return DecodeVec[ProducersField, *ProducersField](bytes.NewReader(data))
}

// ExternalDebugInfoSection is the fully dispatched "external_debug_info"
// custom section: a single URL string.
type ExternalDebugInfoSection struct{ URL string }

// SourceMappingURLSection is the fully dispatched "sourceMappingURL"
// custom section.
type SourceMappingURLSection struct{ URL string }

// BuildIDSection is the fully dispatched "build_id" custom section: an
// opaque identifier, typically a UUID (spec §6/§8).
type BuildIDSection struct{ Data []byte }

// Typed decodes a custom section's body and dispatches it by name into
// one of the recognized typed shapes, falling back to RawCustomSection for
// unknown names or a body that fails to parse — custom sections are
// optional by construction and must never fail the enclosing module (spec
// §4.8). It returns nil when the section's name and body cannot be read
// out of the blob at all.
func (s *CustomSec) Typed() CustomSectionContent {
	payload, err := s.Payload.Contents()
	if err != nil {
		logrus.WithError(err).Debug("wasmbin: failed to materialize custom section blob")
		return nil
	}
	raw := RawCustomSection{Name: payload.Name, Data: payload.Data}

	switch payload.Name {
	case "name":
		subs, err := decodeNameSubSections(payload.Data)
		if err != nil {
			logrus.WithError(err).WithField("name", payload.Name).Debug("wasmbin: falling back to raw custom section")
			return raw
		}
		return NameSection{SubSections: subs}
	case "producers":
		fields, err := decodeProducersFields(payload.Data)
		if err != nil {
			logrus.WithError(err).WithField("name", payload.Name).Debug("wasmbin: falling back to raw custom section")
			return raw
		}
		return ProducersSection{Fields: fields}
	case "external_debug_info":
		url, err := readString(bytes.NewReader(payload.Data))
		if err != nil {
			logrus.WithError(err).WithField("name", payload.Name).Debug("wasmbin: falling back to raw custom section")
			return raw
		}
		return ExternalDebugInfoSection{URL: url}
	case "sourceMappingURL":
		url, err := readString(bytes.NewReader(payload.Data))
		if err != nil {
			logrus.WithError(err).WithField("name", payload.Name).Debug("wasmbin: falling back to raw custom section")
			return raw
		}
		return SourceMappingURLSection{URL: url}
	case "build_id":
		return BuildIDSection{Data: payload.Data}
	default:
		return raw
	}
}
