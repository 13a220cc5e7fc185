package wasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitCollectsEverySection(t *testing.T) {
	m := &Module{Sections: []Section{
		&TypeSec{Payload: NewBlobFromValue[funcTypeList, *funcTypeList](nil)},
		&ExportSec{Payload: NewBlobFromValue[exportList, *exportList](nil)},
	}}

	var kinds []Kind
	err := Visit(m, func(s Section) error {
		kinds = append(kinds, s.Kind())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindType, KindExport}, kinds)
}

func TestVisitPropagatesCallerError(t *testing.T) {
	m := &Module{Sections: []Section{
		&TypeSec{Payload: NewBlobFromValue[funcTypeList, *funcTypeList](nil)},
	}}

	boom := assertionError("boom")
	err := Visit(m, func(s *TypeSec) error {
		return boom
	})
	require.Error(t, err)
	ve, ok := err.(*VisitError)
	require.True(t, ok)
	assert.Equal(t, boom, ve.Cause)
	assert.Equal(t, "(root)[0]", ve.Path.String())
}

func TestVisitCustomSectionNeverFailsTheWalk(t *testing.T) {
	payload := NewBlobFromValue[CustomSectionPayload, *CustomSectionPayload](CustomSectionPayload{Name: "x", Data: []byte{1}})
	m := &Module{Sections: []Section{&CustomSec{Payload: payload}}}

	var visited int
	err := Visit(m, func(*CustomSec) error {
		visited++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, visited)
}

type assertionError string

func (e assertionError) Error() string { return string(e) }
