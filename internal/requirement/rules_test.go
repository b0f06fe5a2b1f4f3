package requirement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredDocumentCountMatchesLabels(t *testing.T) {
	for _, tipe := range []string{TipeBUP, TipeSakit, TipeJandaDuda, TipeAPS, "unknown", ""} {
		assert.Equal(t, len(RequiredDocumentLabels(tipe)), RequiredDocumentCount(tipe), tipe)
	}
}

func TestRequiredDocumentLabels(t *testing.T) {
	assert.Len(t, RequiredDocumentLabels(TipeBUP), BaseCount)
	assert.Len(t, RequiredDocumentLabels("unknown"), BaseCount)
	assert.Len(t, RequiredDocumentLabels(TipeSakit), BaseCount+1)
	assert.Len(t, RequiredDocumentLabels(TipeAPS), BaseCount+2)
	assert.Equal(t, RequiredDocumentLabels(TipeBUP), RequiredDocumentLabels("unknown"))
}

func TestJandaDudaSlots(t *testing.T) {
	slots := Slots(TipeJandaDuda)
	require.Len(t, slots, 13)

	tail := []string{slots[10].Label, slots[11].Label, slots[12].Label}
	assert.Equal(t, []string{"Akta Kematian", "Suket Janda/Duda", "Pas Foto Pasangan"}, tail)

	for i, s := range slots {
		assert.Equal(t, i, s.Index)
		assert.True(t, s.Required)
	}
}

func TestLabelsAreCopies(t *testing.T) {
	labels := RequiredDocumentLabels(TipeJandaDuda)
	labels[0] = "changed"
	assert.NotEqual(t, "changed", RequiredDocumentLabels(TipeJandaDuda)[0])
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 6, IndexOf(TipeBUP, "skp 2 tahun terakhir"))
	assert.Equal(t, 12, IndexOf(TipeJandaDuda, "Pas Foto Pasangan"))
	assert.Equal(t, -1, IndexOf(TipeBUP, "Akta Kematian"))
}
