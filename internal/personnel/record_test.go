package personnel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeShapes(t *testing.T) {
	shapes := map[string]string{
		"bare array":    `[{"id":1,"nama":"Budi Santoso","nip":"19700101 199103 1 001","jabatan":"Penghulu","unit_kerja":"KUA Padang Timur","pangkat":"Penata (III/c)"}]`,
		"data array":    `{"data":[{"id":"1","name":"Budi Santoso","nip_baru":"197001011991031001","position":"Penghulu","unit":"KUA Padang Timur","rank":"Penata (III/c)"}]}`,
		"data items":    `{"success":true,"data":{"items":[{"pegawai_id":1,"nama_lengkap":"Budi Santoso","NIP":"1970.0101.1991.0310.01","nama_jabatan":"Penghulu","satuan_kerja":"KUA Padang Timur","pangkat_golongan":"Penata (III/c)"}],"total":1}}`,
		"numeric nip":   `{"data":[{"id":1,"nama":"Budi Santoso","nip":197001011991031001,"jabatan":"Penghulu","unit_kerja":"KUA Padang Timur","pangkat":"Penata (III/c)"}]}`,
		"nested unit":   `{"data":{"rows":[{"id":1,"nama":"Budi Santoso","nip":"197001011991031001","jabatan":"Penghulu","unit_kerja":{"nama_unit":"KUA Padang Timur"},"pangkat":"Penata (III/c)"}]}}`,
	}

	want := Record{
		ID:       "1",
		Name:     "Budi Santoso",
		NIP:      "197001011991031001",
		Position: "Penghulu",
		Unit:     "KUA Padang Timur",
		Rank:     "Penata (III/c)",
	}

	for name, raw := range shapes {
		t.Run(name, func(t *testing.T) {
			got, err := Normalize([]byte(raw))
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, want, got[0])
		})
	}
}

func TestNormalizeDropsEmptyAndDuplicates(t *testing.T) {
	got, err := Normalize([]byte(`[
		{"id":1,"nama":"A","nip":"1970-01"},
		{"id":2,"nama":"A lagi","nip":"197001"},
		{"id":3},
		{"id":4,"nama":"Tanpa NIP"}
	]`))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "4", got[1].ID)
}

func TestNormalizeNumericNIPKeepsDigits(t *testing.T) {
	got, err := Normalize([]byte(`[
		{"id":10,"nama":"A","nip":197001011991031001},
		{"id":11,"nama":"B","nip":197001011991031002}
	]`))
	require.NoError(t, err)
	require.Len(t, got, 2, "NIP berbeda tidak boleh tergabung")
	assert.Equal(t, "197001011991031001", got[0].NIP)
	assert.Equal(t, "197001011991031002", got[1].NIP)
	assert.Equal(t, "10", got[0].ID)
}

func TestNormalizeEmptyAndInvalid(t *testing.T) {
	got, err := Normalize(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Normalize([]byte(`{"message":"ok"}`))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Normalize([]byte(`[{"nama":`))
	assert.Error(t, err)
}
