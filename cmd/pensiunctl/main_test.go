package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func offline(t *testing.T) {
	t.Helper()
	prev := cfg
	cfg.BackendBaseURL = ""
	cfg.RedisURL = ""
	cfg.LocalStoreDir = t.TempDir()
	cfg.Origin = "https://sipensiun.example.go.id"
	t.Cleanup(func() { cfg = prev })
}

func TestNomor(t *testing.T) {
	offline(t)
	out, err := execute(t, "nomor", "12", "--tanggal", "2025-03-05", "--kode", "Kw.18.01,KP.01.1")
	require.NoError(t, err)
	assert.Equal(t, "12/Kw.18.01/KP.01.1/03/2025\n", out)

	_, err = execute(t, "nomor", "12a")
	assert.Error(t, err)
}

func TestDokumen(t *testing.T) {
	out, err := execute(t, "dokumen", "janda_duda")
	require.NoError(t, err)
	assert.Contains(t, out, "Pas Foto Pasangan")
	assert.Contains(t, out, "Total 13 dokumen")

	_, err = execute(t, "dokumen", "lainnya")
	assert.Error(t, err)
}

func TestRenderBlankForm(t *testing.T) {
	offline(t)
	target := filepath.Join(t.TempDir(), "disiplin.html")
	_, err := execute(t, "render", "disiplin", "-o", target)
	require.NoError(t, err)

	html, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(html), `<base href="https://sipensiun.example.go.id/">`)
	assert.Contains(t, string(html), "window.print()")
}

func TestLettersOffline(t *testing.T) {
	offline(t)
	src := filepath.Join(t.TempDir(), "surat.json")
	require.NoError(t, os.WriteFile(src, []byte(`{
		"nomorSurat": "7/Kw.18.01/09/2025",
		"tanggalSurat": "2025-09-02",
		"namaPegawai": "Siti Aminah",
		"nipPegawai": "19660315 199103 2 002"
	}`), 0o644))

	out, err := execute(t, "letters", "save", src)
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)

	out, err = execute(t, "letters", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "7/Kw.18.01/09/2025")
	assert.Contains(t, out, "2 September 2025")

	out, err = execute(t, "letters", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, `"nipPegawai": "196603151991032002"`)
	assert.Contains(t, out, `"signatureMode": "manual"`)

	_, err = execute(t, "letters", "delete", id)
	require.NoError(t, err)
	_, err = execute(t, "letters", "show", id)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "kosong.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"namaPegawai":"X"}`), 0o644))
	_, err = execute(t, "letters", "save", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nomorSurat")
}

func TestSearchNeedsBackend(t *testing.T) {
	offline(t)
	_, err := execute(t, "search", "ahmad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BACKEND_BASE_URL")
}
