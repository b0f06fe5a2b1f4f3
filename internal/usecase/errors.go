package usecase

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("data tidak ditemukan")
	ErrForbidden          = errors.New("akses ditolak")
	ErrInvalidCredentials = errors.New("NIP atau Password salah")
	ErrInactive           = errors.New("akun tidak aktif")
	ErrInvalidTransition  = errors.New("perubahan status tidak diizinkan")
	ErrNotImpersonating   = errors.New("sesi ini bukan sesi impersonasi")
)

// ValidationError membawa pesan per field (nama field atau index slot dokumen).
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "validasi gagal: " + strings.Join(parts, "; ")
}

func invalid(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
