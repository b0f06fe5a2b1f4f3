// Package storage menyimpan berkas dokumen pengajuan, di disk lokal atau S3.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidName = errors.New("storage: nama berkas tidak valid")

type FileStorage interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, name string) error
	// URL alamat publik berkas, relatif terhadap origin untuk disk lokal.
	URL(name string) string
}

// ObjectName membuat nama berkas unik, contoh "pengajuan/12/2025/09/<uuid>.pdf".
func ObjectName(pengajuanID uint, original string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("pengajuan/%d/%d/%02d/%s%s", pengajuanID, now.Year(), now.Month(), uuid.New(), ext)
}

func cleanName(name string) (string, error) {
	clean := filepath.ToSlash(filepath.Clean("/" + name))[1:]
	if clean == "" || clean == "." || strings.HasPrefix(clean, "../") {
		return "", ErrInvalidName
	}
	return clean, nil
}
