package requirement

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	MaxDefaultBytes int64 = 350 * 1024
	MaxSKPBytes     int64 = 1536 * 1024
)

var allowedMimes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

var allowedExts = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// MaxFileSize: dokumen SKP boleh sampai 1.5 MB, lainnya 350 KB.
func MaxFileSize(label string) int64 {
	if strings.Contains(strings.ToLower(label), "skp") {
		return MaxSKPBytes
	}
	return MaxDefaultBytes
}

func AllowedMime(mime string) bool {
	// "application/pdf; charset=..." dari sniffing tetap diterima
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	return allowedMimes[strings.ToLower(strings.TrimSpace(mime))]
}

type FieldError struct {
	Index   int
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("dokumen #%d: %s", e.Index+1, e.Message)
}

// ValidateUpload memeriksa satu file untuk slot tertentu. nil berarti valid.
func ValidateUpload(index int, label, filename, mime string, size int64) *FieldError {
	if size <= 0 {
		return &FieldError{Index: index, Message: "File kosong"}
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExts[ext] || !AllowedMime(mime) {
		return &FieldError{Index: index, Message: "Tipe file harus PDF, JPG, atau PNG"}
	}
	if limit := MaxFileSize(label); size > limit {
		return &FieldError{Index: index, Message: "Ukuran file maksimal " + humanSize(limit)}
	}
	return nil
}

type UploadCandidate struct {
	Index    int
	Label    string
	Filename string
	Mime     string
	Size     int64
}

// ValidateUploads mengembalikan pesan error per index slot. Map kosong berarti semua valid.
func ValidateUploads(candidates []UploadCandidate) map[int]string {
	errs := make(map[int]string)
	for _, c := range candidates {
		if fe := ValidateUpload(c.Index, c.Label, c.Filename, c.Mime, c.Size); fe != nil {
			errs[c.Index] = fe.Message
		}
	}
	return errs
}

func humanSize(n int64) string {
	if n >= 1024*1024 {
		mb := float64(n) / (1024 * 1024)
		return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.1f", mb), "0"), ".") + " MB"
	}
	return fmt.Sprintf("%d KB", n/1024)
}
