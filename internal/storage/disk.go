package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Disk menyimpan berkas di bawah Dir dan disajikan Fiber dari PublicPrefix (mis. "/uploads").
type Disk struct {
	Dir          string
	PublicPrefix string
}

func NewDisk(dir, publicPrefix string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: buat folder upload: %w", err)
	}
	return &Disk{Dir: dir, PublicPrefix: strings.TrimRight(publicPrefix, "/")}, nil
}

func (d *Disk) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	clean, err := cleanName(name)
	if err != nil {
		return err
	}
	path := filepath.Join(d.Dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("storage: tulis %s: %w", clean, err)
	}
	return f.Close()
}

func (d *Disk) Delete(ctx context.Context, name string) error {
	clean, err := cleanName(name)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(d.Dir, filepath.FromSlash(clean)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (d *Disk) URL(name string) string {
	clean, err := cleanName(name)
	if err != nil {
		return ""
	}
	return d.PublicPrefix + "/" + clean
}
