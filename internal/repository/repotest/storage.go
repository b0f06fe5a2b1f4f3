package repotest

import (
	"context"
	"io"
	"sync"
)

// MemStorage adalah storage.FileStorage in-memory.
type MemStorage struct {
	mu    sync.Mutex
	Files map[string][]byte
}

func NewMemStorage() *MemStorage {
	return &MemStorage{Files: map[string][]byte{}}
}

func (m *MemStorage) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Files[name] = b
	return nil
}

func (m *MemStorage) Delete(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Files, name)
	return nil
}

func (m *MemStorage) URL(name string) string {
	return "/uploads/" + name
}

func (m *MemStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Files)
}
