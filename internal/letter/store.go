package letter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"sipensiun/internal/backend"
	"sipensiun/internal/kvstore"

	"github.com/google/uuid"
)

const LocalKey = "sipensiun:letters"

var ErrNotFound = errors.New("surat tidak ditemukan")

type Store interface {
	List(ctx context.Context) ([]StoredLetter, error)
	GetByID(ctx context.Context, id string) (StoredLetter, error)
	// Save membuat surat baru bila ID kosong, selain itu memperbarui surat ber-ID tsb.
	Save(ctx context.Context, l StoredLetter) (StoredLetter, error)
	Delete(ctx context.Context, id string) error
}

// Select dipanggil sekali di composition root. Remote dipakai bila backend dikonfigurasi.
func Select(backendConfigured bool, remote, local Store) Store {
	if backendConfigured && remote != nil {
		return remote
	}
	return local
}

// SavedLocallyError menandai surat yang gagal dikirim ke remote tetapi
// berhasil disimpan lokal.
type SavedLocallyError struct {
	Remote error
}

func (e *SavedLocallyError) Error() string {
	return "surat disimpan lokal: " + e.Remote.Error()
}

func (e *SavedLocallyError) Unwrap() error {
	return e.Remote
}

// SaveWithFallback mencoba simpan ke remote; bila gagal, surat tetap disimpan
// lokal agar input pengguna tidak hilang. Error remote dibungkus
// SavedLocallyError; bila lokal juga gagal, keduanya digabung.
func SaveWithFallback(ctx context.Context, remote, local Store, l StoredLetter) (StoredLetter, error) {
	saved, err := remote.Save(ctx, l)
	if err == nil {
		return saved, nil
	}
	localSaved, localErr := local.Save(ctx, l)
	if localErr != nil {
		return l, errors.Join(err, localErr)
	}
	return localSaved, &SavedLocallyError{Remote: err}
}

// Doer dipenuhi oleh backend.Client.
type Doer interface {
	Do(ctx context.Context, req backend.Request, out any) error
}

type RemoteStore struct {
	client Doer
}

func NewRemoteStore(client Doer) *RemoteStore {
	return &RemoteStore{client: client}
}

func (s *RemoteStore) List(ctx context.Context) ([]StoredLetter, error) {
	var wires []Wire
	err := s.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/api/letters",
		Query:  map[string]string{"all": "true"},
	}, &wires)
	if err != nil {
		return nil, err
	}
	out := make([]StoredLetter, len(wires))
	for i, w := range wires {
		out[i] = FromWire(w)
	}
	return out, nil
}

func (s *RemoteStore) GetByID(ctx context.Context, id string) (StoredLetter, error) {
	var w Wire
	err := s.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: "/api/letters/" + url.PathEscape(id)}, &w)
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return StoredLetter{}, ErrNotFound
	}
	if err != nil {
		return StoredLetter{}, err
	}
	return FromWire(w), nil
}

func (s *RemoteStore) Save(ctx context.Context, l StoredLetter) (StoredLetter, error) {
	req := backend.Request{Method: http.MethodPost, Path: "/api/letters", Body: ToWire(l)}
	if l.ID != "" {
		req.Method = http.MethodPut
		req.Path = "/api/letters/" + url.PathEscape(l.ID)
	}
	var w Wire
	if err := s.client.Do(ctx, req, &w); err != nil {
		return l, err
	}
	return FromWire(w), nil
}

func (s *RemoteStore) Delete(ctx context.Context, id string) error {
	return s.client.Do(ctx, backend.Request{Method: http.MethodDelete, Path: "/api/letters/" + url.PathEscape(id)}, nil)
}

// LocalStore menyimpan seluruh surat sebagai satu array JSON di satu key.
type LocalStore struct {
	kv  kvstore.Store
	key string
	mu  sync.Mutex
}

func NewLocalStore(kv kvstore.Store) *LocalStore {
	return &LocalStore{kv: kv, key: LocalKey}
}

func (s *LocalStore) load(ctx context.Context) ([]StoredLetter, error) {
	b, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var letters []StoredLetter
	if err := json.Unmarshal(b, &letters); err != nil {
		return nil, fmt.Errorf("letter: data lokal rusak: %w", err)
	}
	return letters, nil
}

func (s *LocalStore) persist(ctx context.Context, letters []StoredLetter) error {
	if letters == nil {
		letters = []StoredLetter{}
	}
	b, err := json.Marshal(letters)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key, b)
}

func (s *LocalStore) List(ctx context.Context) ([]StoredLetter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *LocalStore) GetByID(ctx context.Context, id string) (StoredLetter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	letters, err := s.load(ctx)
	if err != nil {
		return StoredLetter{}, err
	}
	for _, l := range letters {
		if l.ID == id {
			return l, nil
		}
	}
	return StoredLetter{}, ErrNotFound
}

func (s *LocalStore) Save(ctx context.Context, l StoredLetter) (StoredLetter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	letters, err := s.load(ctx)
	if err != nil {
		return l, err
	}

	if l.ID == "" {
		l.ID = uuid.NewString()
		letters = append(letters, l)
	} else {
		replaced := false
		for i := range letters {
			if letters[i].ID == l.ID {
				letters[i] = l
				replaced = true
				break
			}
		}
		if !replaced {
			letters = append(letters, l)
		}
	}

	if err := s.persist(ctx, letters); err != nil {
		return l, err
	}
	return l, nil
}

func (s *LocalStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	letters, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := letters[:0]
	for _, l := range letters {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	return s.persist(ctx, kept)
}
