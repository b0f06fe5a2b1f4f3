package letter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"sipensiun/internal/backend"
	"sipensiun/internal/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoer struct {
	calls []backend.Request
	reply any
	err   error
}

func (f *fakeDoer) Do(ctx context.Context, req backend.Request, out any) error {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return f.err
	}
	if out == nil || f.reply == nil {
		return nil
	}
	b, err := json.Marshal(f.reply)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func newLocal(t *testing.T) *LocalStore {
	t.Helper()
	kv, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewLocalStore(kv)
}

func TestRemoteStoreRequests(t *testing.T) {
	ctx := context.Background()
	l := sampleLetter()
	doer := &fakeDoer{reply: []Wire{ToWire(l)}}
	s := NewRemoteStore(doer)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, l, list[0])
	assert.Equal(t, http.MethodGet, doer.calls[0].Method)
	assert.Equal(t, "/api/letters", doer.calls[0].Path)
	assert.Equal(t, "true", doer.calls[0].Query["all"])

	doer.reply = ToWire(l)
	created := l
	created.ID = ""
	_, err = s.Save(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, doer.calls[1].Method)
	assert.Equal(t, "/api/letters", doer.calls[1].Path)
	body, ok := doer.calls[1].Body.(Wire)
	require.True(t, ok)
	assert.Nil(t, body.ID)

	saved, err := s.Save(ctx, l)
	require.NoError(t, err)
	assert.Equal(t, l.ID, saved.ID)
	assert.Equal(t, http.MethodPut, doer.calls[2].Method)
	assert.Equal(t, "/api/letters/"+l.ID, doer.calls[2].Path)

	require.NoError(t, s.Delete(ctx, l.ID))
	assert.Equal(t, http.MethodDelete, doer.calls[3].Method)
}

func TestRemoteStoreNotFound(t *testing.T) {
	s := NewRemoteStore(&fakeDoer{err: &backend.APIError{Status: http.StatusNotFound, Message: "Surat tidak ditemukan"}})
	_, err := s.GetByID(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newLocal(t)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	l := sampleLetter()
	l.ID = ""
	first, err := s.Save(ctx, l)
	require.NoError(t, err)
	assert.Len(t, first.ID, 36)

	second, err := s.Save(ctx, l)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	first.NomorSurat = "126/Kw.18.01/KP.01.1/09/2025"
	_, err = s.Save(ctx, first)
	require.NoError(t, err)

	got, err := s.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "126/Kw.18.01/KP.01.1/09/2025", got.NomorSurat)

	require.NoError(t, s.Delete(ctx, second.ID))
	list, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)

	_, err = s.GetByID(ctx, second.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

type brokenKV struct{}

func (brokenKV) Get(context.Context, string) ([]byte, error) { return []byte("{bukan json"), nil }
func (brokenKV) Set(context.Context, string, []byte) error   { return errors.New("disk penuh") }
func (brokenKV) Delete(context.Context, string) error        { return nil }

func TestLocalStoreSurfacesErrors(t *testing.T) {
	s := NewLocalStore(brokenKV{})
	_, err := s.List(context.Background())
	assert.Error(t, err)
	_, err = s.Save(context.Background(), sampleLetter())
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	remote := NewRemoteStore(&fakeDoer{})
	local := newLocal(t)
	assert.Same(t, remote, Select(true, remote, local))
	assert.Same(t, local, Select(false, remote, local))
	assert.Same(t, local, Select(true, nil, local))
}

func TestSaveWithFallback(t *testing.T) {
	ctx := context.Background()
	remoteErr := &backend.APIError{Status: http.StatusBadGateway, Message: "Request failed"}
	remote := NewRemoteStore(&fakeDoer{err: remoteErr})
	local := newLocal(t)

	l := sampleLetter()
	l.ID = ""
	saved, err := SaveWithFallback(ctx, remote, local, l)
	assert.ErrorAs(t, err, new(*backend.APIError))
	var fallback *SavedLocallyError
	assert.ErrorAs(t, err, &fallback)
	assert.NotEmpty(t, saved.ID)

	list, err := local.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
