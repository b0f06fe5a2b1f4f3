package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"sipensiun/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler) (*Client, *cache.Service) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	svc := cache.NewService(nil)
	return New(Options{BaseURL: srv.URL, Timeout: 2 * time.Second, Retries: 0, Cache: svc}), svc
}

func TestUnwrap(t *testing.T) {
	got, err := Unwrap([]byte(`{"data":{"id":1}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1}`, string(got))

	got, err = Unwrap([]byte(`{"success":true,"data":[1,2]}`))
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2]`, string(got))

	got, err = Unwrap([]byte(`{"id":2}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2}`, string(got))

	got, err = Unwrap([]byte(`[{"id":3}]`))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":3}]`, string(got))

	got, err = Unwrap(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDoErrorMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/with-message":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = io.WriteString(w, `{"message":"Nomor surat sudah dipakai"}`)
		case "/with-error":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"Data tidak valid"}`)
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `oops`)
		}
	}))
	ctx := context.Background()

	var apiErr *APIError
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/with-message"}, nil)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
	assert.Equal(t, "Nomor surat sudah dipakai", apiErr.Message)

	err = c.Do(ctx, Request{Method: http.MethodPost, Path: "/with-error"}, nil)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Data tidak valid", apiErr.Message)

	err = c.Do(ctx, Request{Method: http.MethodPost, Path: "/plain"}, nil)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Request failed", apiErr.Error())
}

func TestSessionExpiredHook(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":"Token tidak valid atau kadaluwarsa"}`)
	}))

	var fired atomic.Int32
	c.OnSessionExpired(func() { fired.Add(1) })

	err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/auth/me"}, nil)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, int32(1), fired.Load())

	_, err = c.Login(context.Background(), "1", "salah")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr, "login failure is not a session expiry")
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, int32(1), fired.Load())
}

func TestCurrentUserIsCachedAndInvalidatedOnImpersonation(t *testing.T) {
	var meCalls atomic.Int32
	c, svc := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/auth/me":
			n := meCalls.Add(1)
			_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": n, "nama": "Admin"}})
		case r.URL.Path == "/api/admin/impersonate/7" && r.Method == http.MethodPost:
			_, _ = io.WriteString(w, `{"data":{"token":"tok-7"}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	ctx := context.Background()

	u1, err := c.CurrentUser(ctx)
	require.NoError(t, err)
	u2, err := c.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, u1.ID, u2.ID)
	assert.Equal(t, int32(1), meCalls.Load())

	tok, err := c.StartImpersonation(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "tok-7", tok)
	_, ok := svc.API.Get(keyCurrentUser)
	assert.False(t, ok)

	u3, err := c.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(2), u3.ID)
}

func TestListUsersCacheKeyIgnoresParamOrder(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = io.WriteString(w, `{"data":[{"id":1,"nama":"Budi"}]}`)
	}))
	ctx := context.Background()

	_, err := c.ListUsers(ctx, map[string]string{"role": "Admin", "q": "bud"})
	require.NoError(t, err)
	users, err := c.ListUsers(ctx, map[string]string{"q": "bud", "role": "Admin"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Budi", users[0].Nama)
	assert.Equal(t, int32(1), calls.Load())
}

func TestContextCancellationIsNotAnAPIError(t *testing.T) {
	release := make(chan struct{})
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/slow"}, nil)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestRetryOnlyIdempotent(t *testing.T) {
	var gets, posts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			if gets.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = io.WriteString(w, `{"data":"ok"}`)
			return
		}
		posts.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Retries: 2, Timeout: 2 * time.Second})
	var out string
	require.NoError(t, c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"}, &out))
	assert.Equal(t, "ok", out)
	assert.Equal(t, int32(3), gets.Load())

	err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/x"}, nil)
	assert.Error(t, err)
	assert.Equal(t, int32(1), posts.Load())
}

func TestUploadDocument(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "12", r.FormValue("pengajuan_id"))
		assert.Equal(t, "SK PNS", r.FormValue("document_type"))
		assert.Equal(t, "true", r.FormValue("required"))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "sk.pdf", hdr.Filename)
		_, _ = io.WriteString(w, `{"message":"ok","data":{"id":5,"nama_asli":"sk.pdf","jenis_dokumen":"SK PNS","wajib":true,"ukuran":9}}`)
	}))

	out, err := c.UploadDocument(context.Background(), UploadRequest{
		PengajuanID:  12,
		Filename:     "sk.pdf",
		Content:      []byte("%PDF-1.4\n"),
		DocumentType: "SK PNS",
		Required:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), out.ID)
	assert.True(t, out.Wajib)
}

func TestGetPengajuanAndKepatuhan(t *testing.T) {
	var body map[string]any
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/api/pengajuan/3", r.URL.Path)
			_, _ = io.WriteString(w, `{"data":{"id":3,"status":"diajukan","dokumen":[{"id":8,"memenuhi_syarat":true},{"id":9,"memenuhi_syarat":null}]}}`)
		case http.MethodPut:
			assert.Equal(t, "/api/files/9/kepatuhan", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_, _ = io.WriteString(w, `{"message":"ok"}`)
		}
	}))

	p, err := c.GetPengajuan(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "diajukan", p.Status)
	flags := p.Flags()
	require.Len(t, flags, 2)
	assert.True(t, *flags[0])
	assert.Nil(t, flags[1])

	no := false
	require.NoError(t, c.SetKepatuhan(context.Background(), 9, &no))
	assert.Equal(t, false, body["memenuhi_syarat"])
}
