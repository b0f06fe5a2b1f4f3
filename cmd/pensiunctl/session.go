package main

import (
	"context"
	"errors"
	"fmt"

	"sipensiun/internal/backend"
	"sipensiun/internal/cache"
	"sipensiun/internal/kvstore"
	"sipensiun/internal/logger"

	"go.uber.org/zap"
)

const tokenKey = "sipensiun:token"

// openKV: Redis bila REDIS_URL diisi, selain itu berkas di LOCAL_STORE_DIR.
func openKV(ctx context.Context) (kvstore.Store, func(), error) {
	if cfg.RedisURL != "" {
		rs, err := kvstore.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return rs, func() { _ = rs.Close() }, nil
	}
	fs, err := kvstore.NewFileStore(cfg.LocalStoreDir)
	if err != nil {
		return nil, nil, err
	}
	return fs, func() {}, nil
}

func newLogger() *zap.Logger {
	if !verbose {
		return logger.NewNop()
	}
	log, err := logger.New("debug", "console")
	if err != nil {
		return logger.NewNop()
	}
	return log
}

// session menyatukan klien backend dan penyimpanan token.
type session struct {
	client *backend.Client
	kv     kvstore.Store
	close  func()
}

func openSession(ctx context.Context) (*session, error) {
	if cfg.BackendBaseURL == "" {
		return nil, errors.New("backend belum dikonfigurasi, isi BACKEND_BASE_URL atau --backend")
	}
	kv, closeKV, err := openKV(ctx)
	if err != nil {
		return nil, err
	}

	tok := tokenFlag
	if tok == "" {
		raw, err := kv.Get(ctx, tokenKey)
		switch {
		case err == nil:
			tok = string(raw)
		case !errors.Is(err, kvstore.ErrNotFound):
			closeKV()
			return nil, fmt.Errorf("baca token: %w", err)
		}
	}

	s := &session{kv: kv, close: closeKV}
	s.client = backend.New(backend.Options{
		BaseURL: cfg.BackendBaseURL,
		Token:   tok,
		Timeout: cfg.BackendTimeout,
		Retries: cfg.BackendRetries,
		Cache:   cache.NewService(nil),
		Logger:  newLogger(),
		OnSessionExpired: func() {
			// Token tidak berlaku lagi, paksa login ulang
			_ = kv.Delete(context.Background(), tokenKey)
		},
	})
	return s, nil
}

func (s *session) saveToken(ctx context.Context, tok string) error {
	return s.kv.Set(ctx, tokenKey, []byte(tok))
}
