// Package kvstore adalah penyimpanan lokal key/value untuk data yang harus
// tetap tersimpan ketika backend tidak dikonfigurasi.
package kvstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kvstore: key tidak ditemukan")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
