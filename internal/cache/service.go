package cache

import (
	"encoding/json"
	"time"
)

// Service dibuat sekali di composition root lalu dioper ke konsumen.
// General dan API adalah dua instance terpisah dengan kebijakan TTL berbeda.
type Service struct {
	General *Cache[json.RawMessage]
	API     *Cache[json.RawMessage]
}

func NewService(now func() time.Time) *Service {
	return &Service{
		General: New[json.RawMessage](Options{TTL: DefaultTTL, MaxSize: DefaultMaxSize, Now: now}),
		API:     New[json.RawMessage](Options{TTL: DefaultAPITTL, MaxSize: 50, Now: now}),
	}
}
