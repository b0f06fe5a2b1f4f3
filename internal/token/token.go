// Package token menerbitkan dan memvalidasi JWT HS256 untuk sesi pengguna.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID      uint   `json:"user_id"`
	NIP         string `json:"nip"`
	Role        string `json:"role"`
	UnitKerjaID uint   `json:"unit_kerja_id"`
	// ImpersonatorID terisi bila token hasil impersonasi oleh superadmin.
	ImpersonatorID uint `json:"impersonator_id,omitempty"`
	jwt.RegisteredClaims
}

var ErrInvalid = errors.New("token tidak valid atau kadaluwarsa")

type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *Manager) Sign(c Claims) (string, error) {
	now := m.now()
	c.IssuedAt = jwt.NewNumericDate(now)
	c.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	c.Subject = fmt.Sprint(c.UserID)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

func (m *Manager) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("metode signing tidak dikenal: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !tok.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
