// Package compliance menurunkan status kepatuhan dokumen sebuah pengajuan
// dan menjaga gerbang keputusan diterima/ditolak.
package compliance

import (
	"errors"
	"strings"
)

type State string

const (
	PendingReview   State = "pending-review"
	AllCompliant    State = "all-compliant"
	HasNoncompliant State = "has-noncompliant"
)

const (
	DecisionAccept = "diterima"
	DecisionReject = "ditolak"
)

var (
	ErrInvalidDecision    = errors.New("status hanya boleh diterima atau ditolak")
	ErrNotAllCompliant    = errors.New("semua dokumen harus memenuhi syarat sebelum diterima")
	ErrNotesRequired      = errors.New("catatan penolakan wajib diisi")
	ErrRejectAllCompliant = errors.New("semua dokumen memenuhi syarat, pengajuan tidak dapat ditolak")
)

// Evaluate menghitung status agregat. Flag nil berarti belum diperiksa.
// Satu dokumen tidak memenuhi syarat sudah cukup untuk HasNoncompliant.
func Evaluate(flags []*bool) State {
	if len(flags) == 0 {
		return PendingReview
	}
	undecided := false
	for _, f := range flags {
		switch {
		case f == nil:
			undecided = true
		case !*f:
			return HasNoncompliant
		}
	}
	if undecided {
		return PendingReview
	}
	return AllCompliant
}

// FromBools untuk pemanggil yang semua flag-nya sudah terisi.
func FromBools(flags []bool) []*bool {
	out := make([]*bool, len(flags))
	for i := range flags {
		v := flags[i]
		out[i] = &v
	}
	return out
}

type Gate struct {
	State State
	Notes string
}

func NewGate(flags []*bool, notes string) Gate {
	return Gate{State: Evaluate(flags), Notes: notes}
}

func (g Gate) CanApprove() bool {
	return g.State == AllCompliant
}

// CanReject: butuh catatan tidak kosong, dan tidak boleh bila semua dokumen patuh.
func (g Gate) CanReject() bool {
	return g.State != AllCompliant && strings.TrimSpace(g.Notes) != ""
}

// Decide memvalidasi keputusan verifikator. Dipakai di endpoint status
// sehingga invariant "diterima hanya bila semua patuh" dijaga di server.
func Decide(decision string, flags []*bool, notes string) error {
	g := NewGate(flags, notes)
	switch decision {
	case DecisionAccept:
		if !g.CanApprove() {
			return ErrNotAllCompliant
		}
		return nil
	case DecisionReject:
		if strings.TrimSpace(notes) == "" {
			return ErrNotesRequired
		}
		if g.State == AllCompliant {
			return ErrRejectAllCompliant
		}
		return nil
	default:
		return ErrInvalidDecision
	}
}
