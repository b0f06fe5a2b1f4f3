package personnel

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"
)

const (
	MinQueryLength  = 2
	DefaultDebounce = 300 * time.Millisecond
)

// Searcher menjalankan satu pencarian. Implementasi wajib menghormati ctx.
type Searcher interface {
	Search(ctx context.Context, q string) ([]Record, error)
}

// RawFetcher dipenuhi oleh backend.Client.
type RawFetcher interface {
	SearchPegawai(ctx context.Context, q string) (json.RawMessage, error)
}

// Remote menormalkan hasil backend menjadi Record.
type Remote struct {
	Fetcher RawFetcher
}

func (r Remote) Search(ctx context.Context, q string) ([]Record, error) {
	raw, err := r.Fetcher.SearchPegawai(ctx, q)
	if err != nil {
		return nil, err
	}
	return Normalize(raw)
}

type State struct {
	Query   string
	Results []Record
	Loading bool
	Err     string
}

// LiveSearch meniru kotak pencarian: setiap Query menunda eksekusi selama
// debounce, lalu membatalkan permintaan sebelumnya yang masih berjalan.
// Hanya hasil dari permintaan terbaru yang diterapkan ke State.
type LiveSearch struct {
	searcher Searcher
	debounce time.Duration

	mu       sync.Mutex
	gen      uint64
	timer    *time.Timer
	cancel   context.CancelFunc
	state    State
	onChange func(State)
}

func NewLiveSearch(s Searcher, debounce time.Duration) *LiveSearch {
	if debounce < 0 {
		debounce = DefaultDebounce
	}
	return &LiveSearch{searcher: s, debounce: debounce}
}

// OnChange dipanggil (di goroutine pencarian) setiap state berubah.
func (l *LiveSearch) OnChange(fn func(State)) {
	l.mu.Lock()
	l.onChange = fn
	l.mu.Unlock()
}

func (l *LiveSearch) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.state
	s.Results = append([]Record(nil), l.state.Results...)
	return s
}

func (l *LiveSearch) Query(q string) {
	q = strings.TrimSpace(q)

	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.stopLocked()

	if len([]rune(q)) < MinQueryLength {
		l.state = State{Query: q}
		notify := l.snapshotLocked()
		l.mu.Unlock()
		notify()
		return
	}

	l.state.Query = q
	l.timer = time.AfterFunc(l.debounce, func() { l.run(gen, q) })
	l.mu.Unlock()
}

// Close membatalkan timer dan permintaan yang sedang berjalan.
func (l *LiveSearch) Close() {
	l.mu.Lock()
	l.gen++
	l.stopLocked()
	l.mu.Unlock()
}

func (l *LiveSearch) stopLocked() {
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

func (l *LiveSearch) run(gen uint64, q string) {
	l.mu.Lock()
	if gen != l.gen {
		l.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.state.Loading = true
	l.state.Err = ""
	notify := l.snapshotLocked()
	l.mu.Unlock()
	notify()

	results, err := l.searcher.Search(ctx, q)
	cancel()

	l.mu.Lock()
	if gen != l.gen {
		// digantikan query lain: hasil basi dibuang, termasuk error pembatalannya
		l.mu.Unlock()
		return
	}
	l.cancel = nil
	l.state.Loading = false
	switch {
	case err == nil:
		l.state.Results = results
		l.state.Err = ""
	case errors.Is(err, context.Canceled):
	default:
		l.state.Results = nil
		l.state.Err = err.Error()
	}
	notify = l.snapshotLocked()
	l.mu.Unlock()
	notify()
}

// snapshotLocked menyiapkan pemanggilan OnChange yang dijalankan setelah lock dilepas.
func (l *LiveSearch) snapshotLocked() func() {
	fn := l.onChange
	if fn == nil {
		return func() {}
	}
	s := l.state
	s.Results = append([]Record(nil), l.state.Results...)
	return func() { fn(s) }
}
