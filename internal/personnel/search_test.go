package personnel

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	mu      sync.Mutex
	calls   []string
	block   map[string]chan struct{}
	results map[string][]Record
	errs    map[string]error
}

func newFakeSearcher() *fakeSearcher {
	return &fakeSearcher{
		block:   map[string]chan struct{}{},
		results: map[string][]Record{},
		errs:    map[string]error{},
	}
}

func (f *fakeSearcher) Search(ctx context.Context, q string) ([]Record, error) {
	f.mu.Lock()
	f.calls = append(f.calls, q)
	wait := f.block[q]
	res, err := f.results[q], f.errs[q]
	f.mu.Unlock()

	if wait != nil {
		select {
		case <-wait:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return res, err
}

func (f *fakeSearcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func TestShortQueryMakesNoCall(t *testing.T) {
	f := newFakeSearcher()
	ls := NewLiveSearch(f, 5*time.Millisecond)
	defer ls.Close()

	ls.Query(" a ")
	time.Sleep(30 * time.Millisecond)

	assert.Empty(t, f.Calls())
	assert.Equal(t, "a", ls.State().Query)
	assert.Empty(t, ls.State().Results)
}

func TestOnlyLatestQueryIsApplied(t *testing.T) {
	f := newFakeSearcher()
	f.results["a"] = []Record{{NIP: "1", Name: "dari a"}}
	f.results["ab"] = []Record{{NIP: "2", Name: "dari ab"}}
	ls := NewLiveSearch(f, 10*time.Millisecond)
	defer ls.Close()

	ls.Query("a")
	ls.Query("ab")

	require.Eventually(t, func() bool {
		s := ls.State()
		return !s.Loading && len(s.Results) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, "dari ab", ls.State().Results[0].Name)
	assert.Equal(t, []string{"ab"}, f.Calls())
}

func TestInFlightRequestIsCancelledAndDiscarded(t *testing.T) {
	f := newFakeSearcher()
	f.block["ab"] = make(chan struct{})
	f.results["ab"] = []Record{{NIP: "1", Name: "basi"}}
	f.results["abc"] = []Record{{NIP: "2", Name: "terbaru"}}
	ls := NewLiveSearch(f, 5*time.Millisecond)
	defer ls.Close()

	var mu sync.Mutex
	var errorsSeen []string
	ls.OnChange(func(s State) {
		mu.Lock()
		defer mu.Unlock()
		if s.Err != "" {
			errorsSeen = append(errorsSeen, s.Err)
		}
	})

	ls.Query("ab")
	require.Eventually(t, func() bool { return len(f.Calls()) == 1 }, time.Second, 2*time.Millisecond)

	ls.Query("abc")
	require.Eventually(t, func() bool {
		s := ls.State()
		return !s.Loading && len(s.Results) == 1 && s.Query == "abc"
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, "terbaru", ls.State().Results[0].Name)
	assert.Equal(t, []string{"ab", "abc"}, f.Calls())
	mu.Lock()
	assert.Empty(t, errorsSeen, "cancellation must not surface as an error")
	mu.Unlock()
}

func TestSearchErrorPopulatesState(t *testing.T) {
	f := newFakeSearcher()
	f.errs["budi"] = errors.New("Request failed")
	ls := NewLiveSearch(f, 0)
	defer ls.Close()

	ls.Query("budi")
	require.Eventually(t, func() bool { return ls.State().Err != "" }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Request failed", ls.State().Err)
	assert.False(t, ls.State().Loading)
}

type rawFetcher struct{ body string }

func (r rawFetcher) SearchPegawai(ctx context.Context, q string) (json.RawMessage, error) {
	return json.RawMessage(r.body), nil
}

func TestRemoteNormalizes(t *testing.T) {
	recs, err := Remote{Fetcher: rawFetcher{body: `[{"id":9,"nama":"Siti","nip":"1980-02"}]`}}.Search(context.Background(), "si")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "198002", recs[0].NIP)
}
