package cache

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
}

func TestKeyFormat(t *testing.T) {
	k := Key("extract", "https://example.com/post", "markdown")
	if !strings.HasPrefix(k, "ciq:extract:") {
		t.Errorf("key %q missing namespace prefix", k)
	}
	hash := strings.TrimPrefix(k, "ciq:extract:")
	if len(hash) != 16 {
		t.Errorf("hash part %q has length %d, want 16", hash, len(hash))
	}

	if k != Key("extract", "https://example.com/post", "markdown") {
		t.Error("identical inputs produced different keys")
	}
	if k == Key("extract", "https://example.com/post", "text") {
		t.Error("different inputs produced the same key")
	}
	if k == Key("seo", "https://example.com/post", "markdown") {
		t.Error("different prefixes produced the same key")
	}
}

func TestKeyPartBoundaries(t *testing.T) {
	// Joining must not let ("ab", "c") collide with ("a", "bc").
	if Key("op", "ab", "c") == Key("op", "a", "bc") {
		t.Error("part boundaries are ambiguous")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemory(10)
	ctx := context.Background()

	if _, ok, _ := s.Get(ctx, "missing"); ok {
		t.Fatal("empty store reported a hit")
	}

	if err := s.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := s.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get = (%v, %v), want hit", ok, err)
	}
	if string(got) != "v" {
		t.Errorf("Get = %q, want %q", got, "v")
	}
}

func TestMemoryStoreEvictsLRU(t *testing.T) {
	s := NewMemory(2)
	ctx := context.Background()

	s.Set(ctx, "a", []byte("1"), time.Minute)
	s.Set(ctx, "b", []byte("2"), time.Minute)
	s.Get(ctx, "a") // a is now most recently used
	s.Set(ctx, "c", []byte("3"), time.Minute)

	if _, ok, _ := s.Get(ctx, "b"); ok {
		t.Error("least recently used entry survived eviction")
	}
	if _, ok, _ := s.Get(ctx, "a"); !ok {
		t.Error("recently used entry was evicted")
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemory(10)
	ctx := context.Background()

	current := time.Now()
	s.now = func() time.Time { return current }

	s.Set(ctx, "k", []byte("v"), time.Minute)
	if _, ok, _ := s.Get(ctx, "k"); !ok {
		t.Fatal("fresh entry missing")
	}

	current = current.Add(2 * time.Minute)
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Error("expired entry still served")
	}
	if s.Len() != 0 {
		t.Errorf("expired entry not dropped, Len = %d", s.Len())
	}
}

func TestGetOrComputeCachesResult(t *testing.T) {
	c := New(NewMemory(10), testLogger())
	ctx := context.Background()

	var calls atomic.Int32
	compute := func(context.Context) ([]byte, error) {
		calls.Add(1)
		return []byte("payload"), nil
	}

	data, cached, err := c.GetOrCompute(ctx, "k", time.Minute, compute)
	if err != nil {
		t.Fatalf("GetOrCompute: %v", err)
	}
	if cached {
		t.Error("first call reported cached=true")
	}
	if string(data) != "payload" {
		t.Errorf("data = %q", data)
	}

	_, cached, err = c.GetOrCompute(ctx, "k", time.Minute, compute)
	if err != nil {
		t.Fatalf("GetOrCompute: %v", err)
	}
	if !cached {
		t.Error("second call reported cached=false")
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("compute ran %d times, want 1", n)
	}
}

func TestGetOrComputeCoalescesConcurrent(t *testing.T) {
	c := New(NewMemory(10), testLogger())
	ctx := context.Background()

	var calls atomic.Int32
	release := make(chan struct{})
	compute := func(context.Context) ([]byte, error) {
		calls.Add(1)
		<-release
		return []byte("shared"), nil
	}

	const n = 20
	var wg sync.WaitGroup
	results := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data, _, err := c.GetOrCompute(ctx, "k", time.Minute, compute)
			if err != nil {
				t.Errorf("GetOrCompute: %v", err)
				return
			}
			results[i] = string(data)
		}(i)
	}

	// Let the goroutines pile onto the flight before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("compute ran %d times for %d concurrent callers, want 1", got, n)
	}
	for i, r := range results {
		if r != "shared" {
			t.Errorf("caller %d got %q", i, r)
		}
	}
}

func TestGetOrComputeWaiterCancelDoesNotAbortFlight(t *testing.T) {
	store := NewMemory(10)
	c := New(store, testLogger())

	started := make(chan struct{})
	release := make(chan struct{})
	compute := func(ctx context.Context) ([]byte, error) {
		close(started)
		select {
		case <-release:
			return []byte("v"), nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, _, err := c.GetOrCompute(ctx, "k", time.Minute, compute)
		errCh <- err
	}()

	<-started
	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled waiter error = %v, want context.Canceled", err)
	}

	// The flight keeps running on the detached context and still caches.
	close(release)
	deadline := time.After(2 * time.Second)
	for {
		if _, ok, _ := store.Get(context.Background(), "k"); ok {
			return
		}
		select {
		case <-deadline:
			t.Fatal("flight result never reached the store after waiter cancel")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestGetOrComputePropagatesComputeError(t *testing.T) {
	c := New(NewMemory(10), testLogger())
	wantErr := errors.New("origin unreachable")

	_, _, err := c.GetOrCompute(context.Background(), "k", time.Minute, func(context.Context) ([]byte, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}

	// Failures are not cached; the next call recomputes.
	data, cached, err := c.GetOrCompute(context.Background(), "k", time.Minute, func(context.Context) ([]byte, error) {
		return []byte("recovered"), nil
	})
	if err != nil || cached || string(data) != "recovered" {
		t.Errorf("recovery call = (%q, %v, %v)", data, cached, err)
	}
}

// downStore simulates a networked backend that stopped responding.
type downStore struct{}

func (downStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("dial tcp: connection refused")
}

func (downStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("dial tcp: connection refused")
}

func (downStore) Name() string { return "redis" }

func TestTieredStoreWritesThrough(t *testing.T) {
	primary := NewMemory(10)
	fallback := NewMemory(10)
	s := NewTiered(primary, fallback)
	ctx := context.Background()

	if err := s.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := primary.Get(ctx, "k"); !ok {
		t.Error("primary missing write-through value")
	}
	if _, ok, _ := fallback.Get(ctx, "k"); !ok {
		t.Error("fallback missing write-through value")
	}
	if s.Name() != "memory" {
		t.Errorf("Name = %q, want primary's name", s.Name())
	}
}

func TestTieredStoreServesFallbackWhenPrimaryErrors(t *testing.T) {
	fallback := NewMemory(10)
	s := NewTiered(downStore{}, fallback)
	ctx := context.Background()

	if err := s.Set(ctx, "k", []byte("v"), time.Minute); err == nil {
		t.Error("primary failure not reported")
	}
	got, ok, err := s.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get = (%v, %v), want fallback hit", ok, err)
	}
	if string(got) != "v" {
		t.Errorf("Get = %q, want %q", got, "v")
	}

	// A key in neither tier surfaces the primary's error as a miss.
	if _, ok, err := s.Get(ctx, "absent"); ok || err == nil {
		t.Errorf("absent key = (%v, %v), want miss with error", ok, err)
	}
}

func TestGetOrComputeStaysCachedWhilePrimaryDown(t *testing.T) {
	// The networked tier failing every call must not turn repeat requests
	// into repeat computations.
	c := New(NewTiered(downStore{}, NewMemory(10)), testLogger())
	ctx := context.Background()

	var calls atomic.Int32
	compute := func(context.Context) ([]byte, error) {
		calls.Add(1)
		return []byte("payload"), nil
	}

	if _, cached, err := c.GetOrCompute(ctx, "k", time.Minute, compute); err != nil || cached {
		t.Fatalf("first call = (cached=%v, err=%v)", cached, err)
	}
	for i := 0; i < 2; i++ {
		data, cached, err := c.GetOrCompute(ctx, "k", time.Minute, compute)
		if err != nil {
			t.Fatalf("repeat call: %v", err)
		}
		if !cached {
			t.Error("repeat call reported cached=false")
		}
		if string(data) != "payload" {
			t.Errorf("data = %q", data)
		}
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("compute ran %d times, want 1", n)
	}
}
