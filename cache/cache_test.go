package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tierkv/tierkv/eviction"
	"github.com/tierkv/tierkv/expiration"
)

// fakeClock lets TTL tests advance time deterministically instead of
// sleeping, matching the teacher's cache_test.go approach.
type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time   { return f.t }
func (f *fakeClock) add(d time.Duration) { f.t = f.t.Add(d) }

func TestCache_BasicSetGetRemove(t *testing.T) {
	t.Parallel()

	c := New[string, int](Options[string, int]{Capacity: 8})

	require.NoError(t, c.Set("a", 1))
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	require.NoError(t, c.Set("a", 2))
	v, ok = c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	old, ok := c.Remove("a")
	require.True(t, ok)
	assert.Equal(t, 2, old)

	_, ok = c.Get("a")
	assert.False(t, ok)
}

// S1: capacity-bounded LRU eviction (spec.md §8 S1).
func TestCache_EvictionLRU(t *testing.T) {
	t.Parallel()

	c := New[string, int](Options[string, int]{Capacity: 2})

	require.NoError(t, c.Set("a", 1))
	require.NoError(t, c.Set("b", 2))

	_, ok := c.Get("a") // promote a to MRU
	require.True(t, ok)

	require.NoError(t, c.Set("cc", 3)) // overflow, must evict b

	_, ok = c.Get("b")
	assert.False(t, ok, "b must be evicted")

	_, ok = c.Get("a")
	assert.True(t, ok, "a must survive (promoted)")

	v, ok := c.Get("cc")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

// S6: a Deny eviction policy makes the cache refuse inserts once full
// instead of evicting (spec.md §8 S6).
func TestCache_CacheFullWithDenyPolicy(t *testing.T) {
	t.Parallel()

	c := New[string, int](Options[string, int]{
		Capacity: 2,
		Eviction: eviction.NewDeny[string](),
	})

	require.NoError(t, c.Set("a", 1))
	require.NoError(t, c.Set("b", 2))

	err := c.Set("c", 3)
	assert.ErrorIs(t, err, ErrCacheFull)

	_, ok := c.Get("c")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

// S2: idle-TTL expiration resets on access and fires lazily on Get.
func TestCache_IdleTTLExpiration(t *testing.T) {
	t.Parallel()

	clk := &fakeClock{t: time.Unix(0, 0)}
	c := New[string, string](Options[string, string]{
		Capacity:   4,
		Expiration: expiration.NewIdleTTL[string](100 * time.Millisecond),
		Clock:      clk,
	})

	require.NoError(t, c.Set("x", "v"))

	clk.add(50 * time.Millisecond)
	v, ok := c.Get("x") // refreshes the deadline
	require.True(t, ok)
	assert.Equal(t, "v", v)

	clk.add(50 * time.Millisecond)
	_, ok = c.Get("x") // 50ms since last access, still fresh
	assert.True(t, ok)

	clk.add(200 * time.Millisecond)
	_, ok = c.Get("x")
	assert.False(t, ok, "entry must be expired after the idle window elapses")
}

func TestCache_Clear(t *testing.T) {
	t.Parallel()

	c := New[string, int](Options[string, int]{Capacity: 4})
	require.NoError(t, c.Set("a", 1))
	require.NoError(t, c.Set("b", 2))

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.IsEmpty())

	_, ok := c.Get("a")
	assert.False(t, ok)

	// Clear must be idempotent and leave the cache usable.
	c.Clear()
	require.NoError(t, c.Set("c", 3))
	v, ok := c.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestCache_SnapshotEntriesSkipsExpired(t *testing.T) {
	t.Parallel()

	clk := &fakeClock{t: time.Unix(0, 0)}
	c := New[string, int](Options[string, int]{
		Capacity:   4,
		Expiration: expiration.NewAbsoluteTTL[string](10 * time.Millisecond),
		Clock:      clk,
	})

	require.NoError(t, c.Set("a", 1))
	clk.add(20 * time.Millisecond)
	require.NoError(t, c.Set("b", 2))

	entries := c.SnapshotEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Key)
	assert.Equal(t, 2, entries[0].Value)
}

func TestCache_GetOrLoad_Singleflight(t *testing.T) {
	t.Parallel()

	var calls int64
	c := New[string, string](Options[string, string]{
		Capacity: 64,
		Loader: func(_ context.Context, key string) (string, error) {
			atomic.AddInt64(&calls, 1)
			time.Sleep(5 * time.Millisecond)
			return "v:" + key, nil
		},
	})

	const n = 32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			v, err := c.GetOrLoad(context.Background(), "k")
			assert.NoError(t, err)
			assert.Equal(t, "v:k", v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New[int, int](Options[int, int]{Capacity: 128})

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = c.Set(i, i*i)
			c.Get(i)
			c.Remove(i)
		}(i)
	}
	wg.Wait()
}
