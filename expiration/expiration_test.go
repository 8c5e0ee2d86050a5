package expiration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdleTTL_RefreshesDeadlineOnAccess(t *testing.T) {
	t.Parallel()

	start := time.Unix(0, 0)
	p := NewIdleTTL[string](100 * time.Millisecond)
	p.OnWrite("a", start)

	t1 := start.Add(50 * time.Millisecond)
	assert.False(t, p.IsExpired("a", t1))
	p.OnAccess("a", t1)

	t2 := t1.Add(60 * time.Millisecond) // 60ms since access, still < 100ms
	assert.False(t, p.IsExpired("a", t2))

	t3 := t1.Add(200 * time.Millisecond)
	assert.True(t, p.IsExpired("a", t3))
}

func TestAbsoluteTTL_IgnoresAccess(t *testing.T) {
	t.Parallel()

	start := time.Unix(0, 0)
	p := NewAbsoluteTTL[string](100 * time.Millisecond)
	p.OnWrite("a", start)

	t1 := start.Add(50 * time.Millisecond)
	p.OnAccess("a", t1) // must not extend the deadline
	assert.False(t, p.IsExpired("a", t1))

	t2 := start.Add(150 * time.Millisecond)
	assert.True(t, p.IsExpired("a", t2))
}

func TestSweep_ReturnsAllExpiredKeysWithoutMutating(t *testing.T) {
	t.Parallel()

	start := time.Unix(0, 0)
	p := NewAbsoluteTTL[string](100 * time.Millisecond)
	p.OnWrite("a", start)
	p.OnWrite("b", start.Add(100*time.Millisecond))

	now := start.Add(150 * time.Millisecond)
	expired := p.Sweep(now)
	// b was written at 100ms, so its deadline (200ms) has not passed yet.
	assert.ElementsMatch(t, []string{"a"}, expired)

	// Sweep must not mutate: IsExpired still reports the same thing.
	assert.True(t, p.IsExpired("a", now))
}

func TestNone_NeverExpires(t *testing.T) {
	t.Parallel()

	p := NewNone[string]()
	p.OnWrite("a", time.Now())
	assert.False(t, p.IsExpired("a", time.Now().Add(time.Hour)))
	assert.Nil(t, p.Sweep(time.Now()))
}

func TestOnRemove_PrunesDeadlineState(t *testing.T) {
	t.Parallel()

	start := time.Unix(0, 0)
	p := NewIdleTTL[string](time.Second)
	p.OnWrite("a", start)
	p.OnRemove("a")

	// After removal, the key is untracked: IsExpired reports false rather
	// than true, matching the "absent means not our concern" contract.
	assert.False(t, p.IsExpired("a", start.Add(time.Hour)))
}
