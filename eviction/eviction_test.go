package eviction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	p := NewLRU[string]()
	p.OnWrite("a", false)
	p.OnWrite("b", false)
	p.OnWrite("c", false)

	p.OnAccess("a") // a is now MRU; LRU order: b, c, a

	victim, ok := p.SelectVictim()
	require.True(t, ok)
	assert.Equal(t, "b", victim)

	p.OnRemove("b")
	victim, ok = p.SelectVictim()
	require.True(t, ok)
	assert.Equal(t, "c", victim)
}

func TestLRU_EmptyHasNoVictim(t *testing.T) {
	t.Parallel()

	p := NewLRU[string]()
	_, ok := p.SelectVictim()
	assert.False(t, ok)
}

func TestLRU_Reset(t *testing.T) {
	t.Parallel()

	p := NewLRU[string]()
	p.OnWrite("a", false)
	p.Reset()

	_, ok := p.SelectVictim()
	assert.False(t, ok)
}

func TestFIFO_EvictsOldestInsertedRegardlessOfAccess(t *testing.T) {
	t.Parallel()

	p := NewFIFO[string]()
	p.OnWrite("a", false)
	p.OnWrite("b", false)
	p.OnWrite("c", false)

	p.OnAccess("a") // FIFO ignores access entirely

	victim, ok := p.SelectVictim()
	require.True(t, ok)
	assert.Equal(t, "a", victim)
}

func TestFIFO_SkipsStaleEntriesAfterOutOfOrderRemoval(t *testing.T) {
	t.Parallel()

	p := NewFIFO[string]()
	p.OnWrite("a", false)
	p.OnWrite("b", false)
	p.OnWrite("c", false)

	p.OnRemove("a") // removed out of FIFO order

	victim, ok := p.SelectVictim()
	require.True(t, ok)
	assert.Equal(t, "b", victim)
}

func TestLFU_EvictsLeastFrequentlyUsed(t *testing.T) {
	t.Parallel()

	p := NewLFU[string]()
	p.OnWrite("a", false)
	p.OnWrite("b", false)

	p.OnAccess("a")
	p.OnAccess("a")

	victim, ok := p.SelectVictim()
	require.True(t, ok)
	assert.Equal(t, "b", victim, "b has fewer accesses than a")
}

func TestLFU_OnRemoveClearsFrequencyState(t *testing.T) {
	t.Parallel()

	p := NewLFU[string]()
	p.OnWrite("a", false)
	p.OnRemove("a")

	_, ok := p.SelectVictim()
	assert.False(t, ok)
}

func TestRandom_SelectsAmongLiveKeys(t *testing.T) {
	t.Parallel()

	p := NewRandom[string]()
	p.OnWrite("a", false)
	p.OnWrite("b", false)

	victim, ok := p.SelectVictim()
	require.True(t, ok)
	assert.Contains(t, []string{"a", "b"}, victim)

	p.OnRemove(victim)
	next, ok := p.SelectVictim()
	require.True(t, ok)
	assert.NotEqual(t, victim, next)
}

func TestDeny_NeverSelectsAVictim(t *testing.T) {
	t.Parallel()

	p := NewDeny[string]()
	p.OnWrite("a", false)

	_, ok := p.SelectVictim()
	assert.False(t, ok)
}
