package insights

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStartSweeperEvictsExpiredEntries(t *testing.T) {
	t.Parallel()

	c := NewCache(5 * time.Millisecond)
	c.Set([]string{"React"}, minimalInsights(), "k")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.StartSweeper(ctx, 10*time.Millisecond, nil)

	deadline := time.After(2 * time.Second)
	for {
		if s := c.Stats(); s.Evictions >= 1 && s.Size == 0 {
			return
		}
		select {
		case <-deadline:
			t.Fatal("sweeper never evicted the expired entry")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestKeyIsOrderIndependent(t *testing.T) {
	t.Parallel()

	a := Key([]string{"React", "Node.js", "PostgreSQL"})
	b := Key([]string{"postgresql", " node.js ", "REACT"})
	if a != b {
		t.Errorf("keys differ: %q vs %q", a, b)
	}
	if a != "node.js|postgresql|react" {
		t.Errorf("key = %q", a)
	}
	if Key([]string{"", "  "}) != "" {
		t.Error("blank names should produce an empty key")
	}
}

func TestCacheSetGetWithinTTL(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Hour)
	ins := &TechnologyInsights{Summary: "cached"}
	techs := []string{"React", "Node.js"}

	c.Set(techs, ins, Key(techs))

	got, ok := c.Get([]string{"node.js", "react"})
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != ins {
		t.Error("cache should return the identical insights object")
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Size != 1 {
		t.Errorf("stats = %+v, want 1 hit, size 1", stats)
	}
}

func TestCacheExpiryEvicts(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Hour)
	base := time.Now()
	c.now = func() time.Time { return base }

	c.Set([]string{"React"}, &TechnologyInsights{}, "k")

	// Jump past the TTL.
	c.now = func() time.Time { return base.Add(25 * time.Hour) }

	if _, ok := c.Get([]string{"React"}); ok {
		t.Fatal("expired entry should miss")
	}
	stats := c.Stats()
	if stats.Evictions != 1 {
		t.Errorf("evictions = %d, want 1", stats.Evictions)
	}
	if stats.Misses != 1 {
		t.Errorf("misses = %d, want 1", stats.Misses)
	}
	if stats.Size != 0 {
		t.Errorf("size = %d, want 0", stats.Size)
	}
}

func TestClearExpiredSweep(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Hour)
	base := time.Now()
	c.now = func() time.Time { return base }

	c.Set([]string{"React"}, &TechnologyInsights{}, "a")
	c.Set([]string{"Vue.js"}, &TechnologyInsights{}, "b")

	c.now = func() time.Time { return base.Add(2 * time.Hour) }
	c.Set([]string{"Svelte"}, &TechnologyInsights{}, "c")

	if n := c.ClearExpired(); n != 2 {
		t.Errorf("ClearExpired() = %d, want 2", n)
	}
	if !c.Has([]string{"Svelte"}) {
		t.Error("fresh entry should survive the sweep")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Hour)
	c.Set([]string{"React"}, &TechnologyInsights{}, "a")
	c.Clear()
	if c.Stats().Size != 0 {
		t.Error("Clear() should empty the cache")
	}
}

func TestWarmSkipsCachedAndToleratesFailures(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Hour)
	// Pre-cache the first warm combination.
	c.Set(warmCombinations[0], &TechnologyInsights{Summary: "already"}, "pre")

	var calls int
	c.Warm(context.Background(), nil, func(ctx context.Context, technologies []string) (*TechnologyInsights, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient failure")
		}
		return &TechnologyInsights{}, nil
	})

	if calls != len(warmCombinations)-1 {
		t.Errorf("generator called %d times, want %d", calls, len(warmCombinations)-1)
	}
	// First combo untouched, one failed, the rest cached.
	if got := c.Stats().Size; got != len(warmCombinations)-1 {
		t.Errorf("cache size after warm = %d, want %d", got, len(warmCombinations)-1)
	}
}
