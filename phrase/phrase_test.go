package phrase

import (
	"math/rand"
	"testing"
)

func TestQueueNeverRepeatsBeforeExhaustion(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f", "g"}
	q := NewQueue(rand.New(rand.NewSource(1)), pool)

	for cycle := 0; cycle < 5; cycle++ {
		seen := make(map[string]bool)
		for i := 0; i < len(pool); i++ {
			p := q.Next()
			if seen[p] {
				t.Fatalf("cycle %d: phrase %q drawn twice before pool exhausted", cycle, p)
			}
			seen[p] = true
		}
		if len(seen) != len(pool) {
			t.Fatalf("cycle %d: expected %d distinct phrases, got %d", cycle, len(pool), len(seen))
		}
	}
}

func TestQueueSetPoolTakesEffectImmediately(t *testing.T) {
	q := NewQueue(rand.New(rand.NewSource(2)), []string{"old"})
	if got := q.Next(); got != "old" {
		t.Fatalf("expected 'old', got %q", got)
	}

	q.SetPool([]string{"new"})
	for i := 0; i < 3; i++ {
		if got := q.Next(); got != "new" {
			t.Errorf("after SetPool expected 'new', got %q", got)
		}
	}
}

func TestQueueEmptyPool(t *testing.T) {
	q := NewQueue(rand.New(rand.NewSource(3)), nil)
	if got := q.Next(); got != "" {
		t.Errorf("expected empty string from empty pool, got %q", got)
	}
}

func TestPick(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	if got := Pick(rng, nil); got != "" {
		t.Errorf("expected empty string from empty list, got %q", got)
	}

	list := []string{"x", "y", "z"}
	for i := 0; i < 50; i++ {
		p := Pick(rng, list)
		if p != "x" && p != "y" && p != "z" {
			t.Fatalf("picked value %q not in list", p)
		}
	}
}

func TestBuiltinListsNonEmpty(t *testing.T) {
	if len(Friendly) == 0 {
		t.Error("built-in friendly list is empty")
	}
	if len(Scare) == 0 {
		t.Error("built-in scare list is empty")
	}
}
