// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"slices"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRegistry_AddListOrder(t *testing.T) {
	registry := NewRegistry(singerA)
	registry.Add(dancerB)

	assert.Equal(t, []string{"A", "B"}, ids(registry.List()))
	assert.Equal(t, 2, registry.Len())
	assert.Equal(t, uint64(1), registry.Version())
}

/*
TestRegistry_Update verifies field-by-field merging at a fixed position.
*/
func TestRegistry_Update(t *testing.T) {
	registry := NewRegistry(singerA, dancerB)

	t.Run("merges_fields", func(t *testing.T) {
		updated, ok := registry.Update("A", Patch{
			Location:  ptr("Pune"),
			Languages: []string{"Marathi"},
		})

		require.True(t, ok)
		assert.Equal(t, "Pune", updated.Location)
		assert.Equal(t, []string{"Marathi"}, updated.Languages)
		assert.Equal(t, singerA.Name, updated.Name)
		assert.Equal(t, singerA.PriceRange, updated.PriceRange)
		assert.Equal(t, []string{"A", "B"}, ids(registry.List()))
	})

	t.Run("empty_slice_clears", func(t *testing.T) {
		updated, ok := registry.Update("A", Patch{Languages: []string{}})
		require.True(t, ok)
		assert.Empty(t, updated.Languages)
	})

	t.Run("unknown_id_is_noop", func(t *testing.T) {
		before := registry.List()
		version := registry.Version()

		_, ok := registry.Update("missing", Patch{Name: ptr("Ghost")})

		assert.False(t, ok)
		assert.Equal(t, before, registry.List())
		assert.Equal(t, version, registry.Version())
	})
}

func TestRegistry_Remove(t *testing.T) {
	c := Artist{ID: "C", Name: "Chitra"}
	registry := NewRegistry(singerA, dancerB, c)

	assert.True(t, registry.Remove("B"))
	assert.Equal(t, []string{"A", "C"}, ids(registry.List()))

	assert.False(t, registry.Remove("B"))
	assert.Equal(t, []string{"A", "C"}, ids(registry.List()))
}

func TestRegistry_RemoveFirstDuplicate(t *testing.T) {
	first := Artist{ID: "dup", Name: "first"}
	second := Artist{ID: "dup", Name: "second"}
	registry := NewRegistry(first, singerA, second)

	registry.Remove("dup")

	remaining := registry.List()
	require.Len(t, remaining, 2)
	assert.Equal(t, "second", remaining[1].Name)
}

/*
TestRegistry_Isolation verifies that callers never alias internal storage.
*/
func TestRegistry_Isolation(t *testing.T) {
	seed := singerA.Clone()
	registry := NewRegistry(seed)

	seed.Categories[0] = "Changed"
	listed := registry.List()
	listed[0].Categories[0] = "Changed"
	got, _ := registry.Get("A")
	got.Categories[0] = "Changed"

	again, ok := registry.Get("A")
	require.True(t, ok)
	assert.Equal(t, []string{"Singer"}, again.Categories)
}

/*
TestRegistry_Subscribe checks snapshot delivery and unsubscription.
*/
func TestRegistry_Subscribe(t *testing.T) {
	registry := NewRegistry(singerA)

	var received []Snapshot
	unsubscribe := registry.Subscribe(func(snapshot Snapshot) {
		received = append(received, snapshot)
	})

	registry.Add(dancerB)
	registry.Update("A", Patch{Name: ptr("Asha B")})
	registry.Update("missing", Patch{Name: ptr("x")})
	registry.Remove("B")
	registry.Remove("missing")

	require.Len(t, received, 3)
	assert.Equal(t, Change{Kind: ChangeAdded, ID: "B"}, received[0].Change)
	assert.Equal(t, Change{Kind: ChangeUpdated, ID: "A"}, received[1].Change)
	assert.Equal(t, Change{Kind: ChangeRemoved, ID: "B"}, received[2].Change)
	assert.Equal(t, []uint64{1, 2, 3}, []uint64{received[0].Version, received[1].Version, received[2].Version})
	assert.Equal(t, []string{"A", "B"}, ids(received[0].Artists))

	// Snapshots are copies.
	received[2].Artists[0].Name = "Tampered"
	got, _ := registry.Get("A")
	assert.Equal(t, "Asha B", got.Name)

	unsubscribe()
	unsubscribe()
	registry.Add(Artist{ID: "C"})
	assert.Len(t, received, 3)
}

/*
TestRegistry_SelfUnsubscribe verifies that a one-shot observer can cancel its
own subscription during delivery without blocking the writer.
*/
func TestRegistry_SelfUnsubscribe(t *testing.T) {
	registry := NewRegistry()

	var (
		calls       int
		unsubscribe func()
	)
	unsubscribe = registry.Subscribe(func(Snapshot) {
		calls++
		unsubscribe()
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		registry.Add(singerA)
		registry.Add(dancerB)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Add blocked while an observer unsubscribed itself")
	}

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, registry.Len())
}

/*
TestRegistry_AddUnique verifies the atomic check-and-append.
*/
func TestRegistry_AddUnique(t *testing.T) {
	registry := NewRegistry(singerA)

	assert.False(t, registry.AddUnique(Artist{ID: "A", Name: "Clone"}))
	assert.Equal(t, uint64(0), registry.Version())

	assert.True(t, registry.AddUnique(dancerB))
	assert.Equal(t, []string{"A", "B"}, ids(registry.List()))
	assert.Equal(t, uint64(1), registry.Version())

	t.Run("concurrent", func(t *testing.T) {
		registry := NewRegistry()

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			winners int
		)
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if registry.AddUnique(Artist{ID: "dup"}) {
					mu.Lock()
					winners++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, winners)
		assert.Equal(t, 1, registry.Len())
	})
}

func TestRegistry_ObserverMayRead(t *testing.T) {
	registry := NewRegistry()

	var lengths []int
	registry.Subscribe(func(Snapshot) {
		lengths = append(lengths, registry.Len())
	})

	registry.Add(singerA)
	assert.Equal(t, []int{1}, lengths)
}

/*
TestRegistry_Uninitialized verifies the fail-fast guard.
*/
func TestRegistry_Uninitialized(t *testing.T) {
	var nilRegistry *Registry
	zero := &Registry{}

	for name, registry := range map[string]*Registry{"nil": nilRegistry, "zero": zero} {
		t.Run(name, func(t *testing.T) {
			assert.PanicsWithValue(t, errUninitialized, func() { registry.List() })
			assert.PanicsWithValue(t, errUninitialized, func() { registry.Add(singerA) })
			assert.PanicsWithValue(t, errUninitialized, func() { registry.AddUnique(singerA) })
			assert.PanicsWithValue(t, errUninitialized, func() { registry.Update("A", Patch{}) })
			assert.PanicsWithValue(t, errUninitialized, func() { registry.Remove("A") })
			assert.PanicsWithValue(t, errUninitialized, func() { registry.Subscribe(func(Snapshot) {}) })
		})
	}
}

func TestRegistry_ConcurrentWriters(t *testing.T) {
	registry := NewRegistry()

	var (
		mu       sync.Mutex
		versions []uint64
	)
	registry.Subscribe(func(snapshot Snapshot) {
		mu.Lock()
		versions = append(versions, snapshot.Version)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			registry.Add(Artist{ID: strconv.Itoa(i)})
			_ = Apply(registry.List(), Criteria{Search: "x"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, registry.Len())
	assert.True(t, slices.IsSorted(versions), "observers must see versions in order")
	assert.Len(t, versions, 50)
}

/*
TestRegistry_Model compares random operation sequences against a plain slice.
*/
func TestRegistry_Model(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		registry := NewRegistry()
		model := []Artist{}

		idGen := rapid.SampledFrom([]string{"a", "b", "c", "d"})
		steps := rapid.IntRange(0, 40).Draw(rt, "steps")

		for range steps {
			id := idGen.Draw(rt, "id")

			switch rapid.IntRange(0, 2).Draw(rt, "op") {
			case 0:
				a := Artist{ID: id, Name: rapid.StringN(0, 4, -1).Draw(rt, "name")}
				registry.Add(a)
				model = append(model, a)

			case 1:
				location := rapid.SampledFrom([]string{"Mumbai", "Delhi"}).Draw(rt, "location")
				_, ok := registry.Update(id, Patch{Location: &location})

				i := slices.IndexFunc(model, func(a Artist) bool { return a.ID == id })
				assert.Equal(rt, i >= 0, ok)
				if i >= 0 {
					model[i].Location = location
				}

			case 2:
				ok := registry.Remove(id)

				i := slices.IndexFunc(model, func(a Artist) bool { return a.ID == id })
				assert.Equal(rt, i >= 0, ok)
				if i >= 0 {
					model = slices.Delete(model, i, i+1)
				}
			}

			require.Equal(rt, len(model), registry.Len())
			require.Equal(rt, model, registry.List())
		}
	})
}
