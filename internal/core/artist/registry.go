// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"maps"
	"slices"
	"sync"

	"github.com/taibuivan/artistly/pkg/pointer"
)

// # Change Notifications

// ChangeKind names the mutation that produced a [Snapshot].
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeUpdated ChangeKind = "updated"
	ChangeRemoved ChangeKind = "removed"
)

// Change describes a single registry mutation.
type Change struct {
	Kind ChangeKind `json:"kind"`
	ID   string     `json:"id"`
}

// Snapshot is a read-only view of the registry at a given version.
// Artists is a deep copy; holders may keep it indefinitely.
type Snapshot struct {
	Version uint64
	Change  Change
	Artists []Artist
}

// Observer receives a snapshot after every mutation. Observers run
// synchronously, one mutation at a time, and must not mutate the registry.
// They may subscribe or unsubscribe, including themselves.
type Observer func(Snapshot)

// # Registry

const errUninitialized = "artist: registry used before NewRegistry"

/*
Registry is the process-local, ordered collection of artist records.

It is the single source of truth for the directory. Readers always receive
copies; the backing slice never leaves the registry.

Add does not enforce id uniqueness and unknown ids are silent no-ops.
Callers that need unique ids use [Registry.AddUnique].
*/
type Registry struct {
	mu      sync.RWMutex
	artists []Artist
	version uint64
	ready   bool

	// notifyMu serializes observer delivery so snapshots arrive in version order.
	notifyMu sync.Mutex

	// obsMu guards the observer set. It is never held while an observer runs.
	obsMu     sync.Mutex
	observers map[uint64]Observer
	nextObs   uint64
}

// NewRegistry returns a registry seeded with copies of the given records.
func NewRegistry(seed ...Artist) *Registry {
	return &Registry{
		artists:   cloneAll(seed),
		ready:     true,
		observers: make(map[uint64]Observer),
	}
}

// mustReady panics on nil or zero-value registries. Both are wiring bugs.
func (r *Registry) mustReady() {
	if r == nil || !r.ready {
		panic(errUninitialized)
	}
}

// List returns every artist in insertion order.
func (r *Registry) List() []Artist {
	r.mustReady()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneAll(r.artists)
}

// Len returns the number of records.
func (r *Registry) Len() int {
	r.mustReady()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.artists)
}

// Version increases by one on every effective mutation.
func (r *Registry) Version() uint64 {
	r.mustReady()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.version
}

// Snapshot returns the current version and records atomically.
func (r *Registry) Snapshot() Snapshot {
	r.mustReady()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return Snapshot{Version: r.version, Artists: cloneAll(r.artists)}
}

// Get returns the first artist with the given id.
func (r *Registry) Get(id string) (Artist, bool) {
	r.mustReady()

	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.artists[i].Clone(), true
	}
	return Artist{}, false
}

// Add appends a copy of a to the end of the collection.
func (r *Registry) Add(a Artist) {
	r.mustReady()

	r.mu.Lock()
	r.artists = append(r.artists, a.Clone())
	r.commit(Change{Kind: ChangeAdded, ID: a.ID})
}

// AddUnique appends a copy of a unless an artist with the same id is already
// present. The check and the append happen under one lock.
func (r *Registry) AddUnique(a Artist) bool {
	r.mustReady()

	r.mu.Lock()
	if r.indexOf(a.ID) >= 0 {
		r.mu.Unlock()
		return false
	}

	r.artists = append(r.artists, a.Clone())
	r.commit(Change{Kind: ChangeAdded, ID: a.ID})

	return true
}

// Update merges patch into the first artist with the given id, keeping its
// position. It reports false, and changes nothing, when no artist matches.
func (r *Registry) Update(id string, patch Patch) (Artist, bool) {
	r.mustReady()

	r.mu.Lock()
	i := r.indexOf(id)
	if i < 0 {
		r.mu.Unlock()
		return Artist{}, false
	}

	applyPatch(&r.artists[i], patch)
	updated := r.artists[i].Clone()
	r.commit(Change{Kind: ChangeUpdated, ID: id})

	return updated, true
}

// Remove deletes the first artist with the given id. Unknown ids are a no-op.
func (r *Registry) Remove(id string) bool {
	r.mustReady()

	r.mu.Lock()
	i := r.indexOf(id)
	if i < 0 {
		r.mu.Unlock()
		return false
	}

	r.artists = slices.Delete(r.artists, i, i+1)
	r.commit(Change{Kind: ChangeRemoved, ID: id})

	return true
}

// Subscribe registers fn for every future mutation and returns a function
// that cancels the subscription.
func (r *Registry) Subscribe(fn Observer) (unsubscribe func()) {
	r.mustReady()

	r.obsMu.Lock()
	defer r.obsMu.Unlock()

	key := r.nextObs
	r.nextObs++
	r.observers[key] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			r.obsMu.Lock()
			delete(r.observers, key)
			r.obsMu.Unlock()
		})
	}
}

// commit must be called with mu held for writing. It bumps the version,
// releases mu and then delivers the snapshot to observers.
func (r *Registry) commit(change Change) {
	r.version++
	snapshot := Snapshot{Version: r.version, Change: change, Artists: cloneAll(r.artists)}

	// Taking notifyMu before releasing mu keeps delivery in version order.
	r.notifyMu.Lock()
	r.mu.Unlock()
	defer r.notifyMu.Unlock()

	r.obsMu.Lock()
	keys := slices.Sorted(maps.Keys(r.observers))
	observers := make([]Observer, 0, len(keys))
	for _, key := range keys {
		observers = append(observers, r.observers[key])
	}
	r.obsMu.Unlock()

	for _, observer := range observers {
		observer(Snapshot{
			Version: snapshot.Version,
			Change:  snapshot.Change,
			Artists: cloneAll(snapshot.Artists),
		})
	}
}

func (r *Registry) indexOf(id string) int {
	return slices.IndexFunc(r.artists, func(a Artist) bool { return a.ID == id })
}

func applyPatch(dst *Artist, patch Patch) {
	pointer.Assign(&dst.Name, patch.Name)
	pointer.Assign(&dst.Bio, patch.Bio)
	pointer.Assign(&dst.PriceRange, patch.PriceRange)
	pointer.Assign(&dst.Location, patch.Location)
	pointer.Assign(&dst.Email, patch.Email)
	pointer.Assign(&dst.Phone, patch.Phone)
	pointer.Assign(&dst.Image, patch.Image)
	pointer.Assign(&dst.Rating, patch.Rating)
	pointer.Assign(&dst.ReviewCount, patch.ReviewCount)

	if patch.Categories != nil {
		dst.Categories = slices.Clone(patch.Categories)
	}
	if patch.Languages != nil {
		dst.Languages = slices.Clone(patch.Languages)
	}
}
