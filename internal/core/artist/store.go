// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

// Repository is the storage contract the service depends on. [Registry] is
// the only implementation; the interface keeps the service testable.
type Repository interface {
	Snapshot() Snapshot
	Get(id string) (Artist, bool)
	Add(a Artist)
	AddUnique(a Artist) bool
	Update(id string, patch Patch) (Artist, bool)
	Remove(id string) bool
	Subscribe(fn Observer) (unsubscribe func())
}

var _ Repository = (*Registry)(nil)
