package ledger

import (
	"sort"
	"sync"
)

// KeyLocks serializes mutating ledger operations per
// (company, product, location) key. Operations on disjoint keys run in
// parallel; a transfer locks the source and every destination key.
type KeyLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyLocks builds an empty lock table.
func NewKeyLocks() *KeyLocks {
	return &KeyLocks{locks: make(map[string]*sync.Mutex)}
}

func (k *KeyLocks) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}

// Lock acquires every key in deterministic (sorted, deduplicated) order to
// avoid lock-ordering deadlocks, and returns the function releasing them in
// reverse order.
func (k *KeyLocks) Lock(keys ...string) (unlock func()) {
	uniq := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		uniq = append(uniq, key)
	}
	sort.Strings(uniq)

	held := make([]*sync.Mutex, 0, len(uniq))
	for _, key := range uniq {
		m := k.get(key)
		m.Lock()
		held = append(held, m)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

// lockKey builds the serialization key, tenant first so cross-tenant
// operations never contend.
func lockKey(companyID, productID, locationKey string) string {
	return companyID + "|" + productID + "|" + locationKey
}
