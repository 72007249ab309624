//go:build !estring_spinlock

package lock

import "sync"

// New returns the default shard mutex: a thin wrapper over sync.Mutex. This
// is the right choice for nearly every workload — contention is expected to
// be brief (a header write plus a byte copy) and the OS scheduler handles
// the parked-waiter case far better than a spin loop would under
// oversubscription.
func New() Mutex {
	return &blockingMutex{}
}

type blockingMutex struct {
	mu sync.Mutex
}

func (m *blockingMutex) Lock()   { m.mu.Lock() }
func (m *blockingMutex) Unlock() { m.mu.Unlock() }
