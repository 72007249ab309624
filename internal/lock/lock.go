// Package lock provides the shard-level mutex used by pkg/estring. spec.md
// §1 and §6 deliberately leave the choice of synchronization primitive
// behind the shard lock to the implementation — "either a blocking OS mutex
// or a spinning mutex" are both acceptable — and name it as a build-time
// option (`mutex = blocking | spin`). This package turns that into exactly
// that: a build tag, not a runtime branch, so the hot-path call never pays
// for an interface dispatch it doesn't need beyond this package boundary.
//
// Build with `-tags estring_spinlock` to select the spinning implementation
// (lock_spin.go); the default build (lock_blocking.go) wraps sync.Mutex.
//
// © 2025 estring authors. MIT License.
package lock

// Mutex is the contract every Shard depends on. Both implementations in this
// package satisfy it; neither is exported as a concrete type so Shard stays
// agnostic to which one the build selected.
type Mutex interface {
	Lock()
	Unlock()
}
