//go:build estring_spinlock

package lock

import "runtime"

func gosched() { runtime.Gosched() }
