// Package bench provides reproducible micro-benchmarks for estring. Run via:
//   go test ./bench -bench=. -benchmem -cpu 1,4,16
//
// We measure:
//   1. Intern           — write path, unique strings (always a miss)
//   2. InternRepeat      — write path against an already-interned set (always a hit)
//   3. InternIfPresent   — read-only lookup, warmed up first
//   4. InternParallel    — concurrent Intern across GOMAXPROCS goroutines (b.RunParallel)
//
// © 2025 estring authors. MIT License.
package bench

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/Voskan/estring/pkg/estring"
)

const datasetSize = 1 << 16

// dataset is deterministic (fixed seed) and backs the hit-path benchmarks.
// BenchmarkIntern does not use it: it builds a fresh random string on every
// iteration so it keeps missing.
var dataset = func() []string {
	rnd := rand.New(rand.NewSource(42))
	arr := make([]string, datasetSize)
	for i := range arr {
		arr[i] = fmt.Sprintf("bench-key-%d-%x", i, rnd.Uint64())
	}
	return arr
}()

func BenchmarkIntern(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		estring.Intern(fmt.Sprintf("unique-%d-%d", i, rand.Int63()))
	}
}

func BenchmarkInternRepeat(b *testing.B) {
	for _, s := range dataset {
		estring.Intern(s)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		estring.Intern(dataset[i&(datasetSize-1)])
	}
}

func BenchmarkInternIfPresent(b *testing.B) {
	for _, s := range dataset {
		estring.Intern(s)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		estring.InternIfPresent(dataset[i&(datasetSize-1)])
	}
}

func BenchmarkInternParallel(b *testing.B) {
	for _, s := range dataset {
		estring.Intern(s)
	}
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		idx := rand.Intn(datasetSize)
		for pb.Next() {
			idx = (idx + 1) & (datasetSize - 1)
			estring.Intern(dataset[idx])
		}
	})
}
