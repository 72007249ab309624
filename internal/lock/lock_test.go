package lock

import (
	"sync"
	"testing"
)

func TestMutualExclusion(t *testing.T) {
	m := New()
	counter := 0
	var wg sync.WaitGroup
	const goroutines = 32
	const incsPerGoroutine = 1000

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < incsPerGoroutine; j++ {
				m.Lock()
				counter++
				m.Unlock()
			}
		}()
	}
	wg.Wait()

	if want := goroutines * incsPerGoroutine; counter != want {
		t.Fatalf("counter = %d, want %d (lock failed to serialize increments)", counter, want)
	}
}
