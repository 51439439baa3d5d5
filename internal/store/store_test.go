package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchGate_OnlyLatestGenerationIsCurrent(t *testing.T) {
	var gate FetchGate

	first := gate.Begin()
	require.True(t, gate.Current(first))

	second := gate.Begin()
	require.False(t, gate.Current(first), "stale generation must not be current")
	require.True(t, gate.Current(second))
}

func TestFetchGate_ConcurrentBeginsYieldDistinctGenerations(t *testing.T) {
	var gate FetchGate
	var mu sync.Mutex
	seen := make(map[uint64]bool)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gen := gate.Begin()
			mu.Lock()
			seen[gen] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, 32)
	require.True(t, gate.Current(uint64(32)))
}
