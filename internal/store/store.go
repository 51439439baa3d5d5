// Package store holds the shared pieces of the per-domain resource stores:
// the transient UI flags and the fetch generation gate.
package store

import "sync"

// Flags are the transient per-store indicators mirrored by the UI.
type Flags struct {
	Loading    bool
	Processing bool
	LastError  string
}

// FetchGate fences overlapping fetches. Each fetch takes a generation at
// start; a response is only installed if its generation is still current,
// so a slow earlier fetch can never overwrite a newer one's result.
type FetchGate struct {
	mu  sync.Mutex
	gen uint64
}

// Begin marks a new fetch and returns its generation.
func (g *FetchGate) Begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	return g.gen
}

// Current reports whether gen is still the latest fetch.
func (g *FetchGate) Current(gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen == gen
}
