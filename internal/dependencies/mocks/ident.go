package mocks

import (
	"fmt"

	"github.com/davidgomes/haxball-clone/internal/dependencies/ident"
)

// MockIdent is a mock identifier generator for testing.
// It returns queued ids first, then falls back to a deterministic
// sequence (mock-id-1, mock-id-2, ...).
type MockIdent struct {
	// IDs is a queue of ids to return from NewID
	IDs []string

	index int
	seq   int
}

// Ensure MockIdent implements Generator
var _ ident.Generator = (*MockIdent)(nil)

// NewMockIdent creates a new MockIdent
func NewMockIdent() *MockIdent {
	return &MockIdent{}
}

// NewID returns the next queued id, or a generated sequential one
func (g *MockIdent) NewID() string {
	if g.index < len(g.IDs) {
		id := g.IDs[g.index]
		g.index++
		return id
	}
	g.seq++
	return fmt.Sprintf("mock-id-%d", g.seq)
}

// QueueIDs adds ids to the result queue
func (g *MockIdent) QueueIDs(ids ...string) {
	g.IDs = append(g.IDs, ids...)
}
