package search

import "github.com/poiesic/reasonit/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate stages during a search.
type SearchMonitor interface {
	Start(query Query)
	AfterCandidates(count int)
	AfterFilter(count int)
	AfterRank(ids []core.ID)
	Finish(result *Result)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ Query)         {}
func (n *noopMonitor) AfterCandidates(_ int) {}
func (n *noopMonitor) AfterFilter(_ int)     {}
func (n *noopMonitor) AfterRank(_ []core.ID) {}
func (n *noopMonitor) Finish(_ *Result)      {}
