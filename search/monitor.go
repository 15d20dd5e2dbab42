package search

import (
	"github.com/poiesic/authdex/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	DomainResolved(domain string, detected bool)
	IndexReady(domain string, documents int)
	AfterRanking(hits []*core.SearchResult)
	StackFiltered(stack string, remaining int)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                        {}
func (n *noopMonitor) DomainResolved(_ string, _ bool)       {}
func (n *noopMonitor) IndexReady(_ string, _ int)            {}
func (n *noopMonitor) AfterRanking(_ []*core.SearchResult)   {}
func (n *noopMonitor) StackFiltered(_ string, _ int)         {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)         {}
