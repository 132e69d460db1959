package search

import "github.com/poiesic/docstore/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track scan progress and intermediate matches.
type SearchMonitor interface {
	Start(req *core.SearchRequest)
	Scanned(doc *core.Document)
	Matched(doc *core.Document)
	Finish(results []*core.Document)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.SearchRequest) {}
func (n *noopMonitor) Scanned(_ *core.Document)    {}
func (n *noopMonitor) Matched(_ *core.Document)    {}
func (n *noopMonitor) Finish(_ []*core.Document)   {}

