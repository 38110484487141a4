package dag

import "sync"

// Graph is a dependency graph keyed by string IDs. It is safe for
// concurrent use.
type Graph struct {
	mutex sync.RWMutex
	nodes map[string]*node
	order []string // IDs in the order they were added
}

type node struct {
	id    string
	index int // position in Graph.order

	requires   map[string]*node // must come before this node
	requiredBy map[string]*node // must come after this node
}
