package zxtm

import (
	"fmt"
	"iter"
	"sort"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/model"
)

const endpointPath = "/node"

// Nodes is the reverse index of one instance: node id to every pool entry
// that lists that host.
type Nodes struct {
	byID map[string]*model.Node
}

// Nodes returns the instance's reverse index, building it on first use.
func (i *Instance) Nodes() (*Nodes, error) {
	return i.nodes()
}

func (i *Instance) buildNodes() (*Nodes, error) {
	pools, err := i.Pools()
	if err != nil {
		return nil, err
	}

	idx := &Nodes{byID: make(map[string]*model.Node)}
	for _, name := range SortedNames(pools) {
		pool := pools[name]
		entries, err := pool.NodesTable()
		if err != nil {
			i.report(model.Diagnostic{
				Kind:    model.DiagnosticInvalidEntry,
				Entity:  model.EntityPool,
				Name:    pool.Name,
				Message: fmt.Sprintf("unreadable nodes_table: %v", err),
			})
			continue
		}
		for n, entry := range entries {
			endpoint, err := entry.String(endpointPath)
			if err != nil {
				i.report(model.Diagnostic{
					Kind:    model.DiagnosticInvalidEntry,
					Entity:  model.EntityPool,
					Name:    pool.Name,
					Message: fmt.Sprintf("nodes_table entry %d has no node endpoint", n),
				})
				continue
			}
			idx.add(model.NodeEntry{Endpoint: endpoint, Raw: entry}, pool)
		}
	}
	return idx, nil
}

func (n *Nodes) add(entry model.NodeEntry, pool *model.Pool) {
	id := model.NodeID(entry.Endpoint)
	node, ok := n.byID[id]
	if !ok {
		node = &model.Node{ID: id}
		n.byID[id] = node
	}
	node.Add(entry, pool)
}

// Get returns the node with the given id.
func (n *Nodes) Get(id string) (*model.Node, bool) {
	node, ok := n.byID[id]
	return node, ok
}

// Len returns the number of distinct nodes.
func (n *Nodes) Len() int {
	return len(n.byID)
}

// IDs returns every node id in sorted order.
func (n *Nodes) IDs() []string {
	ids := make([]string, 0, len(n.byID))
	for id := range n.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All yields every node in id order.
func (n *Nodes) All() iter.Seq2[string, *model.Node] {
	return func(yield func(string, *model.Node) bool) {
		for _, id := range n.IDs() {
			if !yield(id, n.byID[id]) {
				return
			}
		}
	}
}
