package model

import (
	"fmt"
	"strings"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/blob"
)

// NodeID returns the host part of an endpoint: everything before the first ':'.
// "10.1.1.1:500" and "10.1.1.1:501" are the same node.
func NodeID(endpoint string) string {
	if idx := strings.IndexByte(endpoint, ':'); idx != -1 {
		return endpoint[:idx]
	}
	return endpoint
}

// NodeEntry is one row of a pool's node table.
type NodeEntry struct {
	Endpoint string
	Raw      blob.Blob
}

// Port returns the part of the endpoint after the node id, if any.
func (e NodeEntry) Port() string {
	if idx := strings.IndexByte(e.Endpoint, ':'); idx != -1 {
		return e.Endpoint[idx+1:]
	}
	return ""
}

// NodeInstance is a node table entry together with the pool that lists it.
type NodeInstance struct {
	Entry NodeEntry
	Pool  *Pool
}

// Node is a backend host and every pool entry that refers to it.
type Node struct {
	ID        string
	Instances []NodeInstance
}

// Add appends a pool entry for this node.
func (n *Node) Add(entry NodeEntry, pool *Pool) {
	n.Instances = append(n.Instances, NodeInstance{Entry: entry, Pool: pool})
}

// Pools returns the distinct pools that list this node, in first-seen order.
func (n *Node) Pools() []*Pool {
	seen := make(map[*Pool]bool)
	var pools []*Pool
	for _, inst := range n.Instances {
		if !seen[inst.Pool] {
			seen[inst.Pool] = true
			pools = append(pools, inst.Pool)
		}
	}
	return pools
}

func (n *Node) String() string {
	names := make([]string, 0, len(n.Instances))
	for _, p := range n.Pools() {
		names = append(names, p.Name)
	}
	return fmt.Sprintf("node:%s pool:%s", n.ID, strings.Join(names, ", "))
}
