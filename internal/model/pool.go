package model

import "github.com/ThomasCrouzet/zxtm-lookup/internal/blob"

// DiscardPool is the name of the pool every instance has for dropped traffic.
const DiscardPool = "discard"

const (
	statusPath     = "/status"
	notePath       = "/note"
	nodesTablePath = "/info/properties/basic/nodes_table"
)

// Pool is a named backend group with a table of node endpoints.
type Pool struct {
	Name     string
	Blob     blob.Blob
	Sentinel bool // true for the built-in discard pool, which has no document
	VServers []*VServer
}

// NewDiscardPool returns the sentinel pool with an empty node table.
func NewDiscardPool() *Pool {
	return &Pool{Name: DiscardPool, Sentinel: true}
}

// AddVServer records a virtual server that sends traffic to this pool.
func (p *Pool) AddVServer(vs *VServer) {
	for _, existing := range p.VServers {
		if existing == vs {
			return
		}
	}
	p.VServers = append(p.VServers, vs)
}

// Status returns the pool's status sub-document.
func (p *Pool) Status() (blob.Blob, error) {
	return p.Blob.Path(statusPath)
}

// Note returns the pool's note sub-document.
func (p *Pool) Note() (blob.Blob, error) {
	return p.Blob.Path(notePath)
}

// NodesTable returns the raw node table entries. The sentinel pool has none.
func (p *Pool) NodesTable() ([]blob.Blob, error) {
	if p.Sentinel {
		return nil, nil
	}
	table, err := p.Blob.Path(nodesTablePath)
	if err != nil {
		return nil, err
	}
	if table.IsNull() {
		return nil, nil
	}
	entries, ok := table.List()
	if !ok {
		return nil, &blob.PathNotFoundError{Path: nodesTablePath}
	}
	return entries, nil
}

// VServerNames returns the names of linked virtual servers in link order.
func (p *Pool) VServerNames() []string {
	names := make([]string, 0, len(p.VServers))
	for _, vs := range p.VServers {
		names = append(names, vs.Name)
	}
	return names
}
