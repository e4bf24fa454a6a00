package model

import (
	"fmt"
	"strings"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/blob"
)

const (
	vserverPoolPath   = "/info/properties/basic/pool"
	vserverListenPath = "/info/properties/basic/listen_on_traffic_ips"
)

// VServer is a virtual server. It names its pool and traffic groups by
// string; Pool and TrafficGroups are filled in by the linking pass.
type VServer struct {
	Name                string
	Blob                blob.Blob
	PoolName            string
	ListeningGroupNames []string

	Pool          *Pool // nil when PoolName did not resolve
	TrafficGroups []*TrafficGroup
}

// NewVServer reads the declared references out of the vserver document.
// Missing or malformed references are left empty.
func NewVServer(name string, b blob.Blob) *VServer {
	vs := &VServer{Name: name, Blob: b}
	if pool, err := b.String(vserverPoolPath); err == nil {
		vs.PoolName = pool
	}
	if groups, err := b.Strings(vserverListenPath); err == nil {
		vs.ListeningGroupNames = groups
	}
	return vs
}

// AddTrafficGroup links a resolved traffic group, once.
func (vs *VServer) AddTrafficGroup(g *TrafficGroup) {
	for _, existing := range vs.TrafficGroups {
		if existing == g {
			return
		}
	}
	vs.TrafficGroups = append(vs.TrafficGroups, g)
}

// TrafficGroupNames returns the names of linked traffic groups.
func (vs *VServer) TrafficGroupNames() []string {
	names := make([]string, 0, len(vs.TrafficGroups))
	for _, g := range vs.TrafficGroups {
		names = append(names, g.Name)
	}
	return names
}

func (vs *VServer) String() string {
	return fmt.Sprintf("<VServer: name=%s pool=%s tigs=%s>", vs.Name, vs.PoolName, strings.Join(vs.TrafficGroupNames(), ","))
}
