package model

import "github.com/ThomasCrouzet/zxtm-lookup/internal/blob"

const ipAddressesPath = "/info/properties/basic/ipaddresses"

// TrafficGroup is a traffic IP group (TIG): a named set of addresses that
// virtual servers listen on.
type TrafficGroup struct {
	Name     string
	Blob     blob.Blob
	VServers []*VServer
}

// AddVServer records a virtual server listening on this group.
func (g *TrafficGroup) AddVServer(vs *VServer) {
	for _, existing := range g.VServers {
		if existing == vs {
			return
		}
	}
	g.VServers = append(g.VServers, vs)
}

func (g *TrafficGroup) Status() (blob.Blob, error) {
	return g.Blob.Path(statusPath)
}

func (g *TrafficGroup) Note() (blob.Blob, error) {
	return g.Blob.Path(notePath)
}

// IPAddresses returns the group's traffic IPs.
func (g *TrafficGroup) IPAddresses() ([]string, error) {
	return g.Blob.Strings(ipAddressesPath)
}

// VServerNames returns the names of linked virtual servers in link order.
func (g *TrafficGroup) VServerNames() []string {
	names := make([]string, 0, len(g.VServers))
	for _, vs := range g.VServers {
		names = append(names, vs.Name)
	}
	return names
}
