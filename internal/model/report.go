package model

// Report describes everything that references one node on one instance.
type Report struct {
	NodeID   string       `yaml:"node" json:"node"`
	Instance string       `yaml:"instance" json:"instance"`
	URL      string       `yaml:"url,omitempty" json:"url,omitempty"`
	Pools    []PoolReport `yaml:"pools" json:"pools"`
}

// PoolReport is one node table entry and the vservers that use its pool.
type PoolReport struct {
	Endpoint string          `yaml:"endpoint" json:"endpoint"`
	Pool     string          `yaml:"pool" json:"pool"`
	VServers []VServerReport `yaml:"vservers" json:"vservers"`
}

// VServerReport lists a vserver's traffic groups.
type VServerReport struct {
	Name          string   `yaml:"name" json:"name"`
	TrafficGroups []string `yaml:"tigs" json:"tigs"`
}
