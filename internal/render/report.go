package render

import "github.com/ThomasCrouzet/zxtm-lookup/internal/model"

// BuildReport collects what references node on one instance: every node
// table entry, the pool it sits in, and the vservers and traffic groups
// that reach that pool.
func BuildReport(instance, url string, node *model.Node) *model.Report {
	r := &model.Report{
		NodeID:   node.ID,
		Instance: instance,
		URL:      url,
		Pools:    make([]model.PoolReport, 0, len(node.Instances)),
	}
	for _, ni := range node.Instances {
		pr := model.PoolReport{
			Endpoint: ni.Entry.Endpoint,
			Pool:     ni.Pool.Name,
			VServers: make([]model.VServerReport, 0, len(ni.Pool.VServers)),
		}
		for _, vs := range ni.Pool.VServers {
			pr.VServers = append(pr.VServers, model.VServerReport{
				Name:          vs.Name,
				TrafficGroups: vs.TrafficGroupNames(),
			})
		}
		r.Pools = append(r.Pools, pr)
	}
	return r
}
