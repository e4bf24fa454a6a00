package zxtm

import "github.com/ThomasCrouzet/zxtm-lookup/internal/model"

// link resolves every vserver's pool and traffic group names into direct
// references, and fills in the back-references on pools and groups.
// A name that does not resolve is reported and left unlinked.
func (i *Instance) link() error {
	pools, err := i.pools()
	if err != nil {
		return err
	}
	groups, err := i.trafficGroups()
	if err != nil {
		return err
	}
	vservers, err := i.vservers()
	if err != nil {
		return err
	}

	for _, name := range SortedNames(vservers) {
		vs := vservers[name]

		if pool, ok := pools[vs.PoolName]; ok {
			vs.Pool = pool
			pool.AddVServer(vs)
		} else {
			i.report(model.Diagnostic{
				Kind:    model.DiagnosticUnresolvedReference,
				Entity:  model.EntityVServer,
				Name:    vs.Name,
				RefKind: model.EntityPool,
				Ref:     vs.PoolName,
			})
		}

		for _, groupName := range vs.ListeningGroupNames {
			group, ok := groups[groupName]
			if !ok {
				i.report(model.Diagnostic{
					Kind:    model.DiagnosticUnresolvedReference,
					Entity:  model.EntityVServer,
					Name:    vs.Name,
					RefKind: model.EntityTrafficGroup,
					Ref:     groupName,
				})
				continue
			}
			vs.AddTrafficGroup(group)
			group.AddVServer(vs)
		}
	}
	return nil
}
