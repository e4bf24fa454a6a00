package zxtm

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/model"
)

// Locator finds a node across the fleet.
type Locator struct {
	logger    log.Logger
	instances func() ([]*Instance, error)
}

// Match is one instance's view of a node.
type Match struct {
	Instance *Instance
	Node     *model.Node
}

// NewLocator searches the snapshot's instances. The instance list is taken
// once so that each instance's reverse index is built only once.
func NewLocator(s *Snapshot) *Locator {
	return &Locator{
		logger: s.opts.logger,
		instances: sync.OnceValues(func() ([]*Instance, error) {
			var out []*Instance
			for inst, err := range s.Instances() {
				if err != nil {
					return nil, err
				}
				out = append(out, inst)
			}
			return out, nil
		}),
	}
}

// Find returns the node from the first instance, in snapshot order, whose
// index contains it. Later instances are not consulted.
func (l *Locator) Find(nodeID string) (*model.Node, error) {
	_, node, err := l.Locate(nodeID)
	return node, err
}

// Locate is Find that also returns the instance the node was found on.
func (l *Locator) Locate(nodeID string) (*Instance, *model.Node, error) {
	var found *Match
	err := l.walk(func(m Match) bool {
		found = &m
		return false
	}, nodeID)
	if found != nil {
		return found.Instance, found.Node, nil
	}
	return nil, nil, err
}

// FindAll returns the node from every instance that indexes it.
func (l *Locator) FindAll(nodeID string) ([]Match, error) {
	var matches []Match
	err := l.walk(func(m Match) bool {
		matches = append(matches, m)
		return true
	}, nodeID)
	if len(matches) > 0 {
		return matches, nil
	}
	return nil, err
}

// walk visits matches in instance order until visit returns false. An
// instance that cannot be indexed is skipped; if nothing matched, its error
// is returned instead of NodeNotFound so a broken document is not reported
// as a missing node.
func (l *Locator) walk(visit func(Match) bool, nodeID string) error {
	instances, err := l.instances()
	if err != nil {
		return err
	}

	var errs []error
	for _, inst := range instances {
		nodes, err := inst.Nodes()
		if err != nil {
			level.Warn(l.logger).Log("msg", "skipping instance", "instance", inst.Name(), "err", err)
			errs = append(errs, fmt.Errorf("indexing %s: %w", inst.Name(), err))
			continue
		}
		node, ok := nodes.Get(nodeID)
		if !ok {
			continue
		}
		if !visit(Match{Instance: inst, Node: node}) {
			return nil
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return &NodeNotFoundError{NodeID: nodeID}
}
