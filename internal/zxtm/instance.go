package zxtm

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/blob"
	"github.com/ThomasCrouzet/zxtm-lookup/internal/model"
)

const (
	urlPath         = "/url"
	poolsKey        = "pools"
	trafficGroupKey = "tigs"
	vserversKey     = "servers"
)

// Instance is one traffic manager in the fleet. Its collections are built on
// first access, linked once, and never rebuilt.
type Instance struct {
	name   string
	blob   blob.Blob
	logger log.Logger

	pools         func() (map[string]*model.Pool, error)
	trafficGroups func() (map[string]*model.TrafficGroup, error)
	vservers      func() (map[string]*model.VServer, error)
	linked        func() error
	nodes         func() (*Nodes, error)

	mu          sync.Mutex
	diagnostics []model.Diagnostic
}

func newInstance(name string, b blob.Blob, logger log.Logger) *Instance {
	i := &Instance{
		name:   name,
		blob:   b,
		logger: logger,
	}
	i.pools = sync.OnceValues(i.buildPools)
	i.trafficGroups = sync.OnceValues(i.buildTrafficGroups)
	i.vservers = sync.OnceValues(i.buildVServers)
	i.linked = sync.OnceValue(i.link)
	i.nodes = sync.OnceValues(i.buildNodes)
	return i
}

// Name returns the instance name as listed in the snapshot.
func (i *Instance) Name() string {
	return i.name
}

// URL returns the instance's admin URL, or "" if the document has none.
func (i *Instance) URL() string {
	u, _ := i.blob.String(urlPath)
	return u
}

// Blob returns the instance sub-document.
func (i *Instance) Blob() blob.Blob {
	return i.blob
}

// Pools returns the linked pool collection, including the discard sentinel.
func (i *Instance) Pools() (map[string]*model.Pool, error) {
	if err := i.linked(); err != nil {
		return nil, err
	}
	return i.pools()
}

// TrafficGroups returns the linked traffic group collection.
func (i *Instance) TrafficGroups() (map[string]*model.TrafficGroup, error) {
	if err := i.linked(); err != nil {
		return nil, err
	}
	return i.trafficGroups()
}

// VServers returns the linked virtual server collection.
func (i *Instance) VServers() (map[string]*model.VServer, error) {
	if err := i.linked(); err != nil {
		return nil, err
	}
	return i.vservers()
}

// Diagnostics returns the anomalies recorded so far. Building the
// collections is forced first so linking problems are included.
func (i *Instance) Diagnostics() []model.Diagnostic {
	_ = i.linked()
	i.mu.Lock()
	defer i.mu.Unlock()
	return slices.Clone(i.diagnostics)
}

func (i *Instance) buildPools() (map[string]*model.Pool, error) {
	seed := map[string]*model.Pool{model.DiscardPool: model.NewDiscardPool()}
	return collect(i, model.EntityPool, poolsKey, seed, func(name string, b blob.Blob) *model.Pool {
		return &model.Pool{Name: name, Blob: b}
	})
}

func (i *Instance) buildTrafficGroups() (map[string]*model.TrafficGroup, error) {
	return collect(i, model.EntityTrafficGroup, trafficGroupKey, nil, func(name string, b blob.Blob) *model.TrafficGroup {
		return &model.TrafficGroup{Name: name, Blob: b}
	})
}

func (i *Instance) buildVServers() (map[string]*model.VServer, error) {
	return collect(i, model.EntityVServer, vserversKey, nil, model.NewVServer)
}

// collect materializes one name-keyed collection from the mapping under key.
// A missing mapping is an empty collection. A name seen twice is reported and
// the later definition replaces the earlier one.
func collect[T any](i *Instance, kind model.EntityKind, key string, seed map[string]T, build func(string, blob.Blob) T) (map[string]T, error) {
	out := make(map[string]T, len(seed))
	for name, v := range seed {
		out[name] = v
	}

	section, err := i.blob.Path(blob.Join(key))
	if err != nil {
		if errors.Is(err, blob.ErrPathNotFound) {
			level.Debug(i.logger).Log("msg", "collection missing", "instance", i.URL(), "kind", kind, "key", key)
			return out, nil
		}
		return nil, err
	}
	if section.IsNull() {
		return out, nil
	}

	names, ok := section.Keys()
	if !ok {
		return nil, &MalformedSnapshotError{Reason: fmt.Sprintf("instance %q: %s is not a mapping", i.name, key)}
	}

	for _, name := range names {
		b, err := i.blob.Path(blob.Join(key, name))
		if err != nil {
			return nil, &MalformedSnapshotError{Reason: fmt.Sprintf("instance %q: %s %q", i.name, kind, name), Err: err}
		}
		if _, seen := out[name]; seen {
			i.report(model.Diagnostic{
				Kind:   model.DiagnosticDuplicateName,
				Entity: kind,
				Name:   name,
			})
		}
		out[name] = build(name, b)
	}
	return out, nil
}

// report records a diagnostic and logs it as a warning.
func (i *Instance) report(d model.Diagnostic) {
	d.Instance = i.URL()

	i.mu.Lock()
	i.diagnostics = append(i.diagnostics, d)
	i.mu.Unlock()

	keyvals := []any{
		"msg", d.String(),
		"kind", d.Kind,
		"instance", d.Instance,
		"entity", d.Entity,
		"name", d.Name,
	}
	if d.Ref != "" {
		keyvals = append(keyvals, "ref", d.Ref)
	}
	level.Warn(i.logger).Log(keyvals...)
}

// SortedNames returns the keys of a collection in sorted order.
func SortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
