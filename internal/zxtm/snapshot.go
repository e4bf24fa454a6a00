// Package zxtm turns a fleet snapshot document into a linked object graph of
// pools, traffic groups and virtual servers, and indexes backend nodes.
package zxtm

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/blob"
)

const (
	versionPath       = "/version"
	instanceNamesPath = "/zxtms"
	instanceKeyPrefix = "zxtms/"
)

// Snapshot is the root of a loaded fleet document.
type Snapshot struct {
	root    blob.Blob
	version string
	names   []string
	opts    options
}

// Load decodes a JSON snapshot and validates its top-level shape.
func Load(data []byte, opts ...Option) (*Snapshot, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedSnapshotError{Reason: "invalid JSON", Err: err}
	}
	return New(doc, opts...)
}

// New wraps an already decoded document. Every instance listed under zxtms
// must resolve, otherwise no Snapshot is returned.
func New(doc any, opts ...Option) (*Snapshot, error) {
	root := blob.New(doc)

	version, err := root.String(versionPath)
	if err != nil {
		return nil, &MalformedSnapshotError{Reason: "version", Err: err}
	}

	names, err := root.Strings(instanceNamesPath)
	if err != nil {
		return nil, &MalformedSnapshotError{Reason: "zxtms", Err: err}
	}

	for _, name := range names {
		if _, err := root.Path(instancePath(name)); err != nil {
			return nil, &MalformedSnapshotError{Reason: fmt.Sprintf("instance %q", name), Err: err}
		}
	}

	return &Snapshot{
		root:    root,
		version: version,
		names:   names,
		opts:    newOptions(opts),
	}, nil
}

// instancePath addresses the top-level "zxtms/<name>" key of an instance.
func instancePath(name string) string {
	return blob.Join(instanceKeyPrefix + name)
}

// Version returns the document's version string.
func (s *Snapshot) Version() string {
	return s.version
}

// Names returns the instance names in document order.
func (s *Snapshot) Names() []string {
	return slices.Clone(s.names)
}

// Blob returns the document root.
func (s *Snapshot) Blob() blob.Blob {
	return s.root
}

// Instances yields a fresh Instance per listed name, in document order.
// Instances are not cached here; each call navigates from the root again.
func (s *Snapshot) Instances() iter.Seq2[*Instance, error] {
	return func(yield func(*Instance, error) bool) {
		for _, name := range s.names {
			if !yield(s.Instance(name)) {
				return
			}
		}
	}
}

// Instance returns the named instance.
func (s *Snapshot) Instance(name string) (*Instance, error) {
	if !slices.Contains(s.names, name) {
		return nil, fmt.Errorf("instance %q: %w", name, ErrUnknownInstance)
	}
	b, err := s.root.Path(instancePath(name))
	if err != nil {
		return nil, &MalformedSnapshotError{Reason: fmt.Sprintf("instance %q", name), Err: err}
	}
	return newInstance(name, b, s.opts.logger), nil
}
