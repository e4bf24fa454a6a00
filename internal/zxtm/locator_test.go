package zxtm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocatorFirstMatch(t *testing.T) {
	l := NewLocator(loadFixture(t))

	inst, node, err := l.Locate("10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "lb1 east", inst.Name())
	require.Len(t, node.Instances, 2)
	for _, ni := range node.Instances {
		assert.NotEqual(t, "10.2.0.5:443", ni.Entry.Endpoint)
	}

	found, err := l.Find("10.0.0.1")
	require.NoError(t, err)
	assert.Same(t, node, found)
}

func TestLocatorLaterInstance(t *testing.T) {
	l := NewLocator(loadFixture(t))

	inst, node, err := l.Locate("10.2.0.5")
	require.NoError(t, err)
	assert.Equal(t, "lb2/west", inst.Name())
	assert.Equal(t, "web", node.Instances[0].Pool.Name)
}

func TestLocatorNotFound(t *testing.T) {
	l := NewLocator(loadFixture(t))

	node, err := l.Find("9.9.9.9")
	require.Error(t, err)
	assert.Nil(t, node)
	assert.True(t, errors.Is(err, ErrNodeNotFound))
	assert.False(t, errors.Is(err, ErrMalformedSnapshot))

	var nnf *NodeNotFoundError
	require.True(t, errors.As(err, &nnf))
	assert.Equal(t, "9.9.9.9", nnf.NodeID)
}

func TestLocatorFindAll(t *testing.T) {
	l := NewLocator(loadFixture(t))

	matches, err := l.FindAll("10.0.0.1")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "lb1 east", matches[0].Instance.Name())
	assert.Equal(t, "lb2/west", matches[1].Instance.Name())

	_, err = l.FindAll("9.9.9.9")
	assert.True(t, errors.Is(err, ErrNodeNotFound))
}

func TestLocatorBrokenInstanceIsNotNotFound(t *testing.T) {
	s, err := New(map[string]any{
		"version": "0.005",
		"zxtms":   []any{"bad", "good"},
		"zxtms/bad": map[string]any{
			"url":   "bad",
			"pools": "not a mapping",
		},
		"zxtms/good": map[string]any{
			"url":   "good",
			"pools": map[string]any{"web": pool("10.0.0.1:80")},
		},
	})
	require.NoError(t, err)
	l := NewLocator(s)

	inst, _, err := l.Locate("10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "good", inst.Name())

	_, err = l.Find("9.9.9.9")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNodeNotFound))
	assert.True(t, errors.Is(err, ErrMalformedSnapshot))
}

func TestEndToEnd(t *testing.T) {
	s, err := New(map[string]any{
		"version": "0.005",
		"zxtms":   []any{"lb"},
		"zxtms/lb": map[string]any{
			"url":     "https://lb.example",
			"pools":   map[string]any{"p1": pool("10.0.0.1:80")},
			"tigs":    map[string]any{"g1": tig("1.2.3.4")},
			"servers": map[string]any{"v1": vserver("p1", "g1")},
		},
	})
	require.NoError(t, err)

	node, err := NewLocator(s).Find("10.0.0.1")
	require.NoError(t, err)
	require.Len(t, node.Instances, 1)

	p := node.Instances[0].Pool
	assert.Equal(t, "p1", p.Name)
	assert.Equal(t, []string{"v1"}, p.VServerNames())
	require.Len(t, p.VServers, 1)
	assert.Equal(t, []string{"g1"}, p.VServers[0].TrafficGroupNames())
}
