package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"10.1.1.1:500", "10.1.1.1"},
		{"10.1.1.1:501", "10.1.1.1"},
		{"backend.example.net:8080", "backend.example.net"},
		{"10.1.1.1", "10.1.1.1"},
		{"host:80:extra", "host"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NodeID(tt.input))
		})
	}
}

func TestNodeEntryPort(t *testing.T) {
	assert.Equal(t, "443", NodeEntry{Endpoint: "10.0.0.1:443"}.Port())
	assert.Equal(t, "", NodeEntry{Endpoint: "10.0.0.1"}.Port())
}

func TestNodePools(t *testing.T) {
	web := &Pool{Name: "web"}
	api := &Pool{Name: "api"}

	n := &Node{ID: "10.0.0.1"}
	n.Add(NodeEntry{Endpoint: "10.0.0.1:80"}, web)
	n.Add(NodeEntry{Endpoint: "10.0.0.1:8080"}, api)
	n.Add(NodeEntry{Endpoint: "10.0.0.1:81"}, web)

	assert.Len(t, n.Instances, 3)
	assert.Equal(t, []*Pool{web, api}, n.Pools())
	assert.Equal(t, "node:10.0.0.1 pool:web, api", n.String())
}
