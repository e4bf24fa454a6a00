package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/blob"
)

func decode(t *testing.T, s string) blob.Blob {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return blob.New(v)
}

func TestNewVServer(t *testing.T) {
	vs := NewVServer("web", decode(t, `{"info": {"properties": {"basic": {
		"pool": "web-pool",
		"listen_on_traffic_ips": ["public", "internal"]
	}}}}`))

	assert.Equal(t, "web", vs.Name)
	assert.Equal(t, "web-pool", vs.PoolName)
	assert.Equal(t, []string{"public", "internal"}, vs.ListeningGroupNames)
	assert.Nil(t, vs.Pool)
}

func TestNewVServerMissingFields(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", `{}`},
		{"no basic", `{"info": {"properties": {}}}`},
		{"wrong types", `{"info": {"properties": {"basic": {"pool": 3, "listen_on_traffic_ips": "public"}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs := NewVServer("v", decode(t, tt.doc))
			assert.Equal(t, "", vs.PoolName)
			assert.Nil(t, vs.ListeningGroupNames)
		})
	}
}

func TestLinksAreAddedOnce(t *testing.T) {
	p := &Pool{Name: "web"}
	g := &TrafficGroup{Name: "public"}
	vs := &VServer{Name: "v1"}

	p.AddVServer(vs)
	p.AddVServer(vs)
	g.AddVServer(vs)
	g.AddVServer(vs)
	vs.AddTrafficGroup(g)
	vs.AddTrafficGroup(g)

	assert.Equal(t, []string{"v1"}, p.VServerNames())
	assert.Equal(t, []string{"v1"}, g.VServerNames())
	assert.Equal(t, []string{"public"}, vs.TrafficGroupNames())
	assert.Equal(t, "<VServer: name=v1 pool= tigs=public>", vs.String())
}

func TestDiscardPool(t *testing.T) {
	p := NewDiscardPool()
	assert.Equal(t, DiscardPool, p.Name)
	assert.True(t, p.Sentinel)

	table, err := p.NodesTable()
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestDiagnosticString(t *testing.T) {
	dup := Diagnostic{Kind: DiagnosticDuplicateName, Instance: "https://lb", Entity: EntityPool, Name: "discard"}
	assert.Equal(t, "[https://lb] already seen pool with name discard", dup.String())

	unresolved := Diagnostic{
		Kind:     DiagnosticUnresolvedReference,
		Instance: "https://lb",
		Entity:   EntityVServer,
		Name:     "v1",
		RefKind:  EntityTrafficGroup,
		Ref:      "g9",
	}
	assert.Equal(t, `[https://lb] couldn't find tig "g9" for vserver v1`, unresolved.String())
	assert.Equal(t, `couldn't find tig "g9" for vserver v1`, unresolved.Summary())
}
