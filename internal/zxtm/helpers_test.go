package zxtm

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixturePath = "../../testdata/zxtm/snapshot.json"

func loadFixture(t *testing.T, opts ...Option) *Snapshot {
	t.Helper()
	data, err := os.ReadFile(fixturePath)
	require.NoError(t, err)
	s, err := Load(data, opts...)
	require.NoError(t, err)
	return s
}

// singleInstance builds a snapshot with one instance named "a".
func singleInstance(t *testing.T, doc map[string]any, opts ...Option) *Instance {
	t.Helper()
	s, err := New(map[string]any{
		"version": "0.005",
		"zxtms":   []any{"a"},
		"zxtms/a": doc,
	}, opts...)
	require.NoError(t, err)
	inst, err := s.Instance("a")
	require.NoError(t, err)
	return inst
}

func pool(nodes ...string) map[string]any {
	table := make([]any, 0, len(nodes))
	for _, n := range nodes {
		table = append(table, map[string]any{"node": n})
	}
	return map[string]any{
		"status": "active",
		"note":   "",
		"info":   map[string]any{"properties": map[string]any{"basic": map[string]any{"nodes_table": table}}},
	}
}

func tig(ips ...string) map[string]any {
	list := make([]any, 0, len(ips))
	for _, ip := range ips {
		list = append(list, ip)
	}
	return map[string]any{
		"status": "ok",
		"info":   map[string]any{"properties": map[string]any{"basic": map[string]any{"ipaddresses": list}}},
	}
}

func vserver(poolName string, tigs ...string) map[string]any {
	list := make([]any, 0, len(tigs))
	for _, g := range tigs {
		list = append(list, g)
	}
	return map[string]any{
		"info": map[string]any{"properties": map[string]any{"basic": map[string]any{
			"pool":                  poolName,
			"listen_on_traffic_ips": list,
		}}},
	}
}
