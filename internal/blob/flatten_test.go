package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten(t *testing.T) {
	b := decode(t, `{
		"status": "active",
		"info": {"properties": {"basic": {"monitors": ["ping"], "enabled": true}}},
		"weight": 10,
		"note": null
	}`)

	got := b.Flatten("web.")
	assert.Equal(t, []string{
		"web.note = null",
		"web.status = active",
		"web.weight = 10",
		"web.info.properties.basic.enabled = true",
		"web.info.properties.basic.monitors = ping",
	}, got)
}

func TestFlattenListOfMappings(t *testing.T) {
	b := decode(t, `{"nodes_table": [{"node": "10.0.0.1:80", "state": "active"}, {"node": "10.0.0.2:80"}]}`)

	got := b.Flatten("")
	assert.Equal(t, []string{
		"nodes_table.node = 10.0.0.1:80",
		"nodes_table.state = active",
		"nodes_table.node = 10.0.0.2:80",
	}, got)
}

func TestFlattenTopLevelList(t *testing.T) {
	b := decode(t, `["a", 1, true]`)
	assert.Equal(t, []string{"a", "1", "true"}, b.Flatten("ignored."))
}

func TestShow(t *testing.T) {
	b := decode(t, `{"a": 1, "b": "x"}`)
	assert.Equal(t, "p.a = 1\np.b = x", b.Show("p."))
}
