package render

import (
	"fmt"
	"strings"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/config"
	"github.com/ThomasCrouzet/zxtm-lookup/internal/model"
	"github.com/ThomasCrouzet/zxtm-lookup/internal/util"
)

// D2Renderer draws each report as an instance container holding the
// tig -> vserver -> pool -> node chain.
type D2Renderer struct{}

func (r *D2Renderer) Render(reports []*model.Report, cfg *config.Config) (string, error) {
	theme := GetTheme(cfg.Theme)
	var b strings.Builder

	direction := cfg.Direction
	if direction == "" {
		direction = "right"
	}

	fmt.Fprintf(&b, "direction: %s\n\n", direction)

	containers := newShapeSet()
	for _, report := range reports {
		r.renderInstance(&b, report, containers, theme)
	}

	return b.String(), nil
}

func (r *D2Renderer) renderInstance(b *strings.Builder, report *model.Report, containers *shapeSet, theme *Theme) {
	id := containers.id("instance", report.Instance)
	label := report.Instance
	if report.URL != "" {
		label = fmt.Sprintf("%s (%s)", report.Instance, report.URL)
	}

	color := theme.ColorForElement("instance")
	fmt.Fprintf(b, "%s: %s {\n", id, util.Quote(label))
	fmt.Fprintf(b, "  style.fill: %q\n", color.Fill)
	fmt.Fprintf(b, "  style.stroke: %q\n", color.Stroke)
	b.WriteString("\n")

	shapes := newShapeSet()
	var edges []string
	seenEdge := make(map[string]bool)
	addEdge := func(edge string) {
		if !seenEdge[edge] {
			seenEdge[edge] = true
			edges = append(edges, edge)
		}
	}

	nodeID := shapes.id("node", report.NodeID)

	for _, p := range report.Pools {
		poolID := shapes.id("pool", p.Pool)
		edge := fmt.Sprintf("%s -> %s", poolID, nodeID)
		if port := (model.NodeEntry{Endpoint: p.Endpoint}).Port(); port != "" {
			edge += ": " + util.Quote(":"+port)
		}
		addEdge(edge)

		for _, vs := range p.VServers {
			vsID := shapes.id("vserver", vs.Name)
			addEdge(fmt.Sprintf("%s -> %s", vsID, poolID))

			for _, tig := range vs.TrafficGroups {
				tigID := shapes.id("tig", tig)
				addEdge(fmt.Sprintf("%s -> %s", tigID, vsID))
			}
		}
	}

	for _, s := range shapes.ordered {
		c := theme.ColorForElement(s.kind)
		fmt.Fprintf(b, "  %s: %s {\n", s.id, util.Quote(s.label))
		fmt.Fprintf(b, "    style.fill: %q\n", c.Fill)
		fmt.Fprintf(b, "    style.stroke: %q\n", c.Stroke)
		fmt.Fprintf(b, "    style.font-color: %q\n", c.Font)
		b.WriteString("  }\n")
	}

	if len(edges) > 0 {
		b.WriteString("\n")
	}
	for _, e := range edges {
		fmt.Fprintf(b, "  %s\n", e)
	}

	b.WriteString("}\n\n")
}

type shape struct {
	id    string
	kind  string
	label string
}

type shapeKey struct {
	kind string
	name string
}

// shapeSet hands out one D2 identifier per (kind, name) in first-seen order.
// Names that sanitize to the same identifier get a numeric suffix.
type shapeSet struct {
	byKey   map[shapeKey]string
	taken   map[string]bool
	ordered []shape
}

func newShapeSet() *shapeSet {
	return &shapeSet{byKey: make(map[shapeKey]string), taken: make(map[string]bool)}
}

func (s *shapeSet) id(kind, name string) string {
	key := shapeKey{kind: kind, name: name}
	if id, ok := s.byKey[key]; ok {
		return id
	}
	base := util.ElementID(kind, name)
	id := base
	for n := 2; s.taken[id]; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	s.taken[id] = true
	s.byKey[key] = id
	s.ordered = append(s.ordered, shape{id: id, kind: kind, label: name})
	return id
}
