package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/config"
	"github.com/ThomasCrouzet/zxtm-lookup/internal/model"
)

// Renderer turns lookup reports into output text.
type Renderer interface {
	Render(reports []*model.Report, cfg *config.Config) (string, error)
}

var renderers = map[string]Renderer{
	"text": TextRenderer{},
	"yaml": YAMLRenderer{},
	"json": JSONRenderer{},
	"d2":   &D2Renderer{},
}

// Formats returns all supported output formats.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render dispatches to the renderer registered for format.
func Render(format string, reports []*model.Report, cfg *config.Config) (string, error) {
	r, ok := renderers[format]
	if !ok {
		return "", fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats(), ", "))
	}
	return r.Render(reports, cfg)
}

// TextRenderer prints one sentence per traffic group that reaches a node.
type TextRenderer struct{}

func (TextRenderer) Render(reports []*model.Report, _ *config.Config) (string, error) {
	var b strings.Builder
	for _, r := range reports {
		if len(reports) > 1 {
			fmt.Fprintf(&b, "# %s %s\n", r.Instance, r.URL)
		}
		b.WriteString(Text(r))
	}
	return b.String(), nil
}

// Text renders a single report as prose.
func Text(r *model.Report) string {
	var b strings.Builder
	for _, p := range r.Pools {
		if len(p.VServers) == 0 {
			fmt.Fprintf(&b, "Node %s is in the pool %s, which no vserver uses\n", p.Endpoint, p.Pool)
			continue
		}
		for _, vs := range p.VServers {
			if len(vs.TrafficGroups) == 0 {
				fmt.Fprintf(&b, "Node %s is in the pool %s. Configuration is on the %s vserver, which listens on no TIG\n",
					p.Endpoint, p.Pool, vs.Name)
				continue
			}
			for _, tig := range vs.TrafficGroups {
				fmt.Fprintf(&b, "Node %s is backing TIG %s in the pool %s. Configuration is on the %s vserver\n",
					p.Endpoint, tig, p.Pool, vs.Name)
			}
		}
	}
	return b.String()
}

// YAMLRenderer emits a single report as a mapping and several as a sequence.
type YAMLRenderer struct{}

func (YAMLRenderer) Render(reports []*model.Report, _ *config.Config) (string, error) {
	out, err := yaml.Marshal(single(reports))
	if err != nil {
		return "", fmt.Errorf("encoding yaml: %w", err)
	}
	return string(out), nil
}

// JSONRenderer mirrors YAMLRenderer with indented JSON.
type JSONRenderer struct{}

func (JSONRenderer) Render(reports []*model.Report, _ *config.Config) (string, error) {
	out, err := json.MarshalIndent(single(reports), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding json: %w", err)
	}
	return string(out) + "\n", nil
}

func single(reports []*model.Report) any {
	if len(reports) == 1 {
		return reports[0]
	}
	return reports
}
