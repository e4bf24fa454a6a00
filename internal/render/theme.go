package render

// Theme defines colors for the element kinds of a lookup diagram.
type Theme struct {
	Name   string
	Colors map[string]ThemeColor
}

// ThemeColor defines fill and stroke colors for an element type.
type ThemeColor struct {
	Fill   string
	Stroke string
	Font   string
}

var themes = map[string]*Theme{
	"default": {
		Name: "default",
		Colors: map[string]ThemeColor{
			"instance": {Fill: "#F3F4F6", Stroke: "#6B7280", Font: "#374151"},
			"tig":      {Fill: "#DBEAFE", Stroke: "#2563EB", Font: "#1E40AF"},
			"vserver":  {Fill: "#E0E7FF", Stroke: "#4F46E5", Font: "#3730A3"},
			"pool":     {Fill: "#DCFCE7", Stroke: "#16A34A", Font: "#166534"},
			"node":     {Fill: "#FEF9C3", Stroke: "#CA8A04", Font: "#854D0E"},
		},
	},
	"dark": {
		Name: "dark",
		Colors: map[string]ThemeColor{
			"instance": {Fill: "#1F2937", Stroke: "#9CA3AF", Font: "#D1D5DB"},
			"tig":      {Fill: "#1E3A5F", Stroke: "#3B82F6", Font: "#93C5FD"},
			"vserver":  {Fill: "#1E1B4B", Stroke: "#818CF8", Font: "#A5B4FC"},
			"pool":     {Fill: "#052E16", Stroke: "#22C55E", Font: "#86EFAC"},
			"node":     {Fill: "#422006", Stroke: "#EAB308", Font: "#FDE047"},
		},
	},
	"monochrome": {
		Name: "monochrome",
		Colors: map[string]ThemeColor{
			"instance": {Fill: "#F9FAFB", Stroke: "#9CA3AF", Font: "#4B5563"},
			"tig":      {Fill: "#E5E7EB", Stroke: "#6B7280", Font: "#374151"},
			"vserver":  {Fill: "#D1D5DB", Stroke: "#4B5563", Font: "#1F2937"},
			"pool":     {Fill: "#E5E7EB", Stroke: "#374151", Font: "#111827"},
			"node":     {Fill: "#F3F4F6", Stroke: "#6B7280", Font: "#374151"},
		},
	},
}

// ThemeNames returns all available theme names.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}

// GetTheme returns the named theme or the default.
func GetTheme(name string) *Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}

// ColorForElement returns the theme color for a named element.
func (t *Theme) ColorForElement(name string) ThemeColor {
	if c, ok := t.Colors[name]; ok {
		return c
	}
	return ThemeColor{Fill: "#F9FAFB", Stroke: "#D1D5DB", Font: "#111827"}
}
