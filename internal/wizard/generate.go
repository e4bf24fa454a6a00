package wizard

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/config"
)

// WizardAnswers holds all user responses from the wizard.
type WizardAnswers struct {
	Snapshot        string
	ExpectedVersion string

	// Output settings
	Format string
	Output string

	// Diagram settings
	Direction    string
	Theme        string
	AutoRender   bool
	RenderFormat string
}

const configTemplate = `# zxtm-lookup configuration
# Documentation: https://github.com/ThomasCrouzet/zxtm-lookup

snapshot: {{ printf "%q" .Snapshot }}
expected_version: {{ printf "%q" .ExpectedVersion }}

format: {{ .Format }}
{{- if .Output }}
output: {{ printf "%q" .Output }}
{{- end }}

direction: {{ .Direction }}
theme: {{ .Theme }}

render:
  auto_render: {{ if .AutoRender }}true{{ else }}false{{ end }}
  format: {{ .RenderFormat }}
`

// GenerateConfig renders the YAML config from wizard answers.
func GenerateConfig(answers WizardAnswers) (string, error) {
	// Set defaults
	if answers.Snapshot == "" {
		answers.Snapshot = "zxtm.json"
	}
	if answers.ExpectedVersion == "" {
		answers.ExpectedVersion = config.DefaultExpectedVersion
	}
	if answers.Format == "" {
		answers.Format = "text"
	}
	if answers.Direction == "" {
		answers.Direction = "right"
	}
	if answers.Theme == "" {
		answers.Theme = "default"
	}
	if answers.RenderFormat == "" {
		answers.RenderFormat = "svg"
	}

	tmpl, err := template.New("config").Parse(configTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}

	// Paths typed into the wizard end up in the file verbatim; make sure
	// the result still parses.
	var check map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &check); err != nil {
		return "", fmt.Errorf("generated config is not valid YAML: %w", err)
	}

	return buf.String(), nil
}
