package wizard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/config"
	"github.com/ThomasCrouzet/zxtm-lookup/internal/render"
)

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult) (*WizardAnswers, error) {
	answers := &WizardAnswers{
		Snapshot:        "zxtm.json",
		ExpectedVersion: config.DefaultExpectedVersion,
		Format:          "text",
		Direction:       "right",
		Theme:           "default",
		RenderFormat:    "svg",
	}

	// Build detection summary
	var hints []string
	if len(detection.Snapshots) > 0 {
		answers.Snapshot = detection.Snapshots[0]
		hints = append(hints, fmt.Sprintf("Snapshots found: %s", strings.Join(detection.Snapshots, ", ")))
	}
	if detection.Version != "" {
		answers.ExpectedVersion = detection.Version
		hints = append(hints, fmt.Sprintf("Snapshot version: %s", detection.Version))
	}
	if detection.D2Available {
		hints = append(hints, "d2 binary detected")
	}

	desc := "Path to the load balancer snapshot (JSON)."
	if len(hints) > 0 {
		desc += "\n\nAuto-detected:\n  " + strings.Join(hints, "\n  ")
	}

	// Step 1: snapshot
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("Snapshot file").
				Description(desc).
				Value(&answers.Snapshot),
			huh.NewInput().
				Title("Expected snapshot version").
				Description("A warning is printed when the snapshot reports another version").
				Value(&answers.ExpectedVersion),
		),
	}

	// Step 2: output
	formatOptions := make([]huh.Option[string], 0, len(render.Formats()))
	for _, f := range render.Formats() {
		formatOptions = append(formatOptions, huh.NewOption(f, f))
	}
	groups = append(groups, huh.NewGroup(
		huh.NewSelect[string]().
			Title("Output format").
			Options(formatOptions...).
			Value(&answers.Format),
		huh.NewInput().
			Title("Output file (optional)").
			Description("Leave empty to print to stdout").
			Value(&answers.Output),
	))

	// Step 3: diagram options
	themeNames := render.ThemeNames()
	sort.Strings(themeNames)
	themeOptions := make([]huh.Option[string], 0, len(themeNames))
	for _, name := range themeNames {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}

	diagram := []huh.Field{
		huh.NewSelect[string]().
			Title("Diagram direction").
			Options(
				huh.NewOption("Right (horizontal)", "right"),
				huh.NewOption("Down (vertical)", "down"),
			).
			Value(&answers.Direction),
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&answers.Theme),
	}
	if detection.D2Available {
		diagram = append(diagram,
			huh.NewConfirm().
				Title("Render diagrams with d2 automatically?").
				Value(&answers.AutoRender),
			huh.NewSelect[string]().
				Title("Rendered image format").
				Options(
					huh.NewOption("SVG", "svg"),
					huh.NewOption("PNG", "png"),
				).
				Value(&answers.RenderFormat),
		)
	}
	groups = append(groups, huh.NewGroup(diagram...))

	form := huh.NewForm(groups...)
	if err := form.Run(); err != nil {
		return nil, err
	}

	return answers, nil
}
