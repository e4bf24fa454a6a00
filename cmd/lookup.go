package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/config"
	"github.com/ThomasCrouzet/zxtm-lookup/internal/model"
	"github.com/ThomasCrouzet/zxtm-lookup/internal/render"
	"github.com/ThomasCrouzet/zxtm-lookup/internal/ui"
	"github.com/ThomasCrouzet/zxtm-lookup/internal/zxtm"
)

var (
	outputFile   string
	formatName   string
	allInstances bool
	autoRender   bool
	renderFormat string
	themeName    string
	direction    string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <node>",
	Short: "Show which pools, vservers and traffic groups reach a node",
	Long: `Look a backend node up by host (the part of an endpoint before ':').

By default the first instance that lists the node answers. Use --all to
report every instance.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the result to a file instead of stdout")
	lookupCmd.Flags().StringVarP(&formatName, "format", "f", "", "output format: "+strings.Join(render.Formats(), ", "))
	lookupCmd.Flags().BoolVarP(&allInstances, "all", "a", false, "report matches from every instance")
	lookupCmd.Flags().BoolVar(&autoRender, "render", false, "render a d2 output file to SVG/PNG (requires d2)")
	lookupCmd.Flags().StringVar(&renderFormat, "render-format", "", "image format for --render: svg, png (default: svg)")
	lookupCmd.Flags().StringVar(&themeName, "theme", "", "diagram theme: default, dark, monochrome")
	lookupCmd.Flags().StringVar(&direction, "direction", "", "diagram direction: right, down")
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg)

	logger := newLogger(level.AllowWarn())
	snap, err := openSnapshot(cfg, logger)
	if err != nil {
		return err
	}

	nodeID := args[0]
	level.Debug(logger).Log("msg", "looking up node", "node", nodeID, "instances", len(snap.Names()))

	reports, err := lookup(zxtm.NewLocator(snap), nodeID, allInstances)
	if errors.Is(err, zxtm.ErrNodeNotFound) {
		ui.NotFound(fmt.Sprintf("no instance lists node %s", nodeID))
		return err
	}
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Lookup failed", err.Error(), "run 'zxtm-lookup validate' to inspect the snapshot"))
		return err
	}

	out, err := render.Render(cfg.Format, reports, cfg)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to render", err.Error(), ""))
		return err
	}

	if cfg.Output == "" {
		fmt.Print(out)
		return nil
	}

	if err := os.WriteFile(cfg.Output, []byte(out), 0644); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to write output", err.Error(), ""))
		return err
	}
	ui.Success(fmt.Sprintf("Wrote %s (%d instances)", cfg.Output, len(reports)))

	if cfg.Render.AutoRender && cfg.Format == "d2" {
		if err := autoRenderD2(cfg.Output, cfg.Render.Format); err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError("Auto-render failed", err.Error(), "install d2: https://d2lang.com/tour/install"))
		}
	}

	return nil
}

// lookup turns locator hits into reports, either the first hit or all of them.
func lookup(l *zxtm.Locator, nodeID string, all bool) ([]*model.Report, error) {
	if !all {
		inst, node, err := l.Locate(nodeID)
		if err != nil {
			return nil, err
		}
		return []*model.Report{render.BuildReport(inst.Name(), inst.URL(), node)}, nil
	}

	matches, err := l.FindAll(nodeID)
	if err != nil {
		return nil, err
	}
	reports := make([]*model.Report, 0, len(matches))
	for _, m := range matches {
		reports = append(reports, render.BuildReport(m.Instance.Name(), m.Instance.URL(), m.Node))
	}
	return reports, nil
}

func applyFlagOverrides(cfg *config.Config) {
	if outputFile != "" {
		cfg.Output = outputFile
	}
	if formatName != "" {
		cfg.Format = formatName
	}
	if autoRender {
		cfg.Render.AutoRender = true
	}
	if renderFormat != "" {
		cfg.Render.Format = renderFormat
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if direction != "" {
		cfg.Direction = direction
	}
}

func autoRenderD2(d2File, format string) error {
	if format == "" {
		format = "svg"
	}

	// Check if d2 is available
	d2Path, err := findExecutable(d2Binary)
	if err != nil {
		return fmt.Errorf("d2 not found in PATH, install it from https://d2lang.com/tour/install")
	}

	outFile := strings.TrimSuffix(d2File, ".d2") + "." + format

	cmd := execCommand(d2Path, d2File, outFile)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("d2 render failed: %w", err)
	}

	ui.Success(fmt.Sprintf("Rendered %s", outFile))
	return nil
}
