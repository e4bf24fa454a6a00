package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/config"
	"github.com/ThomasCrouzet/zxtm-lookup/internal/ui"
	"github.com/ThomasCrouzet/zxtm-lookup/internal/wizard"
)

const defaultConfigFile = "zxtm-lookup.yml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a zxtm-lookup.yml config file interactively",
	Long: `Look for snapshot files in the working directory and the d2 binary,
then generate a config file through an interactive wizard.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(defaultConfigFile); err == nil {
		fmt.Printf("%s already exists. Overwrite? [y/N] ", defaultConfigFile)
		if !confirmed(os.Stdin) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	fmt.Println(ui.Bold("Looking for snapshots..."))
	detection := wizard.Detect(nil)
	printDetection(detection)

	answers, err := wizard.Run(detection)
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	content, err := wizard.GenerateConfig(*answers)
	if err != nil {
		return fmt.Errorf("generating config: %w", err)
	}

	if err := os.WriteFile(defaultConfigFile, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	ui.Success(fmt.Sprintf("Created %s for %s", defaultConfigFile, answers.Snapshot))
	fmt.Println()
	fmt.Printf("Next step: %s\n", ui.Bold("zxtm-lookup validate"))
	fmt.Printf("           %s\n", ui.Hint("then zxtm-lookup lookup <node>"))

	return nil
}

// confirmed reads one line and accepts "y" or "yes" in any case.
func confirmed(r io.Reader) bool {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func printDetection(d wizard.DetectionResult) {
	if len(d.Snapshots) == 0 {
		ui.ValidationWarn("snapshot", "no snapshot found, you will have to type its path")
	}
	for _, path := range d.Snapshots {
		ui.ValidationOK("snapshot", path)
	}
	if d.Version != "" && d.Version != config.DefaultExpectedVersion {
		ui.ValidationWarn("version", fmt.Sprintf("snapshot reports %s, this tool expects %s", d.Version, config.DefaultExpectedVersion))
	}
	if d.D2Available {
		ui.ValidationOK("d2", "found, diagrams can be rendered")
	} else {
		ui.ValidationWarn("d2", "not in PATH, --render will not work")
	}
}
