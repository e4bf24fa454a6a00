package cmd

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/ui"
	"github.com/ThomasCrouzet/zxtm-lookup/internal/zxtm"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a snapshot and list everything it references but lacks",
	Long: `Load the snapshot, index every instance and print per-instance counts.
Tolerated problems (unresolved pools and traffic groups, duplicate names,
unreadable node tables) are listed as warnings. The command fails only
when an instance cannot be indexed at all.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Diagnostics are listed below, so the logger only needs errors.
	snap, err := openSnapshot(cfg, newLogger(level.AllowError()))
	if err != nil {
		return err
	}

	fmt.Println(ui.Bold(fmt.Sprintf("Validating %s (version %s)...", cfg.Snapshot, snap.Version())))

	passed := 0
	failed := 0
	warnings := 0

	for inst, err := range snap.Instances() {
		if err != nil {
			ui.ValidationErr("snapshot", err.Error(), "")
			failed++
			break
		}

		if err := summarize(inst); err != nil {
			ui.ValidationErr(inst.Name(), err.Error(), "")
			failed++
			continue
		}
		passed++

		for _, d := range inst.Diagnostics() {
			ui.ValidationWarn(inst.Name(), d.Summary())
			warnings++
		}
	}

	fmt.Println()
	if failed == 0 {
		ui.Success(fmt.Sprintf("%d instances indexed, %d warnings", passed, warnings))
	} else {
		fmt.Printf("%d instances indexed, %d errors, %d warnings\n", passed, failed, warnings)
	}

	if failed > 0 {
		return fmt.Errorf("%d instances could not be indexed", failed)
	}
	return nil
}

func summarize(inst *zxtm.Instance) error {
	pools, err := inst.Pools()
	if err != nil {
		return err
	}
	tigs, err := inst.TrafficGroups()
	if err != nil {
		return err
	}
	vservers, err := inst.VServers()
	if err != nil {
		return err
	}
	nodes, err := inst.Nodes()
	if err != nil {
		return err
	}
	ui.InstanceSummary(inst.Name(), inst.URL(), len(pools), len(tigs), len(vservers), nodes.Len())
	return nil
}
