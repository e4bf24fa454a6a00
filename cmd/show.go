package cmd

import (
	"fmt"
	"os"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/blob"
	"github.com/ThomasCrouzet/zxtm-lookup/internal/ui"
	"github.com/ThomasCrouzet/zxtm-lookup/internal/zxtm"
)

var showCmd = &cobra.Command{
	Use:   "show <instance> <pools|tigs|vservers> [name]",
	Short: "List the entities of an instance or print one of them",
	Long: `Without a name, list every pool, traffic IP group or virtual server of
the instance. With a name, print its configuration as flattened
"key = value" lines.`,
	Args:      cobra.RangeArgs(2, 3),
	ValidArgs: []string{"pools", "tigs", "vservers"},
	RunE:      runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	snap, err := openSnapshot(cfg, newLogger(level.AllowWarn()))
	if err != nil {
		return err
	}

	inst, err := snap.Instance(args[0])
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Unknown instance", err.Error(), fmt.Sprintf("known instances: %v", snap.Names())))
		return err
	}

	blobs, err := entityBlobs(inst, args[1])
	if err != nil {
		return err
	}

	if len(args) == 2 {
		for _, name := range zxtm.SortedNames(blobs) {
			fmt.Println(name)
		}
		return nil
	}

	name := args[2]
	b, ok := blobs[name]
	if !ok {
		ui.NotFound(fmt.Sprintf("%s %s on %s", args[1], name, inst.Name()))
		return fmt.Errorf("no %s named %s", args[1], name)
	}
	if b.IsNull() {
		fmt.Println(ui.Dim("(no configuration)"))
		return nil
	}
	fmt.Println(b.Show(name + "."))
	return nil
}

// entityBlobs maps each entity of the requested collection to its document.
func entityBlobs(inst *zxtm.Instance, kind string) (map[string]blob.Blob, error) {
	out := make(map[string]blob.Blob)
	switch kind {
	case "pools":
		pools, err := inst.Pools()
		if err != nil {
			return nil, err
		}
		for name, p := range pools {
			out[name] = p.Blob
		}
	case "tigs":
		tigs, err := inst.TrafficGroups()
		if err != nil {
			return nil, err
		}
		for name, g := range tigs {
			out[name] = g.Blob
		}
	case "vservers":
		vservers, err := inst.VServers()
		if err != nil {
			return nil, err
		}
		for name, vs := range vservers {
			out[name] = vs.Blob
		}
	default:
		return nil, fmt.Errorf("unknown collection %q (want pools, tigs or vservers)", kind)
	}
	return out, nil
}
