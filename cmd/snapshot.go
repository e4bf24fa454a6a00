package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-kit/log"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/config"
	"github.com/ThomasCrouzet/zxtm-lookup/internal/ui"
	"github.com/ThomasCrouzet/zxtm-lookup/internal/zxtm"
)

// loadConfig reads the config, printing a styled error on failure.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'zxtm-lookup init' to create a config file"))
		return nil, err
	}
	return cfg, nil
}

// openSnapshot reads and validates the configured snapshot and warns when
// its version differs from the one the config expects.
func openSnapshot(cfg *config.Config, logger log.Logger) (*zxtm.Snapshot, error) {
	data, err := os.ReadFile(cfg.Snapshot)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to read snapshot", err.Error(), "set 'snapshot' in zxtm-lookup.yml or pass --snapshot"))
		return nil, err
	}

	snap, err := zxtm.Load(data, zxtm.WithLogger(logger))
	if err != nil {
		hint := ""
		if errors.Is(err, zxtm.ErrMalformedSnapshot) {
			hint = "the file must hold a version string and a zxtms list naming every instance"
		}
		fmt.Fprint(os.Stderr, ui.FormatError("Invalid snapshot "+cfg.Snapshot, err.Error(), hint))
		return nil, err
	}

	checkVersion(snap, cfg.ExpectedVersion)
	return snap, nil
}

func checkVersion(snap *zxtm.Snapshot, expected string) {
	if expected == "" || snap.Version() == expected {
		return
	}
	ui.Warn(fmt.Sprintf("Version mismatch! snapshot is %s, expected %s", snap.Version(), expected))
}
