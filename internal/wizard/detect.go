package wizard

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/ThomasCrouzet/zxtm-lookup/internal/zxtm"
)

// DetectionResult holds what was auto-detected on the system.
type DetectionResult struct {
	D2Available bool
	Snapshots   []string // JSON files that load as snapshots
	Version     string   // version of the first snapshot found
}

// Detector abstracts filesystem and path lookups for testing.
type Detector interface {
	LookPath(name string) (string, error)
	ReadFile(path string) ([]byte, error)
	Glob(pattern string) ([]string, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) LookPath(name string) (string, error) { return exec.LookPath(name) }
func (OSDetector) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }
func (OSDetector) Glob(pattern string) ([]string, error) { return filepath.Glob(pattern) }

var snapshotPatterns = []string{
	"*.json",
	"snapshots/*.json",
}

// Detect scans the working directory for snapshot files and the d2 binary.
func Detect(d Detector) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	if _, err := d.LookPath("d2"); err == nil {
		result.D2Available = true
	}

	seen := make(map[string]bool)
	for _, pattern := range snapshotPatterns {
		matches, err := d.Glob(pattern)
		if err != nil {
			continue
		}
		sort.Strings(matches)
		for _, path := range matches {
			if seen[path] {
				continue
			}
			seen[path] = true

			data, err := d.ReadFile(path)
			if err != nil {
				continue
			}
			snap, err := zxtm.Load(data)
			if err != nil {
				continue
			}
			if result.Version == "" {
				result.Version = snap.Version()
			}
			result.Snapshots = append(result.Snapshots, path)
		}
	}

	return result
}
