// Package writer persists generated artifacts to disk. It owns the overwrite
// workflow (existence checks, --force, --dry-run reporting); the content it
// writes is decided entirely by the generation layer.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"anvil/pkg/config"
	"anvil/pkg/generator"
)

type Status string

const (
	StatusWritten Status = "written"
	StatusSkipped Status = "skipped" // exists and --force not given
	StatusPlanned Status = "planned" // dry run
)

// Report describes what happened (or would happen) to one artifact.
type Report struct {
	Path   string
	Status Status
}

// Write persists artifacts relative to root. Existing files are skipped
// unless force is set; dryRun reports without touching the disk.
func Write(root string, artifacts []generator.Artifact, force, dryRun bool) ([]Report, error) {
	reports := make([]Report, 0, len(artifacts))

	for _, a := range artifacts {
		target := filepath.Join(root, filepath.FromSlash(a.RelativePath))

		_, statErr := os.Stat(target)
		exists := statErr == nil

		if dryRun {
			status := StatusPlanned
			if exists && !force {
				status = StatusSkipped
			}
			reports = append(reports, Report{Path: a.RelativePath, Status: status})
			continue
		}

		if exists && !force {
			reports = append(reports, Report{Path: a.RelativePath, Status: StatusSkipped})
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), config.PermDirectory); err != nil {
			return reports, fmt.Errorf("failed to create directory for %s: %w", a.RelativePath, err)
		}
		if err := os.WriteFile(target, []byte(a.Content), config.PermConfigFile); err != nil {
			return reports, fmt.Errorf("failed to write %s: %w", a.RelativePath, err)
		}
		reports = append(reports, Report{Path: a.RelativePath, Status: StatusWritten})
	}

	return reports, nil
}
