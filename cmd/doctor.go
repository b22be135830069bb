package cmd

import (
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"anvil/pkg/config"
	"anvil/pkg/detector"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [PROJECT_PATH]",
	Short: "Check that the detected tools are available on PATH",
	Long: `Runs detection and looks up each recommended command's binary on PATH.
Nothing is executed; this is a LookPath check only.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDoctor,
}

type doctorReport struct {
	Tool    string `json:"tool"`
	Command string `json:"command"`
	Found   bool   `json:"found"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	root, err := resolveProjectRoot(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	res := detector.DetectRoot(os.DirFS(root))

	var reports []doctorReport
	seen := map[string]bool{}
	check := func(dc *detector.DetectedCommand) {
		if dc == nil {
			return
		}
		tool := strings.Fields(dc.Command)[0]
		if seen[tool] || slices.Contains(cfg.SkipDoctorTools, tool) {
			return
		}
		seen[tool] = true
		_, lookErr := exec.LookPath(tool)
		reports = append(reports, doctorReport{Tool: tool, Command: dc.Command, Found: lookErr == nil})
	}

	check(res.InstallCommand)
	if res.TestFramework != nil {
		check(&res.TestFramework.Command)
	}
	if res.BuildSystem != nil {
		check(&res.BuildSystem.Command)
	}
	for i := range res.Linters {
		check(&res.Linters[i].Command)
	}

	if jsonOutput {
		printJSON(reports)
		return nil
	}

	for _, r := range reports {
		if r.Found {
			log.Info("found", "tool", r.Tool)
		} else {
			log.Warn("missing", "tool", r.Tool, "needed by", r.Command)
		}
	}
	if len(reports) == 0 {
		log.Info("nothing to check: no tools were detected")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
