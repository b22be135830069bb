package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"anvil/cmd/ui/detection"
	"anvil/pkg/config"
	"anvil/pkg/generator"
	"anvil/pkg/writer"
)

var (
	localMode bool
	force     bool
	dryRun    bool
)

var initCmd = &cobra.Command{
	Use:   "init [PROJECT_PATH]",
	Short: "Detect the project's stack and generate its configuration",
	Long: `Runs detection, shows the result, and writes the generated artifacts:
the project guidance document, the server manifest, tool hooks, and slash
command prompts. Existing files are left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, err := resolveProjectRoot(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.LocalSettings {
		localMode = true
	}

	res := detectWithSpinner(root)

	interactive := !jsonOutput && !skipInteractive && isTerminal()
	if interactive {
		confirmed, err := detection.ShowDetectionResults(res)
		if err != nil {
			return fmt.Errorf("failed to show detection results: %w", err)
		}
		if !confirmed {
			fmt.Println("Skipping generation.")
			return nil
		}
	}

	artifacts := generator.Generate(res, generator.Options{Local: localMode})

	reports, err := writer.Write(root, artifacts, force, dryRun)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(reports)
		return nil
	}

	for _, r := range reports {
		switch r.Status {
		case writer.StatusWritten:
			log.Info("wrote", "path", r.Path)
		case writer.StatusSkipped:
			log.Warn("skipped (exists, use --force)", "path", r.Path)
		case writer.StatusPlanned:
			log.Info("would write", "path", r.Path)
		}
	}

	if !dryRun {
		fmt.Printf("\n%s\n", endingMsgStyle.Render("Configuration forged. Run 'anvil doctor' to check your tools."))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&localMode, "local", false, "Write manifest and hooks into .claude/settings.local.json")
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	initCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be written without writing")
}
