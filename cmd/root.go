package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const Version = "0.3.0"

var (
	jsonOutput      bool
	skipInteractive bool

	logoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C42")).Bold(true)
	endingMsgStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
)

const Logo = `
 █████╗ ███╗   ██╗██╗   ██╗██╗██╗
██╔══██╗████╗  ██║██║   ██║██║██║
███████║██╔██╗ ██║██║   ██║██║██║
██╔══██║██║╚██╗██║╚██╗ ██╔╝██║██║
██║  ██║██║ ╚████║ ╚████╔╝ ██║███████╗
╚═╝  ╚═╝╚═╝  ╚═══╝  ╚═══╝  ╚═╝╚══════╝
`

var rootCmd = &cobra.Command{
	Use:   "anvil",
	Short: "Detect a project's stack and forge its agent configuration",
	Long: Logo + `
Anvil inspects the files already in a project — manifests, lockfiles, tool
configs — to work out its languages, package manager, test runner, build tool,
CI provider, and linters, then generates matching configuration artifacts.

It never runs project commands and never talks to the network; every detection
is backed by a file you can point at.`,
	Version: Version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveProjectRoot validates the optional positional path argument.
func resolveProjectRoot(args []string) (string, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("cannot access path %q: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path %q is not a directory", root)
	}
	return root, nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func isTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return os.Getenv("TERM") != ""
}

func init() {
	rootCmd.SetVersionTemplate("anvil version {{.Version}}\n")

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON (disables interactive mode)")
	rootCmd.PersistentFlags().BoolVar(&skipInteractive, "no-interactive", false, "Skip interactive prompts (for CI/automation)")
}
