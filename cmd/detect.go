package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"anvil/cmd/ui/detection"
	"anvil/cmd/ui/spinner"
	"anvil/pkg/detector"
)

var detectCmd = &cobra.Command{
	Use:   "detect [PROJECT_PATH]",
	Short: "Detect the project's stack without generating anything",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	root, err := resolveProjectRoot(args)
	if err != nil {
		return err
	}

	res := detectWithSpinner(root)

	if jsonOutput || skipInteractive || !isTerminal() {
		printJSON(res)
		return nil
	}

	fmt.Printf("%s\n", logoStyle.Render(Logo))
	fmt.Println(detection.RenderResult(res))
	return nil
}

// detectWithSpinner runs detection, showing a spinner when on a terminal.
func detectWithSpinner(root string) detector.DetectionResult {
	if jsonOutput || skipInteractive || !isTerminal() {
		return detector.DetectRoot(os.DirFS(root))
	}

	spinnerProgram := tea.NewProgram(spinner.InitialModel("Inspecting project files..."))
	go func() {
		if _, err := spinnerProgram.Run(); err != nil && err.Error() != "program was killed" {
			fmt.Fprintf(os.Stderr, "Error running spinner: %v\n", err)
		}
	}()

	res := detector.DetectRoot(os.DirFS(root))
	spinnerProgram.Quit()
	return res
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
