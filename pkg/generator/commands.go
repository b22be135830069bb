package generator

import (
	"strings"

	"anvil/pkg/detector"
)

// SlashCommands produces the prompt files under the commands directory. The
// review prompt is always present; the test prompt only when a test runner
// was detected.
func SlashCommands(res detector.DetectionResult) []Artifact {
	artifacts := []Artifact{{
		RelativePath: CommandsDir + "/review.md",
		Content:      reviewPrompt(res),
	}}
	if res.TestFramework != nil {
		artifacts = append(artifacts, Artifact{
			RelativePath: CommandsDir + "/test.md",
			Content:      testPrompt(res),
		})
	}
	return artifacts
}

func reviewPrompt(res detector.DetectionResult) string {
	var b strings.Builder
	b.WriteString("Review the current changes for correctness, clarity, and consistency with the rest of the codebase.\n")
	if len(res.Linters) > 0 {
		b.WriteString("\nBefore finishing, make sure these checks pass:\n")
		for _, l := range res.Linters {
			b.WriteString("- `" + l.Command.Command + "`\n")
		}
	}
	return b.String()
}

func testPrompt(res detector.DetectionResult) string {
	var b strings.Builder
	b.WriteString("Run the test suite and fix any failures:\n\n")
	b.WriteString("```\n" + res.TestFramework.Command.Command + "\n```\n")
	b.WriteString("\nIf a failure is unrelated to the current changes, report it instead of fixing it silently.\n")
	return b.String()
}
