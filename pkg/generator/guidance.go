package generator

import (
	"strings"

	"anvil/pkg/detector"
)

// GuidanceDoc renders the project-guidance markdown. Section order is fixed:
// Stack, Commands, Project Layout, CI. Lines backed by no evidence are
// omitted entirely, never printed as placeholders.
func GuidanceDoc(res detector.DetectionResult) string {
	var b strings.Builder
	b.WriteString("# Project Guide\n")

	b.WriteString("\n## Stack\n\n")
	if len(res.Languages) > 0 {
		names := make([]string, 0, len(res.Languages))
		for _, l := range res.Languages {
			names = append(names, languageName(l))
		}
		b.WriteString("- Languages: " + strings.Join(names, ", ") + "\n")
	}
	if res.PackageManager != "" {
		b.WriteString("- Package manager: " + packageManagerName(res.PackageManager) + "\n")
	}
	if res.IsMonorepo {
		b.WriteString("- Monorepo: yes\n")
	}

	b.WriteString("\n## Commands\n\n")
	if res.InstallCommand != nil {
		writeCommand(&b, "Install", res.InstallCommand.Command, res.InstallCommand.Source)
	}
	if res.TestFramework != nil {
		writeCommand(&b, "Test", res.TestFramework.Command.Command, res.TestFramework.Command.Source)
	}
	if res.BuildSystem != nil {
		writeCommand(&b, "Build", res.BuildSystem.Command.Command, res.BuildSystem.Command.Source)
	}
	for _, l := range res.Linters {
		writeCommand(&b, "Lint ("+linterName(l.Name)+")", l.Command.Command, l.Command.Source)
	}

	if len(res.Directories) > 0 {
		b.WriteString("\n## Project Layout\n\n")
		for _, d := range res.Directories {
			b.WriteString("- `" + d + "/`\n")
		}
	}

	if res.CIProvider != "" {
		b.WriteString("\n## CI\n\n")
		b.WriteString("- " + ciProviderName(res.CIProvider) + "\n")
	}

	return b.String()
}

func writeCommand(b *strings.Builder, label, command, source string) {
	b.WriteString("- " + label + ": `" + command + "` (from " + source + ")\n")
}

func languageName(l detector.Language) string {
	switch l {
	case detector.LangTypeScript:
		return "TypeScript"
	case detector.LangJavaScript:
		return "JavaScript"
	case detector.LangPython:
		return "Python"
	}
	return string(l)
}

func packageManagerName(pm detector.PackageManager) string {
	switch pm {
	case detector.PMBun, detector.PMPnpm, detector.PMYarn, detector.PMNpm,
		detector.PMUv, detector.PMPip:
		return string(pm)
	case detector.PMPoetry:
		return "Poetry"
	case detector.PMPipenv:
		return "Pipenv"
	}
	return string(pm)
}

func linterName(l detector.Linter) string {
	switch l {
	case detector.LinterBiome:
		return "Biome"
	case detector.LinterESLint:
		return "ESLint"
	case detector.LinterPrettier:
		return "Prettier"
	case detector.LinterRuff:
		return "Ruff"
	case detector.LinterBlack:
		return "Black"
	case detector.LinterFlake8:
		return "flake8"
	case detector.LinterMypy:
		return "mypy"
	}
	return string(l)
}

func ciProviderName(ci detector.CIProvider) string {
	switch ci {
	case detector.CIGitHubActions:
		return "GitHub Actions (.github/workflows)"
	}
	return string(ci)
}
