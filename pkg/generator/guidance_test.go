package generator

import (
	"strings"
	"testing"

	"anvil/pkg/detector"
)

func TestGuidanceDocSections(t *testing.T) {
	doc := GuidanceDoc(fullResult())

	for _, want := range []string{
		"# Project Guide",
		"## Stack",
		"- Languages: TypeScript",
		"- Package manager: pnpm",
		"- Monorepo: yes",
		"## Commands",
		"- Install: `pnpm install` (from pnpm-lock.yaml)",
		"- Test: `npx vitest run` (from vitest.config.ts)",
		"- Build: `npx vite build` (from vite.config.ts)",
		"- Lint (ESLint): `npx eslint .` (from .eslintrc.json)",
		"## Project Layout",
		"- `src/`",
		"## CI",
		"- GitHub Actions (.github/workflows)",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("guidance doc missing %q\n%s", want, doc)
		}
	}

	// Fixed section order.
	stack := strings.Index(doc, "## Stack")
	commands := strings.Index(doc, "## Commands")
	layout := strings.Index(doc, "## Project Layout")
	ci := strings.Index(doc, "## CI")
	if !(stack < commands && commands < layout && layout < ci) {
		t.Errorf("sections out of order: %d %d %d %d", stack, commands, layout, ci)
	}
}

func TestGuidanceDocOmitsInstallWithoutPackageManager(t *testing.T) {
	res := detector.NewResultBuilder().Languages(detector.LangPython).Build()
	doc := GuidanceDoc(res)

	if strings.Contains(doc, "Install") {
		t.Errorf("install line must be omitted entirely, got:\n%s", doc)
	}
	if strings.Contains(doc, "null") || strings.Contains(doc, "<nil>") {
		t.Errorf("guidance doc must never print placeholders:\n%s", doc)
	}
}

func TestGuidanceDocOmitsEmptySections(t *testing.T) {
	res := detector.NewResultBuilder().Languages(detector.LangJavaScript).Build()
	doc := GuidanceDoc(res)

	if strings.Contains(doc, "## Project Layout") {
		t.Error("layout section requires detected directories")
	}
	if strings.Contains(doc, "## CI") {
		t.Error("CI section requires a detected provider")
	}
}

func TestSlashCommandContents(t *testing.T) {
	artifacts := SlashCommands(fullResult())
	if len(artifacts) != 2 {
		t.Fatalf("expected review and test prompts, got %v", paths(artifacts))
	}

	review := artifactByPath(t, artifacts, CommandsDir+"/review.md")
	if !strings.Contains(review.Content, "`npx eslint .`") {
		t.Errorf("review prompt should name the lint checks:\n%s", review.Content)
	}

	test := artifactByPath(t, artifacts, CommandsDir+"/test.md")
	if !strings.Contains(test.Content, "npx vitest run") {
		t.Errorf("test prompt should carry the detected command:\n%s", test.Content)
	}
}
