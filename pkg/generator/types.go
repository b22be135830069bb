package generator

// Artifact is one generated output file: a path relative to the project root
// plus its full content. Artifacts are handed to the writer as-is.
type Artifact struct {
	RelativePath string
	Content      string
}

// Options controls artifact placement. Local mode routes the server manifest
// and the hooks configuration into one personal-settings file instead of
// their canonical project paths.
type Options struct {
	Local bool
}

// Output paths. The guidance document and the slash-command directory are
// fixed; the manifest and hooks move between canonical and local placement.
const (
	GuidancePath      = "CLAUDE.md"
	ManifestPath      = ".mcp.json"
	SettingsPath      = ".claude/settings.json"
	LocalSettingsPath = ".claude/settings.local.json"
	CommandsDir       = ".claude/commands"
)
