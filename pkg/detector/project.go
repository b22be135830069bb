package detector

import (
	"gopkg.in/yaml.v3"

	"anvil/pkg/storage"
)

// monorepoMarkers are tool config files whose presence alone marks a
// workspace-style repository. pnpm-workspace.yaml is handled separately: it
// only counts when it parses and declares packages.
var monorepoMarkers = []string{
	"lerna.json",
	"turbo.json",
	"nx.json",
}

// detectMonorepo reports workspace-style repositories. A "workspaces" key in
// the JS manifest is sufficient on its own, regardless of marker files.
func detectMonorepo(st storage.Storage) bool {
	if pkg, _ := loadPackageJSON(st); pkg != nil {
		if len(pkg.Workspaces) > 0 && string(pkg.Workspaces) != "null" {
			return true
		}
	}

	if pnpmDeclaresPackages(st) {
		return true
	}
	for _, marker := range monorepoMarkers {
		if st.Exists(marker) {
			return true
		}
	}
	return false
}

// pnpmDeclaresPackages reports whether pnpm-workspace.yaml parses and
// declares at least one package glob. Malformed YAML is evidence-absent.
func pnpmDeclaresPackages(st storage.Storage) bool {
	content, ok := st.ReadTextFile("pnpm-workspace.yaml")
	if !ok {
		return false
	}
	var ws struct {
		Packages []string `yaml:"packages"`
	}
	if err := yaml.Unmarshal([]byte(content), &ws); err != nil {
		return false
	}
	return len(ws.Packages) > 0
}

// directoryCandidates is the fixed probe list for notable project
// directories. Probing each candidate keeps the output order deterministic
// and independent of filesystem iteration order.
var directoryCandidates = []string{
	"src",
	"lib",
	"app",
	"tests",
	"test",
	"docs",
	"scripts",
	"packages",
	"apps",
	"examples",
}

func detectDirectories(st storage.Storage) []string {
	var dirs []string
	for _, d := range directoryCandidates {
		if st.DirExists(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
