package detector

import (
	"strings"

	"anvil/pkg/storage"
)

// jsBuildConfigs is Phase A of build-tool detection: bundler config files in
// priority order.
var jsBuildConfigs = []fileCheck[BuildSystem]{
	{path: "vite.config.ts", name: BuildVite, command: "npx vite build"},
	{path: "vite.config.js", name: BuildVite, command: "npx vite build"},
	{path: "vite.config.mts", name: BuildVite, command: "npx vite build"},
	{path: "vite.config.mjs", name: BuildVite, command: "npx vite build"},
	{path: "webpack.config.js", name: BuildWebpack, command: "npx webpack"},
	{path: "webpack.config.ts", name: BuildWebpack, command: "npx webpack"},
	{path: "webpack.config.cjs", name: BuildWebpack, command: "npx webpack"},
	{path: "webpack.config.mjs", name: BuildWebpack, command: "npx webpack"},
	{path: "rollup.config.js", name: BuildRollup, command: "npx rollup -c"},
	{path: "rollup.config.ts", name: BuildRollup, command: "npx rollup -c"},
	{path: "rollup.config.mjs", name: BuildRollup, command: "npx rollup -c"},
}

// jsBuildScriptHints is Phase B: substrings mined from the manifest's build
// script, in checklist order.
var jsBuildScriptHints = []struct {
	substr string
	name   BuildSystem
}{
	{"vite", BuildVite},
	{"webpack", BuildWebpack},
	{"esbuild", BuildEsbuild},
	{"rollup", BuildRollup},
	{"tsc", BuildTsc},
}

// detectBuildSystem resolves the build tool: bundler config files first,
// then script mining, then the tsc-without-bundler fallback.
func detectBuildSystem(st storage.Storage) *BuildSystemResult {
	if c, ok := firstExisting(st, jsBuildConfigs); ok {
		return &BuildSystemResult{
			Name:    c.name,
			Command: DetectedCommand{Command: c.command, Source: c.path},
		}
	}

	if pkg, _ := loadPackageJSON(st); pkg != nil {
		if script, ok := pkg.script("build"); ok {
			for _, hint := range jsBuildScriptHints {
				if strings.Contains(script, hint.substr) {
					return &BuildSystemResult{
						Name: hint.name,
						Command: DetectedCommand{
							Command: "npm run build",
							Source:  sectionSource("package.json", "scripts.build"),
						},
					}
				}
			}
		}
	}

	// A type config with no bundler still implies a compile step.
	if st.Exists("tsconfig.json") {
		return &BuildSystemResult{
			Name:    BuildTsc,
			Command: DetectedCommand{Command: "npx tsc", Source: "tsconfig.json"},
		}
	}

	return nil
}
