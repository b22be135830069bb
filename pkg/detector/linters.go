package detector

import "anvil/pkg/storage"

// biomeConfigs short-circuit the Node pipeline: biome subsumes both a
// separate linter and a separate formatter.
var biomeConfigs = []fileCheck[Linter]{
	{path: "biome.json", name: LinterBiome, command: "npx biome check ."},
	{path: "biome.jsonc", name: LinterBiome, command: "npx biome check ."},
}

var eslintConfigs = []fileCheck[Linter]{
	{path: "eslint.config.js", name: LinterESLint, command: "npx eslint ."},
	{path: "eslint.config.mjs", name: LinterESLint, command: "npx eslint ."},
	{path: "eslint.config.cjs", name: LinterESLint, command: "npx eslint ."},
	{path: ".eslintrc.json", name: LinterESLint, command: "npx eslint ."},
	{path: ".eslintrc.js", name: LinterESLint, command: "npx eslint ."},
	{path: ".eslintrc.cjs", name: LinterESLint, command: "npx eslint ."},
	{path: ".eslintrc.yml", name: LinterESLint, command: "npx eslint ."},
	{path: ".eslintrc.yaml", name: LinterESLint, command: "npx eslint ."},
	{path: ".eslintrc", name: LinterESLint, command: "npx eslint ."},
}

var prettierConfigs = []fileCheck[Linter]{
	{path: ".prettierrc", name: LinterPrettier, command: "npx prettier --check ."},
	{path: ".prettierrc.json", name: LinterPrettier, command: "npx prettier --check ."},
	{path: ".prettierrc.yml", name: LinterPrettier, command: "npx prettier --check ."},
	{path: ".prettierrc.yaml", name: LinterPrettier, command: "npx prettier --check ."},
	{path: ".prettierrc.js", name: LinterPrettier, command: "npx prettier --check ."},
	{path: "prettier.config.js", name: LinterPrettier, command: "npx prettier --check ."},
	{path: "prettier.config.mjs", name: LinterPrettier, command: "npx prettier --check ."},
}

var ruffConfigs = []fileCheck[Linter]{
	{path: "ruff.toml", name: LinterRuff, command: "ruff check ."},
	{path: ".ruff.toml", name: LinterRuff, command: "ruff check ."},
}

// detectLinters concatenates the two independent sub-pipelines, Node results
// first. Every signal is checked in a fixed sequence; directory iteration
// order never influences the output.
func detectLinters(st storage.Storage) []LinterResult {
	return append(detectNodeLinters(st), detectPythonLinters(st)...)
}

func detectNodeLinters(st storage.Storage) []LinterResult {
	if c, ok := firstExisting(st, biomeConfigs); ok {
		return []LinterResult{{
			Name:    c.name,
			Command: DetectedCommand{Command: c.command, Source: c.path},
		}}
	}

	var results []LinterResult
	if c, ok := firstExisting(st, eslintConfigs); ok {
		results = append(results, LinterResult{
			Name:    c.name,
			Command: DetectedCommand{Command: c.command, Source: c.path},
		})
	}
	if c, ok := firstExisting(st, prettierConfigs); ok {
		results = append(results, LinterResult{
			Name:    c.name,
			Command: DetectedCommand{Command: c.command, Source: c.path},
		})
	}
	return results
}

// detectPythonLinters resolves up to four coexisting findings, each with a
// dedicated-file tier and a shared-descriptor-section tier.
func detectPythonLinters(st storage.Storage) []LinterResult {
	var results []LinterResult
	py, _ := loadPyProject(st)

	if c, ok := firstExisting(st, ruffConfigs); ok {
		results = append(results, LinterResult{
			Name:    LinterRuff,
			Command: DetectedCommand{Command: c.command, Source: c.path},
		})
	} else if py.hasTool("ruff") {
		results = append(results, LinterResult{
			Name:    LinterRuff,
			Command: DetectedCommand{Command: "ruff check .", Source: sectionSource("pyproject.toml", "tool.ruff")},
		})
	}

	// black reads configuration only from the project descriptor.
	if py.hasTool("black") {
		results = append(results, LinterResult{
			Name:    LinterBlack,
			Command: DetectedCommand{Command: "black --check .", Source: sectionSource("pyproject.toml", "tool.black")},
		})
	}

	if st.Exists(".flake8") {
		results = append(results, LinterResult{
			Name:    LinterFlake8,
			Command: DetectedCommand{Command: "flake8", Source: ".flake8"},
		})
	} else if iniHasSection(st, "setup.cfg", "flake8") {
		results = append(results, LinterResult{
			Name:    LinterFlake8,
			Command: DetectedCommand{Command: "flake8", Source: sectionSource("setup.cfg", "flake8")},
		})
	}

	if py.hasTool("mypy") {
		results = append(results, LinterResult{
			Name:    LinterMypy,
			Command: DetectedCommand{Command: "mypy .", Source: sectionSource("pyproject.toml", "tool.mypy")},
		})
	} else if st.Exists("mypy.ini") {
		results = append(results, LinterResult{
			Name:    LinterMypy,
			Command: DetectedCommand{Command: "mypy .", Source: "mypy.ini"},
		})
	}

	return results
}
