package detector

import (
	"strings"

	"anvil/pkg/storage"
)

// jsTestConfigs is Phase A of test-runner detection: framework config files
// in priority order, each with its hard-coded invocation.
var jsTestConfigs = []fileCheck[TestFramework]{
	{path: "vitest.config.ts", name: TestVitest, command: "npx vitest run"},
	{path: "vitest.config.js", name: TestVitest, command: "npx vitest run"},
	{path: "vitest.config.mts", name: TestVitest, command: "npx vitest run"},
	{path: "vitest.config.mjs", name: TestVitest, command: "npx vitest run"},
	{path: "jest.config.js", name: TestJest, command: "npx jest"},
	{path: "jest.config.ts", name: TestJest, command: "npx jest"},
	{path: "jest.config.mjs", name: TestJest, command: "npx jest"},
	{path: "jest.config.cjs", name: TestJest, command: "npx jest"},
	{path: "jest.config.json", name: TestJest, command: "npx jest"},
	{path: ".mocharc.yml", name: TestMocha, command: "npx mocha"},
	{path: ".mocharc.yaml", name: TestMocha, command: "npx mocha"},
	{path: ".mocharc.json", name: TestMocha, command: "npx mocha"},
	{path: ".mocharc.js", name: TestMocha, command: "npx mocha"},
	{path: ".mocharc.cjs", name: TestMocha, command: "npx mocha"},
}

// jsTestScriptHints is Phase B: substrings mined from the manifest's test
// script, in checklist order.
var jsTestScriptHints = []struct {
	substr string
	name   TestFramework
}{
	{"vitest", TestVitest},
	{"jest", TestJest},
	{"mocha", TestMocha},
}

// detectTestFramework resolves the test runner. JS evidence is consulted
// first (config files, then script mining), then the Python markers; the
// first hit wins since the category is single-valued.
func detectTestFramework(st storage.Storage) *TestFrameworkResult {
	if c, ok := firstExisting(st, jsTestConfigs); ok {
		return &TestFrameworkResult{
			Name:    c.name,
			Command: DetectedCommand{Command: c.command, Source: c.path},
		}
	}

	if pkg, _ := loadPackageJSON(st); pkg != nil {
		if script, ok := pkg.script("test"); ok {
			for _, hint := range jsTestScriptHints {
				if strings.Contains(script, hint.substr) {
					return &TestFrameworkResult{
						Name: hint.name,
						Command: DetectedCommand{
							Command: "npm run test",
							Source:  sectionSource("package.json", "scripts.test"),
						},
					}
				}
			}
		}
	}

	return detectPythonTestFramework(st)
}

// detectPythonTestFramework checks pytest markers in fixed order. There is no
// script-mining phase: Python has no universal manifest-script convention.
func detectPythonTestFramework(st storage.Storage) *TestFrameworkResult {
	pytest := func(source string) *TestFrameworkResult {
		return &TestFrameworkResult{
			Name:    TestPytest,
			Command: DetectedCommand{Command: "pytest", Source: source},
		}
	}

	if st.Exists("pytest.ini") {
		return pytest("pytest.ini")
	}
	if st.Exists("conftest.py") {
		return pytest("conftest.py")
	}
	if py, ok := loadPyProject(st); ok && py.hasTool("pytest.ini_options") {
		return pytest(sectionSource("pyproject.toml", "tool.pytest.ini_options"))
	}
	if iniHasSection(st, "setup.cfg", "tool:pytest") {
		return pytest(sectionSource("setup.cfg", "tool:pytest"))
	}
	return nil
}
