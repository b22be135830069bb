package detector

// Language is a detected project language.
type Language string

const (
	LangTypeScript Language = "typescript"
	LangJavaScript Language = "javascript"
	LangPython     Language = "python"
)

// PackageManager is a detected dependency manager.
type PackageManager string

const (
	PMBun    PackageManager = "bun"
	PMPnpm   PackageManager = "pnpm"
	PMYarn   PackageManager = "yarn"
	PMNpm    PackageManager = "npm"
	PMUv     PackageManager = "uv"
	PMPoetry PackageManager = "poetry"
	PMPipenv PackageManager = "pipenv"
	PMPip    PackageManager = "pip"
)

// TestFramework is a detected test runner.
type TestFramework string

const (
	TestVitest TestFramework = "vitest"
	TestJest   TestFramework = "jest"
	TestMocha  TestFramework = "mocha"
	TestPytest TestFramework = "pytest"
)

// BuildSystem is a detected build tool.
type BuildSystem string

const (
	BuildVite    BuildSystem = "vite"
	BuildWebpack BuildSystem = "webpack"
	BuildEsbuild BuildSystem = "esbuild"
	BuildRollup  BuildSystem = "rollup"
	BuildTsc     BuildSystem = "tsc"
)

// CIProvider is a detected continuous-integration provider.
type CIProvider string

const CIGitHubActions CIProvider = "github-actions"

// Linter is a detected linter or formatter.
type Linter string

const (
	LinterBiome    Linter = "biome"
	LinterESLint   Linter = "eslint"
	LinterPrettier Linter = "prettier"
	LinterRuff     Linter = "ruff"
	LinterBlack    Linter = "black"
	LinterFlake8   Linter = "flake8"
	LinterMypy     Linter = "mypy"
)

// DetectedCommand pairs a recommended shell invocation with the file (or
// "file [section]" locator) that justified it. Source strings are part of the
// observable contract; tests assert on them exactly.
type DetectedCommand struct {
	Command string `json:"command"`
	Source  string `json:"source"`
}

// TestFrameworkResult is a resolved test-runner detection.
type TestFrameworkResult struct {
	Name    TestFramework   `json:"name"`
	Command DetectedCommand `json:"command"`
}

// BuildSystemResult is a resolved build-tool detection.
type BuildSystemResult struct {
	Name    BuildSystem     `json:"name"`
	Command DetectedCommand `json:"command"`
}

// LinterResult is one resolved linter/formatter detection.
type LinterResult struct {
	Name    Linter          `json:"name"`
	Command DetectedCommand `json:"command"`
}

// DetectionResult is the aggregate produced by Detect. Empty slices and nil
// pointers mean "no evidence", never "unknown error". The aggregate is
// assembled once and never mutated afterwards; tests build synthetic results
// through ResultBuilder.
type DetectionResult struct {
	Languages      []Language           `json:"languages"`
	PackageManager PackageManager       `json:"package_manager,omitempty"`
	TestFramework  *TestFrameworkResult `json:"test_framework,omitempty"`
	BuildSystem    *BuildSystemResult   `json:"build_system,omitempty"`
	CIProvider     CIProvider           `json:"ci_provider,omitempty"`
	Linters        []LinterResult       `json:"linters,omitempty"`
	IsMonorepo     bool                 `json:"is_monorepo"`
	InstallCommand *DetectedCommand     `json:"install_command,omitempty"`
	Directories    []string             `json:"directories,omitempty"`
}

// ResultBuilder constructs synthetic DetectionResults for fixtures and
// collaborators without mutating an assembled aggregate.
type ResultBuilder struct {
	r DetectionResult
}

func NewResultBuilder() *ResultBuilder {
	return &ResultBuilder{}
}

func (b *ResultBuilder) Languages(langs ...Language) *ResultBuilder {
	b.r.Languages = langs
	return b
}

func (b *ResultBuilder) PackageManager(pm PackageManager) *ResultBuilder {
	b.r.PackageManager = pm
	return b
}

func (b *ResultBuilder) TestFramework(name TestFramework, cmd DetectedCommand) *ResultBuilder {
	b.r.TestFramework = &TestFrameworkResult{Name: name, Command: cmd}
	return b
}

func (b *ResultBuilder) BuildSystem(name BuildSystem, cmd DetectedCommand) *ResultBuilder {
	b.r.BuildSystem = &BuildSystemResult{Name: name, Command: cmd}
	return b
}

func (b *ResultBuilder) CIProvider(ci CIProvider) *ResultBuilder {
	b.r.CIProvider = ci
	return b
}

func (b *ResultBuilder) Linter(name Linter, cmd DetectedCommand) *ResultBuilder {
	b.r.Linters = append(b.r.Linters, LinterResult{Name: name, Command: cmd})
	return b
}

func (b *ResultBuilder) Monorepo(v bool) *ResultBuilder {
	b.r.IsMonorepo = v
	return b
}

func (b *ResultBuilder) InstallCommand(cmd DetectedCommand) *ResultBuilder {
	b.r.InstallCommand = &cmd
	return b
}

func (b *ResultBuilder) Directories(dirs ...string) *ResultBuilder {
	b.r.Directories = dirs
	return b
}

func (b *ResultBuilder) Build() DetectionResult {
	return b.r
}
