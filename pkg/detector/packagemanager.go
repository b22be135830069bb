package detector

import "anvil/pkg/storage"

// nodeLockfiles is the Node-ecosystem precedence table. The first existing
// lockfile wins outright.
var nodeLockfiles = []fileCheck[PackageManager]{
	{path: "bun.lockb", name: PMBun},
	{path: "bun.lock", name: PMBun},
	{path: "pnpm-lock.yaml", name: PMPnpm},
	{path: "yarn.lock", name: PMYarn},
	{path: "package-lock.json", name: PMNpm},
}

// pythonLockfiles is the Python-ecosystem precedence table, evaluated only
// when the Node group produced no hit.
var pythonLockfiles = []fileCheck[PackageManager]{
	{path: "uv.lock", name: PMUv},
	{path: "poetry.lock", name: PMPoetry},
	{path: "Pipfile.lock", name: PMPipenv},
	{path: "Pipfile", name: PMPipenv},
}

// detectPackageManager resolves the package manager and the file that
// justified it. Empty result means no evidence.
func detectPackageManager(st storage.Storage) (PackageManager, string) {
	if c, ok := firstExisting(st, nodeLockfiles); ok {
		return c.name, c.path
	}

	if c, ok := firstExisting(st, pythonLockfiles); ok {
		return c.name, c.path
	}
	if py, ok := loadPyProject(st); ok {
		if py.hasTool("poetry") {
			return PMPoetry, sectionSource("pyproject.toml", "tool.poetry")
		}
		return PMPip, "pyproject.toml"
	}
	if st.Exists("requirements.txt") {
		return PMPip, "requirements.txt"
	}

	// Convention: a bare JS manifest with no lockfile is still an npm
	// project, npm being the Node.js default.
	if st.Exists("package.json") {
		return PMNpm, "package.json"
	}

	return "", ""
}

// installCommandFor derives the install command from an already-resolved
// package manager. Called by the orchestrator after the gather, never by a
// detector.
func installCommandFor(pm PackageManager, source string) *DetectedCommand {
	var cmd string
	switch pm {
	case PMBun:
		cmd = "bun install"
	case PMPnpm:
		cmd = "pnpm install"
	case PMYarn:
		cmd = "yarn install"
	case PMNpm:
		cmd = "npm install"
	case PMUv:
		cmd = "uv sync"
	case PMPoetry:
		cmd = "poetry install"
	case PMPipenv:
		cmd = "pipenv install"
	case PMPip:
		cmd = "pip install -r requirements.txt"
	default:
		return nil
	}
	return &DetectedCommand{Command: cmd, Source: source}
}

// runScriptCommand phrases "run the named manifest script" for a package
// manager, defaulting to npm when none was resolved.
func runScriptCommand(pm PackageManager, script string) string {
	switch pm {
	case PMBun:
		return "bun run " + script
	case PMPnpm:
		return "pnpm run " + script
	case PMYarn:
		return "yarn " + script
	default:
		return "npm run " + script
	}
}
