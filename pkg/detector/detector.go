// Package detector infers a project's stack (languages, package manager,
// test runner, build tool, CI provider, linters) purely from files already on
// disk. Every detector is a pure function over the storage abstraction and is
// total: absent or malformed evidence yields a zero value, never an error.
package detector

import (
	"io/fs"
	"strings"
	"sync"

	"anvil/pkg/storage"
)

// Detect runs every category detector concurrently against the storage and
// assembles the aggregate once all have completed. Detectors share no state
// and never observe each other's output; the two derived values (install
// command, script-command phrasing) are computed strictly after the gather.
func Detect(st storage.Storage) DetectionResult {
	var (
		langs    []Language
		pm       PackageManager
		pmSource string
		tf       *TestFrameworkResult
		bs       *BuildSystemResult
		ci       CIProvider
		linters  []LinterResult
		monorepo bool
		dirs     []string
	)

	var wg sync.WaitGroup
	run := func(f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}

	run(func() { langs = detectLanguages(st) })
	run(func() { pm, pmSource = detectPackageManager(st) })
	run(func() { tf = detectTestFramework(st) })
	run(func() { bs = detectBuildSystem(st) })
	run(func() { ci = detectCIProvider(st) })
	run(func() { linters = detectLinters(st) })
	run(func() { monorepo = detectMonorepo(st) })
	run(func() { dirs = detectDirectories(st) })
	wg.Wait()

	return DetectionResult{
		Languages:      langs,
		PackageManager: pm,
		TestFramework:  rephraseTest(tf, pm),
		BuildSystem:    rephraseBuild(bs, pm),
		CIProvider:     ci,
		Linters:        linters,
		IsMonorepo:     monorepo,
		InstallCommand: installCommandFor(pm, pmSource),
		Directories:    dirs,
	}
}

// DetectRoot is the filesystem-backed entry point used by the CLI.
func DetectRoot(fsys fs.FS) DetectionResult {
	return Detect(storage.NewFSStorage(fsys))
}

// rephraseTest restates a script-mined test command with the resolved package
// manager ("pnpm run test" rather than "npm run test"). Config-file detections
// keep their hard-coded invocations.
func rephraseTest(tf *TestFrameworkResult, pm PackageManager) *TestFrameworkResult {
	if tf == nil || pm == "" || !minedFromScripts(tf.Command.Source) {
		return tf
	}
	out := *tf
	out.Command.Command = runScriptCommand(pm, "test")
	return &out
}

func rephraseBuild(bs *BuildSystemResult, pm PackageManager) *BuildSystemResult {
	if bs == nil || pm == "" || !minedFromScripts(bs.Command.Source) {
		return bs
	}
	out := *bs
	out.Command.Command = runScriptCommand(pm, "build")
	return &out
}

func minedFromScripts(source string) bool {
	return strings.HasPrefix(source, "package.json [scripts.")
}
