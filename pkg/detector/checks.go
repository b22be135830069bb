package detector

import (
	"encoding/json"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/ini.v1"

	"anvil/pkg/storage"
)

// fileCheck is one row of an ordered precedence table: if path exists, the
// category resolves to name with the given hard-coded command, and the
// matched path becomes the provenance source.
type fileCheck[T ~string] struct {
	path    string
	name    T
	command string
}

// firstExisting evaluates a precedence table in order and returns the first
// row whose file exists.
func firstExisting[T ~string](st storage.Storage, checks []fileCheck[T]) (fileCheck[T], bool) {
	for _, c := range checks {
		if st.Exists(c.path) {
			return c, true
		}
	}
	return fileCheck[T]{}, false
}

// packageJSON is the subset of a JS manifest the detectors care about.
// Workspaces is kept raw: npm allows both an array and an object form.
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
	Workspaces      json.RawMessage   `json:"workspaces"`
}

// loadPackageJSON reads and parses package.json. exists reports whether the
// file is present at all; pkg is nil when the content is malformed, which
// callers fold into weaker evidence rather than an error.
func loadPackageJSON(st storage.Storage) (pkg *packageJSON, exists bool) {
	content, ok := st.ReadTextFile("package.json")
	if !ok {
		return nil, st.Exists("package.json")
	}
	var p packageJSON
	if err := json.Unmarshal([]byte(content), &p); err != nil {
		return nil, true
	}
	return &p, true
}

func (p *packageJSON) dependsOn(name string) bool {
	if p == nil {
		return false
	}
	if _, ok := p.Dependencies[name]; ok {
		return true
	}
	_, ok := p.DevDependencies[name]
	return ok
}

// script returns a named entry of the manifest's scripts section.
func (p *packageJSON) script(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	s, ok := p.Scripts[name]
	return s, ok
}

// pyProject is a parsed pyproject.toml, reduced to its tool tables.
type pyProject struct {
	Tool map[string]any `toml:"tool"`
}

func loadPyProject(st storage.Storage) (*pyProject, bool) {
	content, ok := st.ReadTextFile("pyproject.toml")
	if !ok {
		return nil, false
	}
	var p pyProject
	if err := toml.Unmarshal([]byte(content), &p); err != nil {
		return nil, false
	}
	return &p, true
}

// hasTool reports whether a (possibly dotted) [tool.*] table is present,
// e.g. "poetry" or "pytest.ini_options".
func (p *pyProject) hasTool(name string) bool {
	if p == nil {
		return false
	}
	var cur any = p.Tool
	for _, part := range strings.Split(name, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return false
		}
		cur, ok = m[part]
		if !ok {
			return false
		}
	}
	return true
}

// iniHasSection reports whether an INI-format file (setup.cfg, mypy.ini)
// declares the named section. Malformed content is evidence-absent.
func iniHasSection(st storage.Storage, file, section string) bool {
	content, ok := st.ReadTextFile(file)
	if !ok {
		return false
	}
	f, err := ini.Load([]byte(content))
	if err != nil {
		return false
	}
	_, err = f.GetSection(section)
	return err == nil
}

// sectionSource formats the "<file> [<section>]" provenance locator.
func sectionSource(file, section string) string {
	return file + " [" + section + "]"
}
