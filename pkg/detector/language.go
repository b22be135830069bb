package detector

import "anvil/pkg/storage"

// pythonMarkers are checked in order; the first hit classifies the project as
// Python with no further distinction.
var pythonMarkers = []string{
	"pyproject.toml",
	"setup.py",
	"setup.cfg",
	"requirements.txt",
}

// detectLanguages resolves the ordered language list. The JS/TS evidence
// group is evaluated before the Python group, so a project carrying both
// manifests always yields [typescript|javascript, python] in that order.
func detectLanguages(st storage.Storage) []Language {
	var langs []Language

	if pkg, exists := loadPackageJSON(st); exists {
		switch {
		case st.Exists("tsconfig.json"):
			langs = append(langs, LangTypeScript)
		case pkg.dependsOn("typescript"):
			langs = append(langs, LangTypeScript)
		default:
			// Covers both plain JS projects and manifests that failed to
			// parse: a manifest's presence alone is JavaScript evidence.
			langs = append(langs, LangJavaScript)
		}
	}

	for _, marker := range pythonMarkers {
		if st.Exists(marker) {
			langs = append(langs, LangPython)
			break
		}
	}

	return langs
}
