package detector

import (
	"strings"

	"anvil/pkg/storage"
)

// ciChecks is an ordered provider checklist: a provider is detected when its
// workflows directory holds at least one YAML entry. Only one provider is
// modeled today; new ones append a row here.
var ciChecks = []struct {
	dir      string
	provider CIProvider
}{
	{dir: ".github/workflows", provider: CIGitHubActions},
}

func detectCIProvider(st storage.Storage) CIProvider {
	for _, c := range ciChecks {
		for _, name := range st.ListDirectory(c.dir) {
			if strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml") {
				return c.provider
			}
		}
	}
	return ""
}
