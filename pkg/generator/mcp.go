package generator

import "anvil/pkg/detector"

// ServerEntry is one named tool server in the manifest.
type ServerEntry struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env,omitempty"`
}

// MCPServers produces the manifest's server map as structured data; the
// orchestrator decides whether it lands at the canonical path or merges into
// the local settings document. A filesystem server is always present; a
// GitHub server is added when GitHub Actions CI was detected.
func MCPServers(res detector.DetectionResult) map[string]ServerEntry {
	servers := map[string]ServerEntry{
		"filesystem": {
			Command: "npx",
			Args:    []string{"-y", "@modelcontextprotocol/server-filesystem", "."},
		},
	}
	if res.CIProvider == detector.CIGitHubActions {
		servers["github"] = ServerEntry{
			Command: "npx",
			Args:    []string{"-y", "@modelcontextprotocol/server-github"},
			Env:     map[string]string{"GITHUB_TOKEN": "${GITHUB_TOKEN}"},
		}
	}
	return servers
}
