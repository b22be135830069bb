// Package generator turns a detection result into configuration artifacts.
// Each generator is a pure function producing structured data; Generate owns
// placement, including the local-mode merge of the server manifest and the
// hooks configuration into one settings document.
package generator

import (
	"encoding/json"

	"anvil/pkg/detector"
)

// Generate runs every generator over the immutable detection result and
// returns the final artifact list. Generators that found nothing relevant are
// omitted, never emitted as empty stubs.
func Generate(res detector.DetectionResult, opts Options) []Artifact {
	artifacts := []Artifact{{
		RelativePath: GuidancePath,
		Content:      GuidanceDoc(res),
	}}

	servers := MCPServers(res)
	hooks := Hooks(res)

	if opts.Local {
		merged := map[string]any{}
		if len(servers) > 0 {
			merged["mcpServers"] = servers
		}
		if len(hooks) > 0 {
			merged["hooks"] = hooks
		}
		if len(merged) > 0 {
			artifacts = append(artifacts, Artifact{
				RelativePath: LocalSettingsPath,
				Content:      marshalJSON(merged),
			})
		}
	} else {
		if len(servers) > 0 {
			artifacts = append(artifacts, Artifact{
				RelativePath: ManifestPath,
				Content:      marshalJSON(map[string]any{"mcpServers": servers}),
			})
		}
		if len(hooks) > 0 {
			artifacts = append(artifacts, Artifact{
				RelativePath: SettingsPath,
				Content:      marshalJSON(map[string]any{"hooks": hooks}),
			})
		}
	}

	return append(artifacts, SlashCommands(res)...)
}

// marshalJSON serializes with stable two-space indentation and a trailing
// newline. Map keys are sorted by encoding/json, so output is byte-stable
// across runs.
func marshalJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(b) + "\n"
}
