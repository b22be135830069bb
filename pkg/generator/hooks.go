package generator

import "anvil/pkg/detector"

// HookEntry is one tool-invocation hook: after a matching tool runs, the
// command is executed.
type HookEntry struct {
	Matcher string `json:"matcher"`
	Type    string `json:"type"`
	Command string `json:"command"`
}

// Hooks produces the category-keyed hook map, one PostToolUse entry per
// detected linter. A project with no linters yields nil, and the orchestrator
// omits the artifact entirely rather than emitting an empty stub.
func Hooks(res detector.DetectionResult) map[string][]HookEntry {
	if len(res.Linters) == 0 {
		return nil
	}
	entries := make([]HookEntry, 0, len(res.Linters))
	for _, l := range res.Linters {
		entries = append(entries, HookEntry{
			Matcher: "Edit|Write",
			Type:    "command",
			Command: l.Command.Command,
		})
	}
	return map[string][]HookEntry{"PostToolUse": entries}
}
