package detector

import (
	"reflect"
	"testing"

	"anvil/pkg/storage"
)

func TestDetectMonorepo(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  bool
	}{
		{
			name:  "no markers",
			files: map[string]string{"package.json": "{}"},
			want:  false,
		},
		{
			name:  "workspaces array in manifest",
			files: map[string]string{"package.json": `{"workspaces": ["packages/*"]}`},
			want:  true,
		},
		{
			name:  "workspaces object form",
			files: map[string]string{"package.json": `{"workspaces": {"packages": ["packages/*"]}}`},
			want:  true,
		},
		{
			name:  "pnpm workspace file with packages",
			files: map[string]string{"pnpm-workspace.yaml": "packages:\n  - packages/*\n"},
			want:  true,
		},
		{
			name:  "pnpm workspace file without packages",
			files: map[string]string{"pnpm-workspace.yaml": "shared-workspace-lockfile: true\n"},
			want:  false,
		},
		{
			name:  "malformed pnpm workspace file is evidence-absent",
			files: map[string]string{"pnpm-workspace.yaml": "packages: [unclosed\n  nope"},
			want:  false,
		},
		{
			name:  "turbo marker",
			files: map[string]string{"turbo.json": "{}"},
			want:  true,
		},
		{
			name:  "lerna marker",
			files: map[string]string{"lerna.json": "{}"},
			want:  true,
		},
		{
			name:  "nx marker",
			files: map[string]string{"nx.json": "{}"},
			want:  true,
		},
		{
			name:  "workspaces key wins even with malformed-free project",
			files: map[string]string{"package.json": `{"workspaces": []}`},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectMonorepo(storage.NewMemStorage(tt.files)); got != tt.want {
				t.Errorf("detectMonorepo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectDirectories(t *testing.T) {
	st := storage.NewMemStorage(map[string]string{
		"src/index.ts":       "",
		"docs/guide.md":      "",
		"tests/app_test.py":  "",
		"scripts/release.sh": "",
		"vendor/dep.go":      "",
	})

	got := detectDirectories(st)
	want := []string{"src", "tests", "docs", "scripts"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("detectDirectories = %v, want %v", got, want)
	}
}

func TestDetectDirectoriesNone(t *testing.T) {
	if got := detectDirectories(storage.NewMemStorage(map[string]string{"README.md": ""})); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
