package detector

import (
	"testing"

	"anvil/pkg/storage"
)

func TestDetectPackageManager(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]string
		want       PackageManager
		wantSource string
	}{
		{
			name:  "no evidence",
			files: map[string]string{"README.md": "# hi"},
			want:  "",
		},
		{
			name:       "bun beats pnpm",
			files:      map[string]string{"bun.lockb": "", "pnpm-lock.yaml": ""},
			want:       PMBun,
			wantSource: "bun.lockb",
		},
		{
			name:       "pnpm beats yarn",
			files:      map[string]string{"pnpm-lock.yaml": "", "yarn.lock": ""},
			want:       PMPnpm,
			wantSource: "pnpm-lock.yaml",
		},
		{
			name:       "yarn beats npm",
			files:      map[string]string{"yarn.lock": "", "package-lock.json": "{}"},
			want:       PMYarn,
			wantSource: "yarn.lock",
		},
		{
			name:       "npm lockfile",
			files:      map[string]string{"package-lock.json": "{}"},
			want:       PMNpm,
			wantSource: "package-lock.json",
		},
		{
			name:       "bare manifest defaults to npm",
			files:      map[string]string{"package.json": "{}"},
			want:       PMNpm,
			wantSource: "package.json",
		},
		{
			name:       "node lockfile beats python lockfile",
			files:      map[string]string{"yarn.lock": "", "uv.lock": ""},
			want:       PMYarn,
			wantSource: "yarn.lock",
		},
		{
			name:       "uv beats poetry",
			files:      map[string]string{"uv.lock": "", "poetry.lock": ""},
			want:       PMUv,
			wantSource: "uv.lock",
		},
		{
			name:       "poetry lockfile beats pipenv",
			files:      map[string]string{"poetry.lock": "", "Pipfile.lock": ""},
			want:       PMPoetry,
			wantSource: "poetry.lock",
		},
		{
			name:       "pipenv lock beats bare Pipfile",
			files:      map[string]string{"Pipfile.lock": "{}", "Pipfile": ""},
			want:       PMPipenv,
			wantSource: "Pipfile.lock",
		},
		{
			name:       "bare Pipfile still pipenv",
			files:      map[string]string{"Pipfile": ""},
			want:       PMPipenv,
			wantSource: "Pipfile",
		},
		{
			name:       "poetry declared in descriptor",
			files:      map[string]string{"pyproject.toml": "[tool.poetry]\nname = \"app\"\n"},
			want:       PMPoetry,
			wantSource: "pyproject.toml [tool.poetry]",
		},
		{
			name:       "descriptor without poetry is pip",
			files:      map[string]string{"pyproject.toml": "[project]\nname = \"app\"\n"},
			want:       PMPip,
			wantSource: "pyproject.toml",
		},
		{
			name:       "requirements only is pip",
			files:      map[string]string{"requirements.txt": "flask\n"},
			want:       PMPip,
			wantSource: "requirements.txt",
		},
		{
			name:       "malformed descriptor falls through to requirements",
			files:      map[string]string{"pyproject.toml": "not = [toml", "requirements.txt": "flask\n"},
			want:       PMPip,
			wantSource: "requirements.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm, source := detectPackageManager(storage.NewMemStorage(tt.files))
			if pm != tt.want {
				t.Errorf("package manager = %q, want %q", pm, tt.want)
			}
			if source != tt.wantSource {
				t.Errorf("source = %q, want %q", source, tt.wantSource)
			}
		})
	}
}

func TestInstallCommandFor(t *testing.T) {
	tests := []struct {
		pm   PackageManager
		want string
	}{
		{PMBun, "bun install"},
		{PMPnpm, "pnpm install"},
		{PMYarn, "yarn install"},
		{PMNpm, "npm install"},
		{PMUv, "uv sync"},
		{PMPoetry, "poetry install"},
		{PMPipenv, "pipenv install"},
		{PMPip, "pip install -r requirements.txt"},
	}
	for _, tt := range tests {
		cmd := installCommandFor(tt.pm, "lockfile")
		if cmd == nil || cmd.Command != tt.want {
			t.Errorf("installCommandFor(%q) = %v, want %q", tt.pm, cmd, tt.want)
		}
		if cmd != nil && cmd.Source != "lockfile" {
			t.Errorf("installCommandFor(%q) source = %q", tt.pm, cmd.Source)
		}
	}

	if installCommandFor("", "") != nil {
		t.Error("expected nil install command when no package manager was detected")
	}
}
