package storage

import (
	"reflect"
	"testing"
	"testing/fstest"
)

func TestFSStorage(t *testing.T) {
	fsys := fstest.MapFS{
		"package.json":               {Data: []byte(`{"name":"app"}`), Mode: 0o644},
		".github/workflows/ci.yml":   {Data: []byte("on: push"), Mode: 0o644},
		".github/workflows/README":   {Data: []byte("docs"), Mode: 0o644},
		"src/index.ts":               {Data: []byte("export {}"), Mode: 0o644},
	}
	st := NewFSStorage(fsys)

	if !st.Exists("package.json") {
		t.Error("expected package.json to exist")
	}
	if st.Exists("missing.json") {
		t.Error("did not expect missing.json to exist")
	}

	content, ok := st.ReadTextFile("package.json")
	if !ok || content != `{"name":"app"}` {
		t.Errorf("unexpected read result: %q, %v", content, ok)
	}
	if _, ok := st.ReadTextFile("missing.json"); ok {
		t.Error("expected ok=false for missing file")
	}

	names := st.ListDirectory(".github/workflows")
	want := []string{"README", "ci.yml"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ListDirectory = %v, want %v", names, want)
	}
	if st.ListDirectory("nope") != nil {
		t.Error("expected nil listing for missing directory")
	}
	if st.ListDirectory("package.json") != nil {
		t.Error("expected nil listing for a file path")
	}

	if !st.DirExists("src") {
		t.Error("expected src to be a directory")
	}
	if st.DirExists("package.json") {
		t.Error("package.json is not a directory")
	}
}

func TestMemStorage(t *testing.T) {
	st := NewMemStorage(map[string]string{
		"package.json":             `{"name":"app"}`,
		".github/workflows/ci.yml": "on: push",
		"src/lib/util.ts":          "",
	})

	if !st.Exists("package.json") || !st.Exists(".github/workflows") || !st.Exists("src") {
		t.Error("expected files and derived directories to exist")
	}
	if st.Exists("dist") {
		t.Error("did not expect dist to exist")
	}

	if content, ok := st.ReadTextFile("package.json"); !ok || content != `{"name":"app"}` {
		t.Errorf("unexpected read result: %q, %v", content, ok)
	}
	if _, ok := st.ReadTextFile("src"); ok {
		t.Error("directories are not readable files")
	}

	names := st.ListDirectory(".github/workflows")
	if !reflect.DeepEqual(names, []string{"ci.yml"}) {
		t.Errorf("ListDirectory = %v", names)
	}
	if !reflect.DeepEqual(st.ListDirectory("src"), []string{"lib"}) {
		t.Errorf("ListDirectory(src) = %v", st.ListDirectory("src"))
	}
	if st.ListDirectory("missing") != nil {
		t.Error("expected nil listing for missing directory")
	}

	if !st.DirExists("src/lib") || st.DirExists("src/lib/util.ts") {
		t.Error("DirExists should distinguish files from directories")
	}
}
