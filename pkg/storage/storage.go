package storage

import (
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Storage is the read-only query surface detectors run against. Callers bind
// the project root into the implementation; all paths are relative to it.
// Every method is total: a failing or slow underlying read answers "absent"
// rather than returning an error.
type Storage interface {
	// Exists reports whether a file or directory exists at the given path.
	Exists(path string) bool

	// ReadTextFile returns a file's content, or ok=false if the file is
	// missing or unreadable.
	ReadTextFile(path string) (content string, ok bool)

	// ListDirectory returns the entry names of a directory, or nil if the
	// path is missing or not a directory.
	ListDirectory(path string) []string

	// DirExists reports whether a directory exists at the given path.
	DirExists(path string) bool
}

// FSStorage adapts an fs.FS (typically os.DirFS rooted at the project) to the
// Storage interface.
type FSStorage struct {
	fsys fs.FS
}

func NewFSStorage(fsys fs.FS) *FSStorage {
	return &FSStorage{fsys: fsys}
}

func (s *FSStorage) Exists(p string) bool {
	_, err := fs.Stat(s.fsys, p)
	return err == nil
}

func (s *FSStorage) ReadTextFile(p string) (string, bool) {
	f, err := s.fsys.Open(p)
	if err != nil {
		return "", false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (s *FSStorage) ListDirectory(p string) []string {
	entries, err := fs.ReadDir(s.fsys, p)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func (s *FSStorage) DirExists(p string) bool {
	fi, err := fs.Stat(s.fsys, p)
	return err == nil && fi.IsDir()
}

// MemStorage is an in-memory Storage for tests: a map of relative file paths
// to contents. Parent directories are derived from the file paths.
type MemStorage struct {
	files map[string]string
	dirs  map[string]bool
}

func NewMemStorage(files map[string]string) *MemStorage {
	m := &MemStorage{
		files: make(map[string]string, len(files)),
		dirs:  map[string]bool{".": true},
	}
	for p, content := range files {
		p = path.Clean(p)
		m.files[p] = content
		for dir := path.Dir(p); dir != "." && dir != "/"; dir = path.Dir(dir) {
			m.dirs[dir] = true
		}
	}
	return m
}

func (m *MemStorage) Exists(p string) bool {
	p = path.Clean(p)
	_, isFile := m.files[p]
	return isFile || m.dirs[p]
}

func (m *MemStorage) ReadTextFile(p string) (string, bool) {
	content, ok := m.files[path.Clean(p)]
	return content, ok
}

func (m *MemStorage) ListDirectory(p string) []string {
	p = path.Clean(p)
	if !m.dirs[p] {
		return nil
	}
	seen := map[string]bool{}
	var names []string
	add := func(child string) {
		var rel string
		if p == "." {
			rel = child
		} else if strings.HasPrefix(child, p+"/") {
			rel = child[len(p)+1:]
		} else {
			return
		}
		name, _, _ := strings.Cut(rel, "/")
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for f := range m.files {
		add(f)
	}
	for d := range m.dirs {
		if d != "." {
			add(d)
		}
	}
	sort.Strings(names)
	return names
}

func (m *MemStorage) DirExists(p string) bool {
	return m.dirs[path.Clean(p)]
}
