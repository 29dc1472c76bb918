package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// File is a document selected for rendering.
type File struct {
	// Path is the file path as found on disk.
	Path string

	// Rel is the path relative to the pattern base (the working directory for
	// plain file arguments), used to mirror the layout under an output directory.
	Rel string
}

// DefaultExtensions are rendered when no extension list is given.
var DefaultExtensions = []string{".html", ".htm"}

// ResolveFiles expands plain paths, directories and doublestar glob patterns
// into a sorted, de-duplicated file list. Directories are searched recursively.
// Only files whose extension is in extensions are returned.
func ResolveFiles(patterns []string, extensions []string) ([]File, error) {
	exts := extensionSet(extensions)

	var files []File
	seen := make(map[string]bool)
	add := func(f File) {
		if !exts[strings.ToLower(filepath.Ext(f.Path))] {
			return
		}
		key := filepath.Clean(f.Path)
		if seen[key] {
			return
		}
		seen[key] = true
		files = append(files, f)
	}

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", pattern, err)
		}
		for _, f := range resolved {
			add(f)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// resolvePattern expands a single path or glob pattern.
func resolvePattern(pattern string) ([]File, error) {
	if !containsGlob(pattern) {
		info, err := os.Stat(pattern)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return []File{{Path: pattern, Rel: plainRel(pattern)}}, nil
		}
		return globUnder(pattern, "**/*")
	}

	base, pat := doublestar.SplitPattern(filepath.ToSlash(pattern))
	files, err := globUnder(filepath.FromSlash(base), pat)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}
	return files, nil
}

// globUnder matches pat against the tree rooted at base.
func globUnder(base, pat string) ([]File, error) {
	matches, err := doublestar.Glob(os.DirFS(base), pat, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}

	files := make([]File, 0, len(matches))
	for _, m := range matches {
		files = append(files, File{
			Path: filepath.Join(base, filepath.FromSlash(m)),
			Rel:  filepath.FromSlash(m),
		})
	}
	return files, nil
}

// plainRel mirrors a plain file argument by its path below the working
// directory, or by its base name when it lies elsewhere.
func plainRel(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Base(path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Base(path)
	}
	rel, err := filepath.Rel(cwd, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Base(path)
	}
	return rel
}

// containsGlob checks if a pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func extensionSet(extensions []string) map[string]bool {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[strings.ToLower(ext)] = true
	}
	return set
}
