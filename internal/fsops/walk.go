package fsops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/petasbytes/fileagent/internal/safety"
)

// Entry is one filesystem object discovered by Walk, addressed relative to
// the walk start (slash-separated).
type Entry struct {
	RelPath string
	IsDir   bool
	Size    int64
}

// skipDirNames are never descended into during walks; the agent's own
// bookkeeping and VCS internals stay invisible to traversal tools.
var skipDirNames = map[string]struct{}{
	".git":   {},
	".agent": {},
}

// Walk traverses the tree rooted at relDir under the sandbox read root and
// returns entries in sorted path order. The starting directory itself is not
// included. maxDepth <= 0 means unlimited.
func Walk(relDir string, maxDepth int) ([]Entry, error) {
	readRoot, _, err := getRoots()
	if err != nil {
		return nil, err
	}

	absDir, err := safety.ValidateReadPath(readRoot, relDir)
	if err != nil {
		return nil, err
	}

	// A missing or non-directory start must fail loudly; otherwise the walk
	// would succeed with zero entries and callers would report an empty tree.
	info, err := os.Stat(absDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, safety.ToolError{Code: "ERR_PATH_NOT_FOUND", Message: "path does not exist"}
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, safety.ToolError{Code: "ERR_NOT_A_DIRECTORY", Message: "path is not a directory"}
	}

	var out []Entry
	err = filepath.WalkDir(absDir, func(path string, d fs.DirEntry, werr error) error {
		if werr != nil {
			// Unreadable entries are skipped rather than failing the walk.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		rel, rerr := filepath.Rel(absDir, path)
		if rerr != nil || rel == "." {
			return nil
		}
		if d.IsDir() {
			if _, skip := skipDirNames[d.Name()]; skip {
				return filepath.SkipDir
			}
		}
		depth := 1 + countSeparators(rel)
		if maxDepth > 0 && depth > maxDepth {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		var size int64
		if info, ierr := d.Info(); ierr == nil {
			size = info.Size()
		}
		out = append(out, Entry{RelPath: filepath.ToSlash(rel), IsDir: d.IsDir(), Size: size})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].RelPath < out[j].RelPath })
	return out, nil
}

func countSeparators(rel string) int {
	n := 0
	for _, r := range rel {
		if r == filepath.Separator || r == '/' {
			n++
		}
	}
	return n
}
