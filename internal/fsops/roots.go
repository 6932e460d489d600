// Package fsops implements the filesystem boundary consumed by tools:
// whole-file read/write, directory listing, and recursive walks, all
// addressed by relative paths under sandbox roots.
package fsops

import (
	"os"
	"sync"

	"github.com/petasbytes/fileagent/internal/safety"
)

var (
	rootsOnce    sync.Once
	absReadRoot  string
	absWriteRoot string
	initRootsErr error
)

func initRoots() {
	read := os.Getenv("FA_READ_ROOT")
	write := os.Getenv("FA_WRITE_ROOT")
	absReadRoot, absWriteRoot, initRootsErr = safety.InitSandboxRoot(read, write)
}

// getRoots returns the cached absolute read/write roots, initialising them once on first use.
func getRoots() (string, string, error) {
	rootsOnce.Do(initRoots)
	return absReadRoot, absWriteRoot, initRootsErr
}

// WriteRoot returns the absolute sandbox write root. Process tools use it
// as their working directory.
func WriteRoot() (string, error) {
	_, write, err := getRoots()
	return write, err
}
