package callindex

import (
	"fmt"
	"os"
	"sync"
)

// Files are indexed once per process: a debugging call has no business
// re-reading its own source on every invocation, and the binary's idea of
// line numbers would not follow on-disk edits anyway.
var cache = struct {
	mu    sync.Mutex
	files map[string]*File
}{
	files: make(map[string]*File),
}

// Load returns the cached view of the file, reading and parsing it on
// first access. The error is a read failure only; a file that does not
// parse still loads with its raw content.
func Load(path string) (*File, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if f, ok := cache.files[path]; ok {
		return f, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}

	f := newFile(path, src)
	cache.files[path] = f

	return f, nil
}
