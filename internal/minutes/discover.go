package minutes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover lists the files in dir whose extension is exactly ext, sorted by
// name. Matching is case-sensitive so two recordings never share a base name. A missing directory yields no recordings.
func Discover(dir, ext string) ([]Recording, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if filepath.Ext(e.Name()) == ext {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	recordings := make([]Recording, 0, len(names))
	for _, name := range names {
		recordings = append(recordings, NewRecording(filepath.Join(dir, name)))
	}
	return recordings, nil
}
