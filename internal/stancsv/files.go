package stancsv

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ChainFile is one discovered chain CSV, identified by its numeric suffix.
type ChainFile struct {
	ID   int
	Path string
}

// MatchingFiles enumerates files named <prefix><digits>.csv in the prefix's
// directory, sorted by numeric id. Two files mapping to the same id (for
// example through differing zero-padding) are rejected.
func MatchingFiles(prefix string) ([]ChainFile, error) {
	dir := filepath.Dir(prefix)
	base := filepath.Base(prefix)
	if strings.HasSuffix(prefix, string(filepath.Separator)) {
		dir = filepath.Clean(prefix)
		base = ""
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	byID := make(map[int]string)
	var files []ChainFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, base) || !strings.HasSuffix(name, ".csv") {
			continue
		}
		digits := name[len(base) : len(name)-len(".csv")]
		if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
			continue
		}
		id, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		path := filepath.Join(dir, name)
		if prev, ok := byID[id]; ok {
			return nil, fmt.Errorf("%w: id %d from %s and %s", ErrDuplicateFileID, id, prev, path)
		}
		byID[id] = path
		files = append(files, ChainFile{ID: id, Path: path})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].ID < files[j].ID })
	return files, nil
}
