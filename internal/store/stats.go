package store

import (
	"os"
	"sort"
	"strings"

	"github.com/NikitaCOEUR/proxylists/internal/derrors"
	"github.com/NikitaCOEUR/proxylists/internal/entry"
)

// Stats summarizes one list
type Stats struct {
	Name    string
	Paths   Paths
	Pending int
	Allowed int
}

// Lists returns the names of every list with at least one file under the root.
// A missing root yields no lists.
func (s *Store) Lists() ([]string, error) {
	dirEntries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, derrors.NewStorageError(s.root, "could not list storage directory", err)
	}

	seen := make(map[string]struct{})
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		fileName := de.Name()
		for _, suffix := range []string{pendingSuffix, allowedSuffix} {
			if name, ok := strings.CutSuffix(fileName, suffix); ok && name != "" {
				seen[name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Stat counts the entries of a list. Missing files count as empty.
func (s *Store) Stat(name string) (*Stats, error) {
	paths := s.Resolve(name)
	stats := &Stats{Name: name, Paths: paths}

	var err error
	if stats.Pending, err = countEntries(paths.Pending); err != nil {
		return nil, err
	}
	if stats.Allowed, err = countEntries(paths.Allowed); err != nil {
		return nil, err
	}
	return stats, nil
}

func countEntries(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, derrors.NewStorageError(path, "could not read proxy list "+path, err)
	}
	return len(entry.Split(string(data))), nil
}
