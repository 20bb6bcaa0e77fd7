package status

import (
	"github.com/NikitaCOEUR/proxylists/internal/config"
	"github.com/NikitaCOEUR/proxylists/internal/store"
	"github.com/NikitaCOEUR/proxylists/pkg/version"
)

// Collect gathers statistics for one list, or for every list under the
// store root when name is empty
func Collect(s *store.Store, settings *config.Settings, name string) (*Data, error) {
	data := &Data{
		Version:       version.Version,
		StorageRoot:   s.Root(),
		ConfigPath:    settings.Path,
		Confirmations: settings.Confirmations,
		CatSelector:   settings.CatSelector,
		Requested:     name,
	}

	names := []string{name}
	if name == "" {
		var err error
		if names, err = s.Lists(); err != nil {
			return nil, err
		}
	}

	data.Lists = make([]*store.Stats, 0, len(names))
	for _, n := range names {
		stats, err := s.Stat(n)
		if err != nil {
			return nil, err
		}
		data.Lists = append(data.Lists, stats)
	}

	return data, nil
}
