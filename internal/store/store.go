// Package store keeps proxy lists as flat text files under a storage root.
//
// Every list owns two files, <root>/<name>-pending.txt and
// <root>/<name>-allowed.txt, holding one entry per line.
package store

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/NikitaCOEUR/proxylists/internal/derrors"
	"github.com/NikitaCOEUR/proxylists/internal/logger"
)

const (
	// DirName is the storage directory created under the home directory
	DirName = "proxylists"

	pendingSuffix = "-pending.txt"
	allowedSuffix = "-allowed.txt"

	fileMode = 0644
	dirMode  = 0755
)

// Kind selects one of the two files of a list
type Kind string

const (
	// Pending holds entries waiting for promotion
	Pending Kind = "pending"
	// Allowed holds promoted entries
	Allowed Kind = "allowed"
)

// ParseKind parses a list type argument. An empty value means Pending.
func ParseKind(value string) (Kind, error) {
	switch value {
	case "", string(Pending):
		return Pending, nil
	case string(Allowed):
		return Allowed, nil
	default:
		return "", derrors.NewValidationError("list_type", fmt.Sprintf("%s is not a valid list type", value), nil)
	}
}

// Paths are the two files backing a list
type Paths struct {
	Pending string
	Allowed string
}

// For returns the path of the given kind
func (p Paths) For(kind Kind) string {
	if kind == Allowed {
		return p.Allowed
	}
	return p.Pending
}

// DefaultRoot returns $HOME/proxylists
func DefaultRoot() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", derrors.NewEnvironmentError("HOME", "HOME environment variable is not set")
	}
	return filepath.Join(home, DirName), nil
}

// Store reads and writes list files under a single root directory
type Store struct {
	root string
	log  *logger.Logger
}

// New creates a store rooted at root. Nothing is touched on disk until a write.
func New(root string, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Discard()
	}
	return &Store{root: root, log: log}
}

// Root returns the storage root
func (s *Store) Root() string {
	return s.root
}

// Resolve returns the file paths of a list. The name is used as is.
func (s *Store) Resolve(name string) Paths {
	return Paths{
		Pending: filepath.Join(s.root, name+pendingSuffix),
		Allowed: filepath.Join(s.root, name+allowedSuffix),
	}
}

// Append writes payload at the end of the pending file, creating it if needed
func (s *Store) Append(name, payload string) error {
	paths := s.Resolve(name)
	if err := s.ensureRoot(); err != nil {
		return err
	}

	if err := appendFile(paths.Pending, payload); err != nil {
		return err
	}

	s.log.Debug().List(name).Path(paths.Pending).Int("bytes", len(payload)).Msg("appended to pending list")
	return nil
}

// Promote moves the whole pending content to the end of the allowed file and
// leaves pending empty. Returns the promoted content.
//
// Pending is emptied by renaming an empty file over it, so it is never left
// half written. A failure after the allowed append keeps pending intact.
func (s *Store) Promote(name string) (string, error) {
	paths := s.Resolve(name)

	data, err := os.ReadFile(paths.Pending)
	if err != nil {
		return "", derrors.NewStorageError(paths.Pending, "could not read proxy list "+paths.Pending, err)
	}

	if err := s.ensureRoot(); err != nil {
		return "", err
	}

	if err := appendFile(paths.Allowed, string(data)); err != nil {
		return "", err
	}

	if err := truncateAtomic(paths.Pending); err != nil {
		return "", err
	}

	s.log.Debug().List(name).Path(paths.Allowed).Int("bytes", len(data)).Msg("promoted pending list")
	return string(data), nil
}

// Read returns the content of one file of a list
func (s *Store) Read(name string, kind Kind) (string, error) {
	path := s.Resolve(name).For(kind)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", derrors.NewStorageError(path, "could not read proxy list "+path, err)
	}

	s.log.Debug().List(name).Path(path).Str("kind", string(kind)).Msg("read list")
	return string(data), nil
}

func (s *Store) ensureRoot() error {
	if err := os.MkdirAll(s.root, dirMode); err != nil {
		return derrors.NewStorageError(s.root, "could not create storage directory", err)
	}
	return nil
}

func appendFile(path, payload string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, fileMode)
	if err != nil {
		return derrors.NewStorageError(path, "could not open proxy list "+path, err)
	}

	if _, err := f.WriteString(payload); err != nil {
		_ = f.Close()
		return derrors.NewStorageError(path, "could not write to proxy list "+path, err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		return derrors.NewStorageError(path, "could not write to proxy list "+path, err)
	}

	if err := f.Close(); err != nil {
		return derrors.NewStorageError(path, "could not write to proxy list "+path, err)
	}
	return nil
}

// truncateAtomic replaces path with an empty file via rename
func truncateAtomic(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return derrors.NewStorageError(path, "could not clear proxy list "+path, err)
	}
	tmpPath := tmp.Name()

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return derrors.NewStorageError(path, "could not clear proxy list "+path, err)
	}

	mode := fs.FileMode(fileMode)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		_ = os.Remove(tmpPath)
		return derrors.NewStorageError(path, "could not clear proxy list "+path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return derrors.NewStorageError(path, "could not clear proxy list "+path, err)
	}
	return nil
}
