package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"radtui/internal/logger"
	"radtui/internal/parser"
)

const defaultFileMode = 0o640

// UsersFile abstracts users-file persistence for testability.
type UsersFile interface {
	Path() string
	Read() ([]byte, error)
	Write([]byte) error
}

// DiskUsersFile implements UsersFile on the local filesystem.
type DiskUsersFile struct {
	File string
}

func NewDiskUsersFile(file string) *DiskUsersFile {
	return &DiskUsersFile{File: file}
}

func (f *DiskUsersFile) Path() string {
	return f.File
}

func (f *DiskUsersFile) Read() ([]byte, error) {
	data, err := os.ReadFile(f.File)
	if err != nil {
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}
	return data, nil
}

// Write replaces the file through a temporary file in the same directory and
// a rename, so readers see either the old or the new content. Mode and, where
// the platform allows, ownership of the existing file are carried over.
func (f *DiskUsersFile) Write(data []byte) (err error) {
	target, err := resolveTarget(f.File)
	if err != nil {
		return err
	}

	mode := os.FileMode(defaultFileMode)
	info, statErr := os.Stat(target)
	if statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary users file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temporary users file: %w", err)
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("failed to set users file mode: %w", err)
	}
	if statErr == nil {
		if chownErr := copyOwner(tmp, info); chownErr != nil {
			log := logger.WithComponent("store")
			log.Warn().Err(chownErr).Str("file", target).Msg("could not preserve users file ownership")
		}
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temporary users file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary users file: %w", err)
	}
	if err = os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("failed to replace users file: %w", err)
	}
	return nil
}

// resolveTarget follows symlinks so the rename replaces the file the link
// points to and the link itself survives. FreeRADIUS ships users as a link
// to mods-config/files/authorize.
func resolveTarget(path string) (string, error) {
	target, err := filepath.EvalSymlinks(path)
	if err == nil {
		return target, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		if link, lerr := os.Readlink(path); lerr == nil {
			// Dangling link: create the file it names.
			if !filepath.IsAbs(link) {
				link = filepath.Join(filepath.Dir(path), link)
			}
			return link, nil
		}
		return path, nil
	}
	return "", fmt.Errorf("failed to resolve users file path: %w", err)
}

// InMemoryUsersFile implements UsersFile for testing (no disk I/O).
type InMemoryUsersFile struct {
	mu     sync.Mutex
	name   string
	data   []byte
	writes int
}

func NewInMemoryUsersFile(name string, data []byte) *InMemoryUsersFile {
	return &InMemoryUsersFile{name: name, data: append([]byte(nil), data...)}
}

func (mf *InMemoryUsersFile) Path() string {
	return mf.name
}

func (mf *InMemoryUsersFile) Read() ([]byte, error) {
	mf.mu.Lock()
	defer mf.mu.Unlock()
	// Return a copy to avoid mutation
	return append([]byte(nil), mf.data...), nil
}

func (mf *InMemoryUsersFile) Write(data []byte) error {
	mf.mu.Lock()
	defer mf.mu.Unlock()
	mf.data = append([]byte(nil), data...)
	mf.writes++
	return nil
}

// Writes reports how many times Write was called.
func (mf *InMemoryUsersFile) Writes() int {
	mf.mu.Lock()
	defer mf.mu.Unlock()
	return mf.writes
}

// Open reads f and loads its managed region into a Store.
func Open(f UsersFile, m parser.Markers) (*Store, error) {
	data, err := f.Read()
	if err != nil {
		return nil, err
	}
	s, err := Load(data, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path(), err)
	}
	log := logger.WithComponent("store")
	log.Info().Str("file", f.Path()).Int("records", s.Len()).Msg("loaded users file")
	return s, nil
}

// Save serializes s into f and marks s clean on success.
func Save(f UsersFile, s *Store) error {
	data, err := s.Serialize()
	if err != nil {
		return err
	}
	if err := f.Write(data); err != nil {
		return err
	}
	s.MarkSaved()
	log := logger.WithComponent("store")
	log.Info().Str("file", f.Path()).Int("records", s.Len()).Msg("saved users file")
	return nil
}
