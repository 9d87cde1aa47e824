package database

import (
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DatabaseStore = (*Store)(nil)

// Store writes the rendered database to disk. Writes are atomic (temp
// file plus rename) and skipped entirely when the content digest is
// unchanged, so downstream diffing and caching can key off the file.
type Store struct{}

// NewStore creates a new database store.
func NewStore() *Store {
	return &Store{}
}

// Save renders entries and writes them to path. It reports whether the
// file changed.
func (s *Store) Save(path string, entries []domain.CompileCommand) (bool, error) {
	data, err := Render(entries)
	if err != nil {
		return false, err
	}

	//nolint:gosec // Path is chosen by the user.
	if prev, err := os.ReadFile(path); err == nil {
		if xxhash.Sum64(prev) == xxhash.Sum64(data) {
			return false, nil
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return false, zerr.Wrap(err, "failed to create output directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return false, zerr.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return false, zerr.Wrap(err, "failed to write database")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return false, zerr.Wrap(err, "failed to close temp file")
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return false, zerr.Wrap(err, "failed to set file permissions")
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return false, zerr.Wrap(err, "failed to move database into place")
	}

	return true, nil
}
