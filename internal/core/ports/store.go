package ports

import "go.trai.ch/compdb/internal/core/domain"

// DatabaseStore renders and persists a compilation database.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DatabaseStore interface {
	// Save writes the database to path. It reports whether the file
	// changed; an up-to-date file is left untouched so downstream
	// consumers can rely on its timestamp and bytes.
	Save(path string, entries []domain.CompileCommand) (updated bool, err error)
}
