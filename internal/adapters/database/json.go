// Package database renders and persists the compilation database.
package database

import (
	"encoding/json"
	"strings"

	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/zerr"
)

// record is one serialized database element. Field order matches the
// emitted JSON.
type record struct {
	Command   string `json:"command"`
	Directory string `json:"directory"`
	File      string `json:"file"`
}

// Render serializes entries as a JSON array, one element per line,
// elements separated by ",\n ". The directory field carries the
// execution-root placeholder and file paths are prefixed with the
// workspace-root placeholder; consumers resolve both.
func Render(entries []domain.CompileCommand) ([]byte, error) {
	if len(entries) == 0 {
		return []byte("[]\n"), nil
	}

	elements := make([]string, len(entries))
	for i, entry := range entries {
		data, err := json.Marshal(record{
			Command:   entry.Command,
			Directory: domain.ExecRootPlaceholder,
			File:      domain.WorkspacePlaceholder + "/" + entry.File,
		})
		if err != nil {
			return nil, zerr.Wrap(err, "failed to encode database entry")
		}
		elements[i] = string(data)
	}

	return []byte("[\n " + strings.Join(elements, ",\n ") + "\n]\n"), nil
}
