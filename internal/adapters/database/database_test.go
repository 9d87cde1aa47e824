package database_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/compdb/internal/adapters/database"
	"go.trai.ch/compdb/internal/core/domain"
)

func sampleEntries() []domain.CompileCommand {
	return []domain.CompileCommand{
		{
			File:    "a.cc",
			Command: `"/usr/bin/c++" -std=c++17 -iquote inc -DFOO=1`,
		},
		{
			File:    "lib/b.cc",
			Command: `"/usr/bin/c++" -std=c++17`,
		},
	}
}

func TestRender_Golden(t *testing.T) {
	data, err := database.Render(sampleEntries())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "database", data)
}

func TestRender_Empty(t *testing.T) {
	data, err := database.Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestRender_RoundTrip(t *testing.T) {
	data, err := database.Render(sampleEntries())
	require.NoError(t, err)

	var decoded []struct {
		Command   string `json:"command"`
		Directory string `json:"directory"`
		File      string `json:"file"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, `"/usr/bin/c++" -std=c++17 -iquote inc -DFOO=1`, decoded[0].Command)
	assert.Equal(t, "__EXEC_ROOT__", decoded[0].Directory)
	assert.Equal(t, "__WORKSPACE__/a.cc", decoded[0].File)
	assert.Equal(t, "__WORKSPACE__/lib/b.cc", decoded[1].File)
}

func TestStore_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", domain.DatabaseFileName)
	store := database.NewStore()

	updated, err := store.Save(path, sampleEntries())
	require.NoError(t, err)
	assert.True(t, updated)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	rendered, err := database.Render(sampleEntries())
	require.NoError(t, err)
	assert.Equal(t, rendered, written)
}

func TestStore_SaveSkipsUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.DatabaseFileName)
	store := database.NewStore()

	updated, err := store.Save(path, sampleEntries())
	require.NoError(t, err)
	require.True(t, updated)

	updated, err = store.Save(path, sampleEntries())
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestStore_SaveRewritesOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.DatabaseFileName)
	store := database.NewStore()

	_, err := store.Save(path, sampleEntries())
	require.NoError(t, err)

	changed := sampleEntries()
	changed[0].Command = `"/usr/bin/c++" -std=c++20`
	updated, err := store.Save(path, changed)
	require.NoError(t, err)
	assert.True(t, updated)
}
