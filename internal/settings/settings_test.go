package settings

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestProjectPathMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStoreAt(fs, "/home/user/.localiser.properties")

	path, err := store.ProjectPath()

	assert.NoError(t, err)
	assert.Equal(t, "", path)
}

func TestProjectPathRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStoreAt(fs, "/home/user/.localiser.properties")

	assert.NoError(t, store.SetProjectPath("/projects/shop"))

	path, err := store.ProjectPath()
	assert.NoError(t, err)
	assert.Equal(t, "/projects/shop", path)
}

func TestSetProjectPathPreservesOtherEntries(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStoreAt(fs, "/home/user/.localiser.properties")
	_ = afero.WriteFile(fs, store.Path(), []byte("editor=vim\n"), 0o644)

	assert.NoError(t, store.SetProjectPath("/projects/shop"))

	data, err := afero.ReadFile(fs, store.Path())
	assert.NoError(t, err)
	assert.Contains(t, string(data), "editor")
	assert.Contains(t, string(data), "projectPath")
}

func TestSetProjectPathOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStoreAt(fs, "/home/user/.localiser.properties")

	assert.NoError(t, store.SetProjectPath("/old"))
	assert.NoError(t, store.SetProjectPath("/new"))

	path, err := store.ProjectPath()
	assert.NoError(t, err)
	assert.Equal(t, "/new", path)
}

func TestProjectPathMalformedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStoreAt(fs, "/home/user/.localiser.properties")
	_ = afero.WriteFile(fs, store.Path(), []byte(`projectPath=\u00zz`), 0o644)

	_, err := store.ProjectPath()
	assert.Error(t, err)
}

func TestNewStoreUsesHomeDirectory(t *testing.T) {
	store, err := NewStore(afero.NewMemMapFs())

	assert.NoError(t, err)
	assert.Contains(t, store.Path(), ".localiser.properties")
}
