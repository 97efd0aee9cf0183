// Package settings persists user-level tool configuration in a
// properties-style file in the user's home directory.
package settings

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"localiser/internal/perf"
)

const fileName = ".localiser.properties"
const projectPathKey = "projectPath"

// Store reads and writes the settings file. The file is read once at start
// and written whole on update; last writer wins, no locking.
type Store struct {
	fs   afero.Fs
	path string
}

func NewStore(fs afero.Fs) (Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Store{}, errors.Wrap(err, "cannot resolve home directory")
	}
	return Store{fs: fs, path: filepath.Join(home, fileName)}, nil
}

// NewStoreAt builds a store over an explicit path.
func NewStoreAt(fs afero.Fs, path string) Store {
	return Store{fs: fs, path: path}
}

func (s Store) Path() string {
	return s.path
}

// ProjectPath returns the persisted project path, or "" when the settings
// file does not exist or has no entry.
func (s Store) ProjectPath() (string, error) {
	props, err := s.load()
	if err != nil {
		return "", err
	}
	return props.GetString(projectPathKey, ""), nil
}

// SetProjectPath writes the project path, preserving unrelated entries.
func (s Store) SetProjectPath(path string) error {
	region := perf.StartRegion("io.settings.write")
	defer region.End()

	props, err := s.load()
	if err != nil {
		return err
	}
	if _, _, err := props.Set(projectPathKey, path); err != nil {
		return errors.Wrap(err, "failed to update settings")
	}

	var buffer bytes.Buffer
	if _, err := props.Write(&buffer, properties.UTF8); err != nil {
		return errors.Wrap(err, "failed to encode settings")
	}
	return afero.WriteFile(s.fs, s.path, buffer.Bytes(), 0o644)
}

func (s Store) load() (*properties.Properties, error) {
	exists, _ := afero.Exists(s.fs, s.path)
	if !exists {
		return properties.NewProperties(), nil
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read settings file")
	}

	props, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse settings file")
	}
	return props, nil
}
