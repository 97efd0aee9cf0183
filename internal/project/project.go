// Package project writes reconciled translations into an external project's
// locale sources.
package project

import (
	"path/filepath"

	"github.com/spf13/afero"

	"localiser/internal/constants"
	"localiser/internal/globalerrors"
	"localiser/internal/i18n"
	"localiser/internal/locales"
	"localiser/internal/logger"
	"localiser/internal/patch"
	"localiser/internal/perf"
)

type Updater struct {
	fs  afero.Fs
	log *logger.Logger
}

func NewUpdater(fs afero.Fs, log *logger.Logger) Updater {
	return Updater{fs: fs, log: log}
}

// Update patches <locale>.js for every loaded locale and merges the common
// keys into constants.js, all inside dir. A missing per-locale file only
// skips that locale; a missing constants file is created empty first. Files
// are rewritten whole, in place.
func (u Updater) Update(dir string, set locales.Set, common []string, maxKeyLength int) error {
	region := perf.StartRegion("io.project.update")
	defer region.End()

	info, err := u.fs.Stat(dir)
	if err != nil || !info.IsDir() {
		return &globalerrors.ProjectPathError{Path: dir}
	}

	members := patch.NewMembers(common)

	for _, code := range set.Codes() {
		target := filepath.Join(dir, code+".js")

		exists, _ := afero.Exists(u.fs, target)
		if !exists {
			u.log.Warn(i18n.T("update.locale_file_missing", i18n.Tvars{
				Data: &i18n.TData{"file": filepath.Base(target), "locale": constants.LocaleName(code)},
			}))
			continue
		}

		content, err := afero.ReadFile(u.fs, target)
		if err != nil {
			u.log.Warn(err.Error())
			continue
		}

		table, _ := set.Table(code)
		updated := patch.Patch(string(content), members, table, maxKeyLength, constants.CommonBlockName)
		if err := afero.WriteFile(u.fs, target, []byte(updated), 0o644); err != nil {
			return err
		}

		u.log.Log(i18n.T("update.file_updated", i18n.Tvars{
			Data: &i18n.TData{"file": filepath.Base(target)},
		}), false)
	}

	return u.mergeConstantsFile(dir, common, maxKeyLength)
}

func (u Updater) mergeConstantsFile(dir string, common []string, maxKeyLength int) error {
	target := filepath.Join(dir, constants.ConstantsFileName)

	content := ""
	exists, _ := afero.Exists(u.fs, target)
	if exists {
		data, err := afero.ReadFile(u.fs, target)
		if err != nil {
			return err
		}
		content = string(data)
	}

	merged := patch.MergeConstants(content, common, maxKeyLength, constants.CommonBlockName)
	if err := afero.WriteFile(u.fs, target, []byte(merged), 0o644); err != nil {
		return err
	}

	u.log.Log(i18n.T("update.file_updated", i18n.Tvars{
		Data: &i18n.TData{"file": constants.ConstantsFileName},
	}), false)

	return nil
}
