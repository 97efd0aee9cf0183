package locales

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"localiser/internal/constants"
	"localiser/internal/globalerrors"
	"localiser/internal/perf"
)

// SkippedFile records a locale file that could not be loaded. Parse failures
// are isolated per file so one broken locale does not abort the whole run.
type SkippedFile struct {
	Name string
	Err  error
}

type candidate struct {
	code string
	path string
}

// Load reads every <code>.json file in dir whose base name is a supported
// locale code. Files are parsed concurrently; the returned set preserves the
// directory-listing order of the files.
func Load(fs afero.Fs, dir string) (Set, []SkippedFile, error) {
	region := perf.StartRegion("io.locales.load")
	defer region.End()

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return Set{}, nil, err
	}

	supported := make(map[string]struct{})
	for _, code := range constants.SupportedLocales() {
		supported[code] = struct{}{}
	}

	candidates := make([]candidate, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}
		code := strings.TrimSuffix(name, filepath.Ext(name))
		if _, ok := supported[code]; !ok {
			continue
		}
		candidates = append(candidates, candidate{code: code, path: filepath.Join(dir, name)})
	}

	type loadResult struct {
		table Table
		err   error
	}
	results := make([]loadResult, len(candidates))

	group := errgroup.Group{}
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i := range candidates {
		i := i
		group.Go(func() error {
			data, err := afero.ReadFile(fs, candidates[i].path)
			if err != nil {
				results[i] = loadResult{err: err}
				return nil
			}
			table, err := decodeTable(data)
			if err != nil {
				results[i] = loadResult{err: globalerrors.LocaleParseErrorWrap(err, candidates[i].path)}
				return nil
			}
			results[i] = loadResult{table: table}
			return nil
		})
	}
	_ = group.Wait()

	set := NewSet()
	skipped := make([]SkippedFile, 0)
	for i, result := range results {
		if result.err != nil {
			skipped = append(skipped, SkippedFile{Name: filepath.Base(candidates[i].path), Err: result.err})
			continue
		}
		set.Add(candidates[i].code, result.table)
	}

	return *set, skipped, nil
}
