// Package globalerrors defines shared error types.
package globalerrors

import (
	"fmt"
)

type NoLocaleFilesError struct {
	Dir string
}

func (e *NoLocaleFilesError) Error() string {
	return fmt.Sprintf("No locale files found in %s", e.Dir)
}

func (e *NoLocaleFilesError) Is(target error) bool {
	t, ok := target.(*NoLocaleFilesError)
	if !ok {
		return false
	}
	return e.Dir == t.Dir
}

//

type ProjectPathError struct {
	Path string
}

func (e *ProjectPathError) Error() string {
	return fmt.Sprintf("Project path is not a directory: %s", e.Path)
}

func (e *ProjectPathError) Is(target error) bool {
	t, ok := target.(*ProjectPathError)
	if !ok {
		return false
	}
	return e.Path == t.Path
}

//

type LocaleParseError struct {
	File string
	Err  error
}

func (e *LocaleParseError) Error() string {
	return fmt.Sprintf("Locale file cannot be parsed: %s", e.File)
}

func (e *LocaleParseError) Is(target error) bool {
	t, ok := target.(*LocaleParseError)
	if !ok {
		return false
	}
	return e.File == t.File
}

func (e *LocaleParseError) Unwrap() error {
	return e.Err
}

func LocaleParseErrorWrap(err error, file string) error {
	return &LocaleParseError{
		File: file,
		Err:  err,
	}
}
