package globalerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoLocaleFilesError(t *testing.T) {
	err := &NoLocaleFilesError{Dir: "."}

	assert.Equal(t, "No locale files found in .", err.Error())
	assert.ErrorIs(t, err, &NoLocaleFilesError{Dir: "."})
	assert.NotErrorIs(t, err, &NoLocaleFilesError{Dir: "/tmp"})
}

func TestProjectPathError(t *testing.T) {
	err := &ProjectPathError{Path: "/missing"}

	assert.Equal(t, "Project path is not a directory: /missing", err.Error())
	assert.ErrorIs(t, err, &ProjectPathError{Path: "/missing"})
}

func TestLocaleParseError(t *testing.T) {
	underlying := errors.New("unexpected end of JSON input")
	err := LocaleParseErrorWrap(underlying, "ta.json")

	assert.Equal(t, "Locale file cannot be parsed: ta.json", err.Error())
	assert.ErrorIs(t, err, underlying)

	var parseErr *LocaleParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "ta.json", parseErr.File)
}
