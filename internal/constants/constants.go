// Package constants defines shared constant values.
package constants

import (
	"os"
	"strings"
)

// AppName is the project identifier used in logs and metadata.
const AppName = "localiser"

// CommandName is the primary CLI command name.
const CommandName = "localiser"

// CommonBlockName is the object key under which shared translations are
// merged into the project's locale sources, and the prefix of the dotted
// reference strings emitted into constants.js.
const CommonBlockName = "common"

// ConstantsFileName is the generated reference-constants file inside the
// target project.
const ConstantsFileName = "constants.js"

var defaultLocaleNames = []struct {
	code string
	name string
}{
	{"en", "English"},
	{"hi", "Hindi"},
	{"kn", "Kannada"},
	{"ta", "Tamil"},
	{"te", "Telugu"},
	{"mr", "Marathi"},
	{"bn", "Bengali"},
}

// SupportedLocales returns the locale codes the tool recognises, in a stable
// order. The built-in table can be extended without a source change through
// LOCALISER_LOCALES, a comma separated list of code=Name pairs.
func SupportedLocales() []string {
	codes := make([]string, 0, len(defaultLocaleNames))
	for _, locale := range defaultLocaleNames {
		codes = append(codes, locale.code)
	}
	for _, extra := range envLocales() {
		if !contains(codes, extra.code) {
			codes = append(codes, extra.code)
		}
	}
	return codes
}

// LocaleName returns the human readable name of a locale code, falling back
// to the code itself.
func LocaleName(code string) string {
	for _, extra := range envLocales() {
		if extra.code == code {
			return extra.name
		}
	}
	for _, locale := range defaultLocaleNames {
		if locale.code == code {
			return locale.name
		}
	}
	return code
}

type localeName struct {
	code string
	name string
}

func envLocales() []localeName {
	raw, present := os.LookupEnv("LOCALISER_LOCALES")
	if !present {
		return nil
	}

	pairs := strings.Split(raw, ",")
	locales := make([]localeName, 0, len(pairs))
	for _, pair := range pairs {
		code, name, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found || code == "" {
			continue
		}
		locales = append(locales, localeName{code: code, name: name})
	}
	return locales
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
