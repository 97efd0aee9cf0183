package patch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeConstantsIntoEmptyFile(t *testing.T) {
	result := MergeConstants("", []string{"Welcome Text", "App Name"}, 0, "common")

	expected := "module.exports = {\n" +
		"    WELCOME_TEXT: \"common.welcome_text\",\n" +
		"    APP_NAME: \"common.app_name\"\n" +
		"};\n"
	assert.Equal(t, expected, result)
}

func TestMergeConstantsIntoExistingFile(t *testing.T) {
	content := "module.exports = {\n    OLD: \"common.old\"\n};"

	result := MergeConstants(content, []string{"Welcome Text"}, 0, "common")

	expected := "module.exports = {\n" +
		"    OLD: \"common.old\",\n" +
		"    WELCOME_TEXT: \"common.welcome_text\",\n" +
		"};"
	assert.Equal(t, expected, result)
}

func TestMergeConstantsTruncatesKeys(t *testing.T) {
	result := MergeConstants("", []string{"Welcome Text"}, 7, "common")

	assert.Contains(t, result, "WELCOME: \"common.welcome\"")
}

// Merging the same key set twice duplicates the lines. The generator makes no
// idempotence promise; this pins the behavior rather than endorsing it.
func TestMergeConstantsIsNotIdempotent(t *testing.T) {
	once := MergeConstants("", []string{"Welcome Text"}, 0, "common")
	twice := MergeConstants(once, []string{"Welcome Text"}, 0, "common")

	assert.Equal(t, 2, strings.Count(twice, "WELCOME_TEXT"))
}

func TestMergeConstantsAppendsAfterUnbracedContent(t *testing.T) {
	result := MergeConstants("// constants", []string{"Welcome Text"}, 0, "common")

	expected := "// constants\n" +
		"module.exports = {\n" +
		"    WELCOME_TEXT: \"common.welcome_text\"\n" +
		"};\n"
	assert.Equal(t, expected, result)
}
