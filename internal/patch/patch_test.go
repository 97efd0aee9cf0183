package patch

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"

	"localiser/internal/locales"
)

func welcomeTable() locales.Table {
	return locales.NewTable(
		locales.Entry{Key: "Welcome Text", Value: "Welcome"},
		locales.Entry{Key: "Only Here", Value: "skipped"},
	)
}

func welcomeMembers() Members {
	return NewMembers([]string{"Welcome Text"})
}

func TestBlock(t *testing.T) {
	block := Block(welcomeTable(), welcomeMembers(), 0, "common")

	assert.Equal(t, "    common: {\n        welcome_text: \"Welcome\"\n    }", block)
}

func TestBlockTruncatesKeys(t *testing.T) {
	block := Block(welcomeTable(), welcomeMembers(), 7, "common")

	assert.Equal(t, "    common: {\n        welcome: \"Welcome\"\n    }", block)
}

func TestBlockTranslatesPlaceholders(t *testing.T) {
	table := locales.NewTable(locales.Entry{Key: "Item Count", Value: "You have %1$s items"})
	block := Block(table, NewMembers([]string{"Item Count"}), 0, "common")

	assert.Equal(t, "    common: {\n        item_count: \"You have {0} items\"\n    }", block)
}

func TestBlockQuoting(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{
			name:     "plain value gets double quotes",
			value:    "hello",
			expected: "\"hello\"",
		},
		{
			name:     "single quote forces template literal",
			value:    "it's here",
			expected: "`it's here`",
		},
		{
			name:     "newline forces template literal",
			value:    "line one\nline two",
			expected: "`line one\nline two`",
		},
		{
			name:     "markup forces template literal",
			value:    "a <b>bold</b> move",
			expected: "`a <b>bold</b> move`",
		},
		{
			name:     "unicode escape forces template literal",
			value:    "a \\u0041 escape",
			expected: "`a \\u0041 escape`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := locales.NewTable(locales.Entry{Key: "key", Value: tt.value})
			block := Block(table, NewMembers([]string{"key"}), 0, "common")

			assert.Equal(t, "    common: {\n        key: "+tt.expected+"\n    }", block)
		})
	}
}

func TestPatchSimpleInsertion(t *testing.T) {
	content := "module.exports = {\n    greeting: \"hello\"\n};"

	result := Patch(content, welcomeMembers(), welcomeTable(), 0, "common")

	expected := "module.exports = {\n" +
		"    greeting: \"hello\",\n" +
		"    common: {\n" +
		"        welcome_text: \"Welcome\"\n" +
		"    },\n" +
		"};"
	assert.Equal(t, expected, result)
}

func TestPatchKeepsExistingTrailingComma(t *testing.T) {
	content := "module.exports = {\n    greeting: \"hello\",\n};"

	result := Patch(content, welcomeMembers(), welcomeTable(), 0, "common")

	expected := "module.exports = {\n" +
		"    greeting: \"hello\",\n" +
		"    common: {\n" +
		"        welcome_text: \"Welcome\"\n" +
		"    },\n" +
		"};"
	assert.Equal(t, expected, result)
}

func TestPatchNestedClosure(t *testing.T) {
	content := "export default {\n    app: {\n        title: \"App\"\n    }};"

	result := Patch(content, welcomeMembers(), welcomeTable(), 0, "common")

	expected := "export default {\n" +
		"    app: {\n" +
		"        title: \"App\"\n" +
		"        common: {\n" +
		"        welcome_text: \"Welcome\"\n" +
		"    },\n" +
		"}};"
	assert.Equal(t, expected, result)
}

func TestPatchEmptyContentAppendsBlock(t *testing.T) {
	result := Patch("", welcomeMembers(), welcomeTable(), 0, "common")

	assert.Equal(t, "\n\n    common: {\n        welcome_text: \"Welcome\"\n    }", result)
}

func TestPatchContentWithoutBraces(t *testing.T) {
	result := Patch("// locale entries", welcomeMembers(), welcomeTable(), 0, "common")

	assert.Equal(t, "// locale entries\n\n    common: {\n        welcome_text: \"Welcome\"\n    }", result)
}

func TestPatchSnapshot(t *testing.T) {
	table := locales.NewTable(
		locales.Entry{Key: "Welcome Text", Value: "Welcome back, %1$s!"},
		locales.Entry{Key: "Cart Total", Value: "Your cart total is %s"},
		locales.Entry{Key: "Terms Notice", Value: "See <a href='/terms'>terms</a>"},
		locales.Entry{Key: "Local Only", Value: "not shared"},
	)
	members := NewMembers([]string{"Welcome Text", "Cart Total", "Terms Notice"})

	content := "module.exports = {\n" +
		"    header: {\n" +
		"        title: \"Shop\"\n" +
		"    },\n" +
		"    footer: \"All rights reserved\"\n" +
		"};"

	snaps.MatchSnapshot(t, Patch(content, members, table, 0, "common"))
}
