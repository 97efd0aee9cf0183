// Package patch merges generated key/value blocks into existing JavaScript
// locale sources. It deliberately treats the files as plain text: the
// insertion point is found by brace matching, not by parsing, and the output
// is only correct when the file's last closing brace (or the trailing `}};`
// closure) marks the true boundary of the exported object. Malformed input
// can produce broken output; that is an accepted limitation.
package patch

import (
	"strings"

	"localiser/internal/locales"
	"localiser/internal/sanitize"
)

const (
	blockIndent = "    "
	entryIndent = "        "
)

// Members is a membership view over a key set.
type Members map[string]struct{}

func NewMembers(keys []string) Members {
	members := make(Members, len(keys))
	for _, key := range keys {
		members[key] = struct{}{}
	}
	return members
}

func (m Members) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Block renders the translation block for every key of the table that is also
// in common, iterating in the table's key order. Keys are sanitized, values
// get their placeholders translated and are quoted according to content.
func Block(table locales.Table, common Members, maxKeyLength int, blockName string) string {
	lines := make([]string, 0, table.Len())
	for _, key := range table.Keys() {
		if !common.Has(key) {
			continue
		}
		value, _ := table.Value(key)
		translated := sanitize.TranslatePlaceholders(value)
		lines = append(lines, entryIndent+sanitize.Sanitize(key, maxKeyLength)+": "+quote(translated))
	}

	return blockIndent + blockName + ": {\n" + strings.Join(lines, ",\n") + "\n" + blockIndent + "}"
}

// quote wraps a translated value for embedding in generated source. Complex
// strings go into a template literal, which tolerates embedded newlines and
// quotes; everything else gets plain double quotes.
func quote(value string) string {
	if isComplex(value) {
		return "`" + value + "`"
	}
	return `"` + value + `"`
}

// isComplex reports whether the value contains a newline, single quote,
// backslash or `<`. A literal \u escape is covered by the backslash check.
func isComplex(value string) bool {
	return strings.ContainsAny(value, "\n'\\<")
}

// Patch inserts the rendered common block into content.
//
// A file without any closing brace gets the block appended after two
// newlines. When the file ends in a `}};` closure sitting within 5 characters
// of the last brace, the naive last-brace search would find the nested
// object's partner instead of the outer one, so the block goes in right
// before that closure. Otherwise the block is inserted before the last `}`,
// with a separating comma added to the previous entry when needed.
func Patch(content string, common Members, table locales.Table, maxKeyLength int, blockName string) string {
	block := Block(table, common, maxKeyLength, blockName)

	lastBrace := strings.LastIndex(content, "}")
	if lastBrace == -1 {
		return content + "\n\n" + block
	}

	nested := strings.LastIndex(content, "}};")
	if nested != -1 && nested > lastBrace-5 {
		return content[:nested] + block + ",\n" + content[nested:]
	}

	prefix := content[:lastBrace]
	if len(prefix) > 0 && !strings.HasSuffix(prefix, ",\n") {
		prefix = prefix[:len(prefix)-1] + "," + prefix[len(prefix)-1:]
	}

	return prefix + block + ",\n" + content[lastBrace:]
}
