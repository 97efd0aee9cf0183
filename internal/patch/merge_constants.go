package patch

import (
	"strings"

	"localiser/internal/sanitize"
)

// MergeConstants merges reference-constant lines for the common keys into the
// constants file content. Each key yields a line of the form
//
//	SANITIZED_UPPER: "blockName.sanitized"
//
// in the given key order. A file without a closing brace gets a fresh
// module.exports object; otherwise the lines go in before the last `}` with
// the same trailing-comma rule as Patch's simple branch (no nested-closure
// heuristic here). Merging the same keys twice duplicates the lines; the
// generator makes no idempotence promise.
func MergeConstants(content string, common []string, maxKeyLength int, blockName string) string {
	lines := make([]string, 0, len(common))
	for _, key := range common {
		name := sanitize.Sanitize(key, maxKeyLength)
		lines = append(lines, blockIndent+strings.ToUpper(name)+": \""+blockName+"."+name+"\"")
	}
	body := strings.Join(lines, ",\n")

	lastBrace := strings.LastIndex(content, "}")
	if lastBrace == -1 {
		object := "module.exports = {\n" + body + "\n};\n"
		if content == "" {
			return object
		}
		return content + "\n" + object
	}

	prefix := content[:lastBrace]
	if len(prefix) > 0 && !strings.HasSuffix(prefix, ",\n") {
		prefix = prefix[:len(prefix)-1] + "," + prefix[len(prefix)-1:]
	}

	return prefix + body + ",\n" + content[lastBrace:]
}
