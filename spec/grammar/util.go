package grammar

import "strings"

var unescaper = strings.NewReplacer(
	`\"`, `"`,
	`\\`, `\`,
)

// UnescapeLiteral interprets the escape sequences of a literal without its quotes.
// For example, UnescapeLiteral(`a\"b`) returns `a"b`.
func UnescapeLiteral(s string) string {
	return unescaper.Replace(s)
}
