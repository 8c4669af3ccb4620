package common

import "strings"

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ContainsPattern builds a LIKE pattern with '!' as the escape character,
// which both MySQL and SQLite accept without extra quoting. Use it with
// "col LIKE ? ESCAPE '!'".
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
