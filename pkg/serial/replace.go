package serial

import (
	"regexp"
	"strings"
)

// Replacer substitutes several literal tokens in one pass. At every
// position the first listed token that matches wins, and replaced text is
// never rescanned.
type Replacer struct {
	re    *regexp.Regexp
	table map[string]string
}

// NewReplacer builds a Replacer from old, new string pairs.
// It panics if given an odd number of arguments.
func NewReplacer(oldnew ...string) *Replacer {
	if len(oldnew)%2 == 1 {
		panic("serial.NewReplacer: odd argument count")
	}
	table := make(map[string]string, len(oldnew)/2)
	quoted := make([]string, 0, len(oldnew)/2)
	for i := 0; i < len(oldnew); i += 2 {
		table[oldnew[i]] = oldnew[i+1]
		quoted = append(quoted, regexp.QuoteMeta(oldnew[i]))
	}
	return &Replacer{
		re:    regexp.MustCompile("(" + strings.Join(quoted, "|") + ")"),
		table: table,
	}
}

// Replace returns text with every token replaced.
func (r *Replacer) Replace(text string) string {
	return r.re.ReplaceAllStringFunc(text, func(m string) string { return r.table[m] })
}

var dialectTokens = NewReplacer(
	"'", `"`,
	"False", "false",
	"True", "true",
)

// ReplaceTokens converts Python literal syntax to the dialect: single
// quotes become double quotes and False/True become false/true. Matches
// inside string content are replaced too.
func ReplaceTokens(text string) string {
	return dialectTokens.Replace(text)
}
