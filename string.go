package smallset

import (
	"strconv"
	"strings"
)

// String renders the set as an ascending comma-separated element list in
// parentheses, e.g. "()", "(5)" or "(5,31)".
func (s Set) String() string {
	return s.Join(",", "(", ")")
}

// Join renders the set with the given delimiter, prefix and suffix, in
// ascending order. The empty set renders as prefix immediately followed
// by suffix.
func (s Set) Join(delimiter, prefix, suffix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	first := true
	for e := range s.All() {
		if !first {
			b.WriteString(delimiter)
		}
		b.WriteString(strconv.Itoa(int(e)))
		first = false
	}
	b.WriteString(suffix)
	return b.String()
}
