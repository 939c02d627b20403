package registry

import (
	"strings"

	"github.com/lixenwraith/sx3/parameter"
)

// Search iterates variable names matching a prefix, case-insensitively, in
// table order. A name with a '.' after the prefix is reported only up to and
// including that dot, and the names sharing that group are skipped, so
// "view.x" and "view.y" collapse to a single "view." entry.
type Search struct {
	prefix string
	names  []string
	next   int
}

// Search starts a search over a snapshot of the current names. Prefixes are
// truncated to parameter.MaxSearchLength-1 bytes.
func (r *Registry) Search(prefix string) *Search {
	if len(prefix) >= parameter.MaxSearchLength {
		prefix = prefix[:parameter.MaxSearchLength-1]
	}

	names := r.snapshot()

	return &Search{prefix: prefix, names: names}
}

// Next returns the next match, or false when the search is exhausted
func (s *Search) Next() (string, bool) {
	for s.next < len(s.names) {
		name := s.names[s.next]
		s.next++
		if !hasPrefixFold(name, s.prefix) {
			continue
		}

		if dot := strings.IndexByte(name[len(s.prefix):], '.'); dot >= 0 {
			name = name[:len(s.prefix)+dot+1]
			for s.next < len(s.names) && hasPrefixFold(s.names[s.next], name) {
				s.next++
			}
		}
		return name, true
	}
	return "", false
}

// Names runs a search to completion
func (r *Registry) Names(prefix string) []string {
	var out []string
	s := r.Search(prefix)
	for name, ok := s.Next(); ok; name, ok = s.Next() {
		out = append(out, name)
	}
	return out
}
