// Package ini reads the INI files used for startup configuration.
//
// Lines starting with '#' or ';' are comments. "[name]" opens a section and
// every other line is an entry: the key runs up to the first '=', space or
// tab, the separators are skipped and the value is the rest of the line.
// Names are case-sensitive and the first match wins.
package ini

import (
	"os"

	"github.com/pkg/errors"
)

type Entry struct {
	Key   string
	Value string
}

type Section struct {
	Name    string
	Entries []Entry
}

// File holds sections in file order
type File struct {
	Sections []Section
}

// Parse reads INI data
func Parse(data []byte) (*File, error) {
	return NewParser(data).Parse()
}

// Load reads and parses the file at path
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open ini file")
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return f, nil
}

// Section returns the first section called name
func (f *File) Section(name string) (*Section, bool) {
	for i := range f.Sections {
		if f.Sections[i].Name == name {
			return &f.Sections[i], true
		}
	}
	return nil, false
}

// Value returns the first value of key in the first section called section.
// Later sections with the same name are not consulted.
func (f *File) Value(section, key string) (string, bool) {
	s, ok := f.Section(section)
	if !ok {
		return "", false
	}
	for _, e := range s.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// ValueOr returns the value of key or def when it is absent
func (f *File) ValueOr(section, key, def string) string {
	if v, ok := f.Value(section, key); ok {
		return v
	}
	return def
}

// SectionNames returns the section names in file order
func (f *File) SectionNames() []string {
	names := make([]string, len(f.Sections))
	for i, s := range f.Sections {
		names[i] = s.Name
	}
	return names
}

// Keys returns the keys of the first section called section
func (f *File) Keys(section string) []string {
	s, ok := f.Section(section)
	if !ok {
		return nil
	}
	keys := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		keys[i] = e.Key
	}
	return keys
}
