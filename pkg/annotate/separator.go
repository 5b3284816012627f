package annotate

import (
	"strings"

	"github.com/ibiology/itol/pkg/errors"
)

// Separator identifies the delimiter used throughout one annotation
// document: in the setting block, in the data block and in the
// SEPARATOR declaration line. iTOL recognizes exactly three.
type Separator string

const (
	Tab   Separator = "TAB"
	Space Separator = "SPACE"
	Comma Separator = "COMMA"
)

var delimiters = map[Separator]string{
	Tab:   "\t",
	Space: " ",
	Comma: ",",
}

// ParseSeparator resolves a case-insensitive separator name (tab, space
// or comma) to its canonical form.
func ParseSeparator(name string) (Separator, error) {
	s := Separator(strings.ToUpper(name))
	if _, ok := delimiters[s]; !ok {
		return "", errors.Newf(errors.ErrInvalidSeparator,
			"separator %q is not supported, use one of: tab, space, comma (case insensitive)", name)
	}
	return s, nil
}

// String returns the canonical uppercase name.
func (s Separator) String() string { return string(s) }

// Delimiter returns the literal delimiter character.
func (s Separator) Delimiter() string { return delimiters[s] }

// HeaderLine returns the separator declaration line embedded in every
// annotation document, e.g. "SEPARATOR COMMA".
func (s Separator) HeaderLine() string { return "SEPARATOR " + string(s) }

// Valid reports whether s is one of the recognized separators.
func (s Separator) Valid() bool {
	_, ok := delimiters[s]
	return ok
}

// orDefault falls back to the given default when the caller left the
// separator unset.
func (s Separator) orDefault(def Separator) Separator {
	if s == "" {
		return def
	}
	return s
}
