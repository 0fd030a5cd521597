// Package names holds the free-text normalization that turns raw entry
// names into their cookbook form. It is pure: same input, same output,
// and it never consults the cookbook.
package names

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrEmptyName means nothing was left after stripping.
var ErrEmptyName = errors.New("name is empty after normalization")

// Normalize rewrites a raw name: hyphens and underscores become spaces,
// every other non-letter non-space rune is dropped, runs of whitespace
// collapse to single spaces, and each word is title-cased.
func Normalize(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r == '-' || r == '_':
			b.WriteRune(' ')
		case r == ' ' || unicode.IsLetter(r):
			b.WriteRune(r)
		}
	}

	words := strings.Fields(b.String())
	if len(words) == 0 {
		return "", errors.Wrapf(ErrEmptyName, "%q", raw)
	}

	// cases.Caser is stateful, so build one per call.
	return cases.Title(language.English).String(strings.Join(words, " ")), nil
}
