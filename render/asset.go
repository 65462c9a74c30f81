package render

import (
	"io/ioutil"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// FallbackCherry is drawn when no cherry asset could be loaded.
const FallbackCherry = '●'

// LoadCherry reads the cherry glyph from a text file: the first non-space
// character is used.
func LoadCherry(path string) (rune, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return FallbackCherry, errors.Wrap(err, "unable to read cherry asset")
	}
	s := strings.TrimSpace(string(data))
	if s == "" {
		return FallbackCherry, errors.Errorf("cherry asset %s is empty", path)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return FallbackCherry, errors.Errorf("cherry asset %s is not valid utf-8", path)
	}
	return r, nil
}
