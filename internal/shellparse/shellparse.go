// Package shellparse tokenizes interactive shell input into a command name
// and its arguments, honoring quoting so values may contain spaces.
package shellparse

import (
	"errors"
	"strings"

	"github.com/kballard/go-shellquote"
)

var ErrEmptyInput = errors.New("empty input")

// Fields splits one line of shell input into a lowercased command name and
// its remaining arguments. Quoted words stay intact, so
// `set greeting "hello world"` yields ("set", ["greeting", "hello world"]).
func Fields(line string) (cmd string, args []string, err error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return "", nil, err
	}
	if len(words) == 0 {
		return "", nil, ErrEmptyInput
	}

	return strings.ToLower(words[0]), words[1:], nil
}
