// Package words loads the shared vocabulary used to fill a crossword.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrEmptyList = errors.New("word list is empty")

// List is the deduplicated vocabulary, uppercased. Every variable starts
// from the same list; the solver narrows per-variable copies of it.
type List map[string]struct{}

// Read parses a newline-separated word list. Words are trimmed and
// uppercased; blank lines are skipped.
func Read(r io.Reader) (List, error) {
	list := make(List)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		list[w] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	if len(list) == 0 {
		return nil, ErrEmptyList
	}
	return list, nil
}

// Load reads a word list file from disk.
func Load(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Of builds a List from literal words, mainly for tests and small tools.
func Of(ws ...string) List {
	list := make(List, len(ws))
	for _, w := range ws {
		list[strings.ToUpper(w)] = struct{}{}
	}
	return list
}

// Contains reports whether w is in the list.
func (l List) Contains(w string) bool {
	_, ok := l[w]
	return ok
}
