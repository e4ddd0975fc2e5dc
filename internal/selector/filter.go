package selector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ErrEmptyFilter reports that no usable pattern survived compilation.
var ErrEmptyFilter = errors.New("no filter patterns left after stripping comments and blank lines")

// FilterSet holds compiled stdin patterns, each anchored to match a
// whole leading package-name token.
type FilterSet struct {
	patterns []*regexp.Regexp
}

// Compile reads newline-delimited patterns: "#" comments are stripped,
// surrounding whitespace trimmed, blank lines dropped. Each surviving
// pattern is wrapped so it must match the entire first token of a line,
// not a substring anywhere in it.
func Compile(r io.Reader) (*FilterSet, error) {
	var patterns []*regexp.Regexp

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		re, err := regexp.Compile(`^(?:` + line + `)(?:\s|$)`)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", line, err)
		}
		patterns = append(patterns, re)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(patterns) == 0 {
		return nil, ErrEmptyFilter
	}
	return &FilterSet{patterns: patterns}, nil
}

// Match reports whether the line's leading name token matches any
// pattern. A bare package name matches the same way a full row does.
func (f *FilterSet) Match(line string) bool {
	for _, re := range f.patterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// Len returns the number of compiled patterns.
func (f *FilterSet) Len() int {
	return len(f.patterns)
}
