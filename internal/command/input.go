package command

import (
	"bufio"
	"fmt"
	"strings"
)

// ReadCatalog consumes the catalog header from sc: a skill count followed by
// that many skill names. Names may share the line of the count or span
// several lines, but the header must end at a line boundary.
func ReadCatalog(sc *bufio.Scanner) ([]string, error) {
	count := -1
	var names []string

	for count < 0 || len(names) < count {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("reading skill catalog: %w", err)
			}
			if count < 0 {
				return nil, fmt.Errorf("reading skill catalog: missing skill count")
			}
			return nil, fmt.Errorf("reading skill catalog: expected %d skills, got %d", count, len(names))
		}

		tokens := strings.Fields(sc.Text())
		if len(tokens) == 0 {
			continue
		}

		if count < 0 {
			n, err := decodeInt(tokens[0])
			if err != nil {
				return nil, fmt.Errorf("reading skill count: %w", err)
			}
			if n < 0 {
				return nil, fmt.Errorf("reading skill count: negative count %d", n)
			}
			count = n
			tokens = tokens[1:]
		}

		names = append(names, tokens...)
		if len(names) > count {
			return nil, fmt.Errorf("reading skill catalog: expected %d skills, got at least %d", count, len(names))
		}
	}

	return names, nil
}

// looksLikeCatalogHeader reports whether line starts with a skill count rather
// than a command name.
func looksLikeCatalogHeader(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false
	}
	n, err := decodeInt(tokens[0])
	return err == nil && n >= 0
}
