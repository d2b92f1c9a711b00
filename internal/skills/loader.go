package skills

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotConfigured is returned when a source carries no skill names at all.
var ErrNotConfigured = errors.New("skill catalog is not configured")

// Source describes where the skill catalog comes from.
type Source struct {
	// Name is used in error messages to give more context about the catalog.
	Name string
	// Names is an inline list provided via configuration.
	Names []string
	// File points to a file with whitespace separated skill names. When set it
	// takes precedence over Names.
	File string
}

// Load returns the skill names of src with surrounding whitespace removed and
// blank entries skipped. ErrNotConfigured is returned when src is empty.
func Load(src Source) ([]string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "skill catalog"
	}

	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}

		names := strings.Fields(string(data))
		if len(names) == 0 {
			return nil, fmt.Errorf("%s file %q is empty", name, file)
		}
		return names, nil
	}

	names := make([]string, 0, len(src.Names))
	for _, n := range src.Names {
		n = strings.TrimSpace(n)
		if n != "" {
			names = append(names, n)
		}
	}

	if len(names) == 0 {
		return nil, ErrNotConfigured
	}

	return names, nil
}
