// Package deck extracts main-deck card ids from .ydk deck files.
package deck

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"ygo/smallworld/internal/ordered"
)

// ExtraMarker ends the main deck section.
const ExtraMarker = "#extra"

// Read loads a deck file through fs and returns its unique main-deck ids.
func Read(ctx context.Context, fs afs.Service, URL string) (*ordered.Set[string], error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("reading deck %s: %w", URL, err)
	}
	return Parse(string(data)), nil
}

// Parse extracts card ids from .ydk content.
//  1. The first line (normally "#main") is dropped unconditionally
//  2. Lines from the first "#extra" onward are ignored
//  3. Only all-digit lines are ids; comments and other markers are skipped
//  4. Duplicates collapse; ids keep the position of their first occurrence
func Parse(content string) *ordered.Set[string] {
	ids := ordered.NewSet[string]()
	lines := strings.Split(content, "\n")
	if len(lines) == 0 {
		return ids
	}
	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if line == ExtraMarker {
			break
		}
		if isCardID(line) {
			ids.Add(line)
		}
	}
	return ids
}

func isCardID(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
