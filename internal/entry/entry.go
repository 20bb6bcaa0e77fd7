// Package entry turns user supplied site lists into proxy list entries.
package entry

import "strings"

// Separator splits sites in an add argument
const Separator = ","

// schemes are removed wherever they occur, not only as a prefix
var schemes = []string{"http://", "https://"}

// Normalize converts a comma separated site list into entries.
// Each piece is trimmed, empty pieces are dropped, schemes are removed,
// a leading dot is added and anything from the first slash on is cut.
func Normalize(sites string) []string {
	pieces := strings.Split(sites, Separator)
	entries := make([]string, 0, len(pieces))

	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		entries = append(entries, normalizeOne(piece))
	}

	return entries
}

func normalizeOne(site string) string {
	for _, scheme := range schemes {
		site = strings.ReplaceAll(site, scheme, "")
	}

	e := "." + site
	if i := strings.Index(e, "/"); i >= 0 {
		e = e[:i]
	}
	return e
}

// Join renders entries for appending to a list file.
// Every entry is preceded by a newline so an append always starts on a fresh line.
func Join(entries []string) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString("\n")
		b.WriteString(e)
	}
	return b.String()
}

// Split returns the non-empty lines of a list file
func Split(content string) []string {
	lines := strings.Split(content, "\n")
	entries := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries
}
