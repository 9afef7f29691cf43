package status

import "strings"

var markers = map[Kind]string{
	Modified: "modified:",
	Added:    "new file:",
	Deleted:  "deleted:",
	Renamed:  "renamed:",
}

// Marker returns the literal tag identifying k in status text.
func Marker(k Kind) string {
	return markers[k]
}

func hasMarker(line string) bool {

	for _, k := range Kinds {
		if strings.Contains(line, markers[k]) {
			return true
		}
	}

	return false
}

// Filter keeps the lines that contain a marker anywhere, trimmed.
// Matching is not anchored, so prose such as "see modified: notes" is kept.
func Filter(report string) string {

	var kept []string

	for _, line := range strings.Split(report, "\n") {
		if !hasMarker(line) {
			continue
		}
		kept = append(kept, strings.TrimSpace(line))
	}

	return strings.Join(kept, "\n")
}

// CountMarkers counts marker occurrences in already filtered text.
func CountMarkers(filtered string) Tally {

	var t Tally
	for _, k := range Kinds {
		t.add(k, strings.Count(filtered, markers[k]))
	}

	return t
}
