package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const gitStatusOutput = `On branch main
Changes to be committed:
  (use "git restore --staged <file>..." to unstage)
	modified:   src/app.css
	new file:   docs/guide.md
	deleted:    old/legacy.go
	renamed:    a.js -> b.js

Untracked files:
	tmp/
`

func TestFilter_KeepsOnlyMarkedLinesTrimmed(t *testing.T) {
	got := Filter(gitStatusOutput)

	require.Equal(t,
		"modified:   src/app.css\n"+
			"new file:   docs/guide.md\n"+
			"deleted:    old/legacy.go\n"+
			"renamed:    a.js -> b.js",
		got,
	)
}

func TestFilter_EmptyWhenNoMarkers(t *testing.T) {
	require.Equal(t, "", Filter(""))
	require.Equal(t, "", Filter("On branch main\nnothing to commit, working tree clean"))
}

func TestFilter_MatchesMarkerAnywhereInLine(t *testing.T) {
	got := Filter("fix: this line mentions modified: in prose\nplain line")

	require.Equal(t, "fix: this line mentions modified: in prose", got)
}

func TestCountMarkers(t *testing.T) {
	got := CountMarkers(Filter(gitStatusOutput))

	require.Equal(t, Tally{Modified: 1, Added: 1, Deleted: 1, Renamed: 1}, got)
	require.Equal(t, 4, got.Total())
}

func TestCountMarkers_CountsEveryOccurrence(t *testing.T) {
	// Two markers on one line are both counted.
	got := CountMarkers("modified: notes-modified:.txt")

	require.Equal(t, 2, got.Modified)
	require.Equal(t, []Kind{Modified}, got.Present())
}
