package status

import (
	"bufio"
	"strings"
)

const renameArrow = " -> "

// Parse reads tagged lines into records. Unlike Filter, a line only counts
// when the marker opens it.
func Parse(report string) []ChangeRecord {

	var records []ChangeRecord

	scanner := bufio.NewScanner(strings.NewReader(report))

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		rec, ok := parseLine(line)
		if !ok {
			continue
		}

		records = append(records, rec)
	}

	return records
}

func parseLine(line string) (ChangeRecord, bool) {

	for _, k := range Kinds {

		rest, ok := strings.CutPrefix(line, markers[k])
		if !ok {
			continue
		}

		path := strings.TrimSpace(rest)
		if path == "" {
			return ChangeRecord{}, false
		}

		if k != Renamed {
			return ChangeRecord{Kind: k, Path: path}, true
		}

		i := strings.LastIndex(path, renameArrow)
		if i < 0 {
			return ChangeRecord{}, false
		}

		return ChangeRecord{
			Kind:         Renamed,
			Path:         strings.TrimSpace(path[:i]),
			RenameTarget: strings.TrimSpace(path[i+len(renameArrow):]),
		}, true
	}

	return ChangeRecord{}, false
}

func TallyRecords(records []ChangeRecord) Tally {

	var t Tally
	for _, r := range records {
		t.add(r.Kind, 1)
	}

	return t
}

// Render writes records the way `git status` prints staged changes.
func Render(records []ChangeRecord) string {

	var b strings.Builder

	for _, r := range records {

		b.WriteString("\t" + markers[r.Kind] + "   " + r.Path)

		if r.Kind == Renamed {
			b.WriteString(renameArrow + r.RenameTarget)
		}

		b.WriteString("\n")
	}

	return b.String()
}
