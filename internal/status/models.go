package status

type Kind string

const (
	Modified Kind = "modified"
	Added    Kind = "added"
	Deleted  Kind = "deleted"
	Renamed  Kind = "renamed"
)

// Kinds is the fixed evaluation order used when rendering and tallying.
var Kinds = []Kind{Modified, Added, Deleted, Renamed}

type ChangeRecord struct {
	Kind Kind
	Path string

	// RenameTarget is only set for Renamed records.
	RenameTarget string
}

type Tally struct {
	Modified int `json:"modified"`
	Added    int `json:"added"`
	Deleted  int `json:"deleted"`
	Renamed  int `json:"renamed"`
}

func (t Tally) Total() int {
	return t.Modified + t.Added + t.Deleted + t.Renamed
}

func (t Tally) Count(k Kind) int {

	switch k {
	case Modified:
		return t.Modified
	case Added:
		return t.Added
	case Deleted:
		return t.Deleted
	case Renamed:
		return t.Renamed
	}

	return 0
}

// Present reports which kinds have a non-zero count.
func (t Tally) Present() []Kind {

	var out []Kind
	for _, k := range Kinds {
		if t.Count(k) > 0 {
			out = append(out, k)
		}
	}

	return out
}

func (t *Tally) add(k Kind, n int) {

	switch k {
	case Modified:
		t.Modified += n
	case Added:
		t.Added += n
	case Deleted:
		t.Deleted += n
	case Renamed:
		t.Renamed += n
	}
}
