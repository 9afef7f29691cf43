package message

import "commit-assistant/internal/status"

// Shape is the category combination of a tally.
type Shape int

const (
	Empty Shape = iota
	AddedOnly
	DeletedOnly
	RenamedOnly
	ModifiedOnly
	Mixed
)

func (s Shape) String() string {

	switch s {
	case Empty:
		return "empty"
	case AddedOnly:
		return "added_only"
	case DeletedOnly:
		return "deleted_only"
	case RenamedOnly:
		return "renamed_only"
	case ModifiedOnly:
		return "modified_only"
	case Mixed:
		return "mixed"
	}

	return "unknown"
}

func ShapeOf(t status.Tally) Shape {

	present := t.Present()

	switch len(present) {
	case 0:
		return Empty
	case 1:
		// single category, handled below
	default:
		return Mixed
	}

	switch present[0] {
	case status.Added:
		return AddedOnly
	case status.Deleted:
		return DeletedOnly
	case status.Renamed:
		return RenamedOnly
	default:
		return ModifiedOnly
	}
}
