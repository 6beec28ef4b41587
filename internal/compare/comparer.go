package compare

import (
	"sort"

	"treediff/internal/snapshot"
)

type ChangeType string

const (
	Added   ChangeType = "ADDED"
	Removed ChangeType = "REMOVED"
	Changed ChangeType = "SIZE CHANGED"
)

// Change is one difference between two snapshots. Size is the size shown
// for the record: the new size for added and changed entries, the old
// size for removed ones. Delta is nonzero only for changed entries.
type Change struct {
	Type  ChangeType
	Path  string
	Size  int64
	Delta int64
}

type Result struct {
	Added   []Change
	Removed []Change
	Changed []Change
}

func (r *Result) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0 || len(r.Changed) > 0
}

// Compare diffs two snapshots. It walks the sorted union of both key
// sets, so each result list comes out sorted by path ascending. Paths
// present in both snapshots with equal sizes produce no record.
func Compare(oldSnap, newSnap snapshot.Snapshot) *Result {
	paths := make([]string, 0, len(oldSnap)+len(newSnap))
	for path := range oldSnap {
		paths = append(paths, path)
	}
	for path := range newSnap {
		if _, exists := oldSnap[path]; !exists {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)

	result := &Result{
		Added:   make([]Change, 0),
		Removed: make([]Change, 0),
		Changed: make([]Change, 0),
	}

	for _, path := range paths {
		oldSize, inOld := oldSnap[path]
		newSize, inNew := newSnap[path]

		switch {
		case !inOld:
			result.Added = append(result.Added, Change{
				Type: Added,
				Path: path,
				Size: newSize,
			})
		case !inNew:
			result.Removed = append(result.Removed, Change{
				Type: Removed,
				Path: path,
				Size: oldSize,
			})
		case oldSize != newSize:
			result.Changed = append(result.Changed, Change{
				Type:  Changed,
				Path:  path,
				Size:  newSize,
				Delta: newSize - oldSize,
			})
		}
	}

	return result
}
