package compare

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"treediff/internal/snapshot"
)

func genSnapshot() gopter.Gen {
	return gen.MapOf(gen.Identifier(), gen.Int64Range(0, 1<<40))
}

func TestCompare_Antisymmetric(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("swapping old and new mirrors the result", prop.ForAll(
		func(oldRaw, newRaw map[string]int64) bool {
			oldSnap := snapshot.Snapshot(oldRaw)
			newSnap := snapshot.Snapshot(newRaw)

			forward := Compare(oldSnap, newSnap)
			backward := Compare(newSnap, oldSnap)

			if len(forward.Added) != len(backward.Removed) ||
				len(forward.Removed) != len(backward.Added) ||
				len(forward.Changed) != len(backward.Changed) {
				return false
			}

			for i, added := range forward.Added {
				mirrored := backward.Removed[i]
				if added.Path != mirrored.Path || added.Size != mirrored.Size {
					return false
				}
			}
			for i, removed := range forward.Removed {
				mirrored := backward.Added[i]
				if removed.Path != mirrored.Path || removed.Size != mirrored.Size {
					return false
				}
			}
			for i, changed := range forward.Changed {
				mirrored := backward.Changed[i]
				if changed.Path != mirrored.Path ||
					changed.Delta != -mirrored.Delta ||
					changed.Size != newSnap[changed.Path] ||
					mirrored.Size != oldSnap[mirrored.Path] {
					return false
				}
			}
			return true
		},
		genSnapshot(), genSnapshot(),
	))

	properties.Property("paths with equal sizes produce no record", prop.ForAll(
		func(raw map[string]int64, extra map[string]int64) bool {
			oldSnap := snapshot.Snapshot(raw)
			newSnap := make(snapshot.Snapshot, len(raw)+len(extra))
			for path, size := range raw {
				newSnap[path] = size
			}
			for path, size := range extra {
				newSnap[path] = size
			}

			result := Compare(oldSnap, newSnap)

			recorded := make(map[string]bool)
			for _, c := range result.Added {
				recorded[c.Path] = true
			}
			for _, c := range result.Removed {
				recorded[c.Path] = true
			}
			for _, c := range result.Changed {
				recorded[c.Path] = true
			}

			for path, oldSize := range oldSnap {
				if newSize, ok := newSnap[path]; ok && newSize == oldSize && recorded[path] {
					return false
				}
			}
			return true
		},
		genSnapshot(), genSnapshot(),
	))

	properties.TestingRun(t)
}
