// file: internals/helpers/diff.go
package helper

// DiffIDs reconciles a linked id set against a desired target set:
// toAdd = desired - existing, toRemove = existing - desired. Ids present in
// both are untouched. Inputs may contain duplicates; output sets never do.
// The whole diff is computed before any DB mutation so the caller can apply
// add-then-delete inside one transaction.
func DiffIDs(existing, desired []uint) (toAdd, toRemove []uint) {
	have := make(map[uint]struct{}, len(existing))
	want := make(map[uint]struct{}, len(desired))

	for _, id := range existing {
		have[id] = struct{}{}
	}
	for _, id := range desired {
		if _, dup := want[id]; dup {
			continue
		}
		want[id] = struct{}{}
		if _, ok := have[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	seen := make(map[uint]struct{}, len(existing))
	for _, id := range existing {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := want[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}
