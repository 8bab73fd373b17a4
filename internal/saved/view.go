package saved

import "github.com/honeycarbs/jobboard/internal/domain"

// View is the saved-jobs screen state. Removals are local to the view and
// only reach the Set through Set.Merge.
type View struct {
	snap    Snapshot
	ids     []string
	removed []string
}

func NewView(snap Snapshot) *View {
	return &View{
		snap: snap,
		ids:  append([]string(nil), snap.IDs...),
	}
}

// Remove drops id from the view. It reports whether id was present.
func (v *View) Remove(id string) bool {
	for i, cur := range v.ids {
		if cur == id {
			v.ids = append(v.ids[:i], v.ids[i+1:]...)
			v.removed = append(v.removed, id)
			return true
		}
	}
	return false
}

func (v *View) Contains(id string) bool {
	for _, cur := range v.ids {
		if cur == id {
			return true
		}
	}
	return false
}

// IDs returns the ids still shown
func (v *View) IDs() []string {
	return append([]string(nil), v.ids...)
}

// Jobs returns the records still shown, in snapshot order
func (v *View) Jobs() []domain.Job {
	return v.snap.Reconcile(v.ids)
}

// Lookup finds a shown job
func (v *View) Lookup(id string) (domain.Job, bool) {
	if !v.Contains(id) {
		return domain.Job{}, false
	}
	for _, j := range v.snap.Records {
		if j.ID == id {
			return j, true
		}
	}
	return domain.Job{}, false
}

// Removed returns the ids dropped since the view opened, in removal order
func (v *View) Removed() []string {
	return append([]string(nil), v.removed...)
}

// Snapshot returns the snapshot the view was opened with
func (v *View) Snapshot() Snapshot {
	return v.snap
}
