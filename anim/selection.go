package anim

import (
	"sort"

	"github.com/kamstrup/intmap"
)

// SelectionSet is the set of currently selected keyframes, keyed by their
// packed KeyframeID. Membership is structural: an ID is interchangeable
// with another only while the referenced keyframe has not moved. The
// Editor rebuilds entries with post-move identities after every batch move.
type SelectionSet struct {
	ids *intmap.Map[KeyframeID, struct{}]
}

// NewSelectionSet creates an empty selection.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{
		ids: intmap.New[KeyframeID, struct{}](64),
	}
}

// Add inserts an identity into the selection.
func (s *SelectionSet) Add(id KeyframeID) {
	s.ids.Put(id, struct{}{})
}

// Remove deletes an identity from the selection, no-op if absent.
func (s *SelectionSet) Remove(id KeyframeID) {
	s.ids.Del(id)
}

// Contains reports whether the identity is selected.
func (s *SelectionSet) Contains(id KeyframeID) bool {
	_, ok := s.ids.Get(id)
	return ok
}

// Toggle flips the identity's membership. Used under a modifier-key click.
func (s *SelectionSet) Toggle(id KeyframeID) {
	if s.Contains(id) {
		s.ids.Del(id)
		return
	}
	s.ids.Put(id, struct{}{})
}

// ReplaceWithSingle clears the selection and selects only the given
// identity. Used on a plain click.
func (s *SelectionSet) ReplaceWithSingle(id KeyframeID) {
	s.Clear()
	s.ids.Put(id, struct{}{})
}

// Clear empties the selection. Clearing an empty selection is a no-op.
func (s *SelectionSet) Clear() {
	if s.ids.Len() == 0 {
		return
	}
	s.ids = intmap.New[KeyframeID, struct{}](64)
}

// Len returns the number of selected keyframes.
func (s *SelectionSet) Len() int {
	return s.ids.Len()
}

// IDs returns a snapshot of the selected identities sorted by object,
// property and frame. Mutating the selection while iterating the snapshot
// is safe.
func (s *SelectionSet) IDs() []KeyframeID {
	out := make([]KeyframeID, 0, s.ids.Len())
	s.ids.ForEach(func(id KeyframeID, _ struct{}) bool {
		out = append(out, id)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
