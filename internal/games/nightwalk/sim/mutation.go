package sim

import "sort"

// MutationSet holds stable identities that are permanently disabled.
// The set only grows.
type MutationSet struct {
	ids map[string]struct{}
}

// NewMutationSet creates an empty set.
func NewMutationSet() MutationSet {
	return MutationSet{ids: make(map[string]struct{})}
}

// Disable adds id and reports whether it was newly added.
// Disabling an already disabled identity is a no-op.
func (m *MutationSet) Disable(id string) bool {
	if id == "" {
		return false
	}
	if _, ok := m.ids[id]; ok {
		return false
	}
	m.ids[id] = struct{}{}
	return true
}

// IsDisabled reports whether id is in the set.
func (m MutationSet) IsDisabled(id string) bool {
	_, ok := m.ids[id]
	return ok
}

// Len returns the number of disabled identities.
func (m MutationSet) Len() int {
	return len(m.ids)
}

// Sorted returns the identities in lexical order.
func (m MutationSet) Sorted() []string {
	out := make([]string, 0, len(m.ids))
	for id := range m.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
