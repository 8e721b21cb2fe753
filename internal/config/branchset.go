package config

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// BranchSet is an immutable, unordered set of branch names. The zero value
// is the empty set.
type BranchSet struct {
	names map[string]struct{}
}

// NewBranchSet builds a set from the given names. Duplicates collapse.
func NewBranchSet(names ...string) BranchSet {
	return CollectBranchSet(slices.Values(names))
}

// CollectBranchSet builds a set from every name yielded by seq.
// A nil seq yields the empty set.
func CollectBranchSet(seq iter.Seq[string]) BranchSet {
	names := make(map[string]struct{})
	if seq != nil {
		for name := range seq {
			names[name] = struct{}{}
		}
	}
	return BranchSet{names: names}
}

// Len returns the number of distinct names.
func (s BranchSet) Len() int { return len(s.names) }

// Contains reports whether name is a member.
func (s BranchSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// All iterates the names in sorted order.
func (s BranchSet) All() iter.Seq[string] {
	return slices.Values(s.Sorted())
}

// Sorted returns the names as a new sorted slice.
func (s BranchSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s.names))
}

// Equal reports whether both sets hold the same names.
func (s BranchSet) Equal(other BranchSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for name := range s.names {
		if !other.Contains(name) {
			return false
		}
	}
	return true
}

func (s BranchSet) String() string {
	return "[" + strings.Join(s.Sorted(), " ") + "]"
}
