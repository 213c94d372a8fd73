package render

import "slices"

// Handle identifies a group of drawables in a Scene. The zero Handle is never issued.
type Handle uint64

type group struct {
	handle Handle
	items  []Drawable
}

// Scene is an ordered collection of drawable groups. Owners keep the Handle
// of their group and swap its contents in one call instead of filtering the
// whole scene.
type Scene struct {
	next   Handle
	groups []group
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends a new group holding a copy of items and returns its handle.
func (s *Scene) Add(items ...Drawable) Handle {
	s.next++
	s.groups = append(s.groups, group{handle: s.next, items: slices.Clone(items)})
	return s.next
}

// Replace swaps the contents of the group h for a copy of items, keeping its
// place in the draw order. An unknown or zero handle adds a new group instead. The returned
// handle is the one to use from now on.
func (s *Scene) Replace(h Handle, items []Drawable) Handle {
	if i := s.index(h); i >= 0 {
		s.groups[i].items = slices.Clone(items)
		return h
	}
	return s.Add(items...)
}

// Remove deletes the group h. It reports whether the group existed.
func (s *Scene) Remove(h Handle) bool {
	i := s.index(h)
	if i < 0 {
		return false
	}
	s.groups = append(s.groups[:i], s.groups[i+1:]...)
	return true
}

// Group returns the drawables in group h, or nil.
func (s *Scene) Group(h Handle) []Drawable {
	if i := s.index(h); i >= 0 {
		return s.groups[i].items
	}
	return nil
}

// Len returns the total number of drawables.
func (s *Scene) Len() int {
	n := 0
	for _, g := range s.groups {
		n += len(g.items)
	}
	return n
}

// AppendTo appends every drawable, in group order, to dst.
func (s *Scene) AppendTo(dst []Drawable) []Drawable {
	for _, g := range s.groups {
		dst = append(dst, g.items...)
	}
	return dst
}

func (s *Scene) index(h Handle) int {
	if h == 0 {
		return -1
	}
	for i, g := range s.groups {
		if g.handle == h {
			return i
		}
	}
	return -1
}
