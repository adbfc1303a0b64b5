// Package dedup tracks which listing identifiers have already been emitted
// during this process's lifetime.
package dedup

// SeenSet is the across-cycle identity set. It grows monotonically and is
// never pruned. The poll loop is the single writer; wrap with a mutex before
// introducing concurrent cycles.
type SeenSet struct {
	ids map[string]struct{}
}

func NewSeenSet() *SeenSet {
	return &SeenSet{ids: make(map[string]struct{})}
}

// Admit returns true the first time an identifier is seen and false forever
// after. An identifier admitted once is never re-emitted, even if its
// evaluation would differ on a later cycle.
func (s *SeenSet) Admit(id string) bool {
	if _, seen := s.ids[id]; seen {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Len reports how many identifiers have been admitted so far.
func (s *SeenSet) Len() int {
	return len(s.ids)
}
