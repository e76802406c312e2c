// internal/runutil/lru_set.go
package runutil

import "container/list"

// DefaultSetCapacity bounds a set built with a non-positive capacity.
const DefaultSetCapacity = 200_000

// LRUSet remembers up to a fixed number of keys, evicting the least
// recently added or re-added key first. Not safe for concurrent use.
type LRUSet[K comparable] struct {
	cap   int
	order *list.List // front = most recent
	index map[K]*list.Element
}

func NewLRUSet[K comparable](capacity int) *LRUSet[K] {
	if capacity <= 0 {
		capacity = DefaultSetCapacity
	}
	return &LRUSet[K]{cap: capacity, order: list.New(), index: make(map[K]*list.Element)}
}

// Add records k and reports whether it was already present.
func (s *LRUSet[K]) Add(k K) (seen bool) {
	if e, ok := s.index[k]; ok {
		s.order.MoveToFront(e)
		return true
	}
	s.index[k] = s.order.PushFront(k)
	if s.order.Len() > s.cap {
		oldest := s.order.Back()
		s.order.Remove(oldest)
		delete(s.index, oldest.Value.(K))
	}
	return false
}

func (s *LRUSet[K]) Len() int { return s.order.Len() }
