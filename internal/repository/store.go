package repository

import "sync"

// entity is a record with a repository-assigned integer id. Zero means
// the record has never been saved.
type entity interface {
	EntityID() int
	AssignID(id int)
}

// sequenceStore keeps records in insertion order and hands out ids from a
// counter that starts at 1 and never goes back.
type sequenceStore[T entity] struct {
	mu     sync.Mutex
	items  []T
	nextID int
}

func newSequenceStore[T entity]() *sequenceStore[T] {
	return &sequenceStore[T]{items: []T{}, nextID: 1}
}

// save inserts a new record or replaces the slot holding the same id. A
// record whose id is set but absent from the store is appended as is.
func (s *sequenceStore[T]) save(item T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.EntityID() == 0 {
		item.AssignID(s.nextID)
		s.nextID++
		s.items = append(s.items, item)
		return item
	}

	if i := s.indexOf(item.EntityID()); i >= 0 {
		s.items[i] = item
		return item
	}
	s.items = append(s.items, item)
	return item
}

// remove deletes the first record with id and reports whether one existed
func (s *sequenceStore[T]) remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

func (s *sequenceStore[T]) get(id int) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// all returns the records in insertion order. The slice is a snapshot; the
// records themselves are shared.
func (s *sequenceStore[T]) all() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *sequenceStore[T]) filter(keep func(T) bool) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []T{}
	for _, item := range s.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// indexOf must be called with mu held
func (s *sequenceStore[T]) indexOf(id int) int {
	for i, item := range s.items {
		if item.EntityID() == id {
			return i
		}
	}
	return -1
}
