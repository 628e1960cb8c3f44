package id

import (
	"github.com/google/uuid"
)

// UUID generates a UUID v4 (random).
// Returns a string in the format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
func UUID() string {
	return uuid.NewString()
}

// Sequence is a monotonic counter for one entity kind.
type Sequence struct {
	start int
	next  int
}

// NewSequence returns a Sequence whose first value is start.
func NewSequence(start int) *Sequence {
	return &Sequence{start: start, next: start}
}

// Next returns the current value and advances the counter.
func (s *Sequence) Next() int {
	v := s.next
	s.next++
	return v
}

// Peek returns the value the next call to Next will return.
func (s *Sequence) Peek() int {
	return s.next
}

// Observe moves the counter past v if v has already been used,
// e.g. by seed data carrying explicit ids.
func (s *Sequence) Observe(v int) {
	if v >= s.next {
		s.next = v + 1
	}
}

// Reset rewinds the counter to its start value.
func (s *Sequence) Reset() {
	s.next = s.start
}
