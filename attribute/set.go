package attribute

import (
	"sort"

	"github.com/pkg/errors"
)

var ErrDuplicateTag = errors.New("duplicate attribute tag")

type Entry struct {
	Tag   int
	Value Value
}

// A fixed mapping from integer tags to values. It is built and validated once,
// and never changes afterward, so it is safe to read from multiple goroutines.
type Set struct {
	values map[int]Value
	tags   []int
}

func NewSet(entries ...Entry) (*Set, error) {
	s := &Set{values: make(map[int]Value, len(entries))}
	for _, entry := range entries {
		if entry.Value == nil {
			return nil, errors.Errorf("attribute tag %d has no value", entry.Tag)
		}
		if _, ok := s.values[entry.Tag]; ok {
			return nil, errors.Wrapf(ErrDuplicateTag, "tag %d", entry.Tag)
		}
		s.values[entry.Tag] = entry.Value
		s.tags = append(s.tags, entry.Tag)
	}
	sort.Ints(s.tags)
	return s, nil
}

// Like NewSet, but panics on invalid entries. For fixed sets in code and tests.
func MustNewSet(entries ...Entry) *Set {
	s, err := NewSet(entries...)
	if err != nil {
		panic(err)
	}
	return s
}

// A nil set has no values.
func (s *Set) Get(tag int) (Value, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[tag]
	return v, ok
}

// The registered tags in ascending order.
func (s *Set) Tags() []int {
	if s == nil {
		return nil
	}
	tags := make([]int, len(s.tags))
	copy(tags, s.tags)
	return tags
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.tags)
}
