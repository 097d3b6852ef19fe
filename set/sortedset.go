package set

import (
	"github.com/eecs-autograder/ag-website-vue-sub005/arraymap"
	"golang.org/x/exp/constraints"
)

// SortedSet keeps items unique and ascending under a less function.
// Items equal under less count as the same item.
type SortedSet[T any] struct {
	am *arraymap.ArrayMap[T, struct{}]
}

var _ Set[int] = (*SortedSet[int])(nil)

func NewSortedSet[T any](less arraymap.LessFn[T], options ...arraymap.Option) *SortedSet[T] {
	return &SortedSet[T]{
		am: arraymap.New[T, struct{}](less, options...),
	}
}

func NewOrderedSet[T constraints.Ordered](options ...arraymap.Option) *SortedSet[T] {
	return &SortedSet[T]{
		am: arraymap.NewOrdered[T, struct{}](options...),
	}
}

func (s *SortedSet[T]) Insert(item T) (modified bool) {
	return s.am.Insert(item, struct{}{})
}

func (s *SortedSet[T]) Clear() {
	s.am.Clear()
}

func (s *SortedSet[T]) Remove(item T) bool {
	return s.am.TryRemove(item)
}

// Items returns the items in ascending order.
func (s *SortedSet[T]) Items() []T {
	return s.am.Keys()
}

func (s *SortedSet[T]) Has(item T) bool {
	return s.am.Has(item)
}

func (s *SortedSet[T]) Len() int {
	return s.am.Len()
}

func (s *SortedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	return insertAll[T](s, sourceSet.Items())
}

func (s *SortedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	return insertAll[T](s, sourceSlice)
}

func (s *SortedSet[T]) Min() (T, bool) {
	p, ok := s.am.Min()
	return p.Key, ok
}

func (s *SortedSet[T]) Max() (T, bool) {
	p, ok := s.am.Max()
	return p.Key, ok
}
