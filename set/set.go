package set

type Set[T any] interface {
	Insert(item T) (modified bool)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Items() []T
	Len() int
	InsertSet(sourceSet Set[T]) (modified bool)
}

func insertAll[T any](s Set[T], items []T) (modified bool) {
	for _, item := range items {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}
