package maputils

import (
	"github.com/eecs-autograder/ag-website-vue-sub005/arraymap"
	"golang.org/x/exp/constraints"
)

type (
	ValueTransformer[K comparable, V any]    func(K, V) V
	KeyValueTransformer[K comparable, V any] func(K, V) (K, V)
)

// Transform transforms a map by applying a value transformer callback to each map key value pair.
func Transform[K comparable, V any](m map[K]V, vt ValueTransformer[K, V]) map[K]V {
	result := make(map[K]V, len(m))
	for k, v := range m {
		result[k] = vt(k, v)
	}
	return result
}

// TransformWithKeys transforms a map by applying a key value transformer callback
// to each map key value pair. Colliding transformed keys keep an arbitrary value.
func TransformWithKeys[K comparable, V any](m map[K]V, kvt KeyValueTransformer[K, V]) map[K]V {
	result := make(map[K]V, len(m))
	for k, v := range m {
		tk, tv := kvt(k, v)
		result[tk] = tv
	}
	return result
}

// Sorted copies m into an ArrayMap ordered by less. Keys of m that are
// equal under less collapse into one entry, which one is unspecified.
func Sorted[K comparable, V any](m map[K]V, less arraymap.LessFn[K]) *arraymap.ArrayMap[K, V] {
	am := arraymap.New[K, V](less, arraymap.WithCapacity(len(m)))
	for k, v := range m {
		am.Insert(k, v)
	}
	return am
}

func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	return arraymap.FromMap(m).Keys()
}
