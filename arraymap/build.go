package arraymap

import (
	"github.com/eecs-autograder/ag-website-vue-sub005/utils"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/exp/constraints"
)

// FromPairs inserts pairs in the given order. The first pair for a key
// wins; every later duplicate is reported in the combined error, and the
// map is returned either way.
func FromPairs[K any, V any](less LessFn[K], pairs ...utils.Pair[K, V]) (*ArrayMap[K, V], error) {
	am := New[K, V](less, WithCapacity(len(pairs)))

	var err error
	for i, p := range pairs {
		if !am.Insert(p.Key, p.Value) {
			err = multierr.Append(err, errors.Wrapf(ErrDuplicateKey, "pair %d: key %v", i, p.Key))
		}
	}

	return am, err
}

// FromMap copies m into a map ordered by the natural < of K.
func FromMap[K constraints.Ordered, V any](m map[K]V, options ...Option) *ArrayMap[K, V] {
	am := NewOrdered[K, V](append([]Option{WithCapacity(len(m))}, options...)...)
	for k, v := range m {
		am.Insert(k, v)
	}

	return am
}
