package arraymap

import (
	"sort"

	"github.com/eecs-autograder/ag-website-vue-sub005/utils"
	"golang.org/x/exp/constraints"
)

type (
	// LessFn must be a strict weak ordering. Two keys are equal
	// when neither is less than the other.
	LessFn[K any] func(a, b K) (less bool)

	FilterFn[K any, V any]       func(key K, value V, order int) bool
	ForEachFn[K any, V any]      func(key K, value V, order int)
	ForEachUntilFn[K any, V any] func(key K, value V, order int) bool
	TransformerFn[K any, V any]  func(key K, value V, order int) V

	// ArrayMap keeps unique keys sorted ascending by less inside a
	// contiguous slice of pairs. It is not safe for concurrent use.
	ArrayMap[K any, V any] struct {
		data []utils.Pair[K, V]
		less LessFn[K]
	}
)

// New creates an empty map bound to less for its whole lifetime.
func New[K any, V any](less LessFn[K], options ...Option) *ArrayMap[K, V] {
	if less == nil {
		panic("arraymap: nil less function")
	}

	cfg := config{order: utils.AscOrder}
	for _, o := range options {
		o(&cfg)
	}

	if cfg.order == utils.DescOrder {
		asc := less
		less = func(a, b K) bool { return asc(b, a) }
	}

	return &ArrayMap[K, V]{
		data: make([]utils.Pair[K, V], 0, cfg.capacity),
		less: less,
	}
}

// NewOrdered creates an empty map ordered by the natural < of K.
func NewOrdered[K constraints.Ordered, V any](options ...Option) *ArrayMap[K, V] {
	return New[K, V](Less[K], options...)
}

// Less is the natural ordering of K.
func Less[K constraints.Ordered](a, b K) bool {
	return a < b
}

func (am *ArrayMap[K, V]) Len() int {
	return len(am.data)
}

func (am *ArrayMap[K, V]) Empty() bool {
	return len(am.data) == 0
}

// search returns the index of the first pair whose key is not less than
// key, and whether that pair holds an equal key.
func (am *ArrayMap[K, V]) search(key K) (int, bool) {
	idx := sort.Search(len(am.data), func(i int) bool {
		return !am.less(am.data[i].Key, key)
	})

	return idx, idx < len(am.data) && !am.less(key, am.data[idx].Key)
}

// Insert never overwrites. It reports false and leaves the map
// unchanged when an equal key is already present.
func (am *ArrayMap[K, V]) Insert(key K, value V) (added bool) {
	idx, found := am.search(key)
	if found {
		return false
	}

	am.insertAt(idx, key, value)
	return true
}

func (am *ArrayMap[K, V]) insertAt(idx int, key K, value V) {
	am.data = append(am.data, utils.Pair[K, V]{})
	copy(am.data[idx+1:], am.data[idx:])
	am.data[idx] = utils.Pair[K, V]{Key: key, Value: value}
}

func (am *ArrayMap[K, V]) Has(key K) bool {
	_, found := am.search(key)
	return found
}

func (am *ArrayMap[K, V]) HasGet(key K) (V, bool) {
	idx, found := am.search(key)
	if !found {
		return utils.GetZero[V](), false
	}

	return am.data[idx].Value, true
}

// Get returns ErrKeyNotFound when key is absent.
func (am *ArrayMap[K, V]) Get(key K) (V, error) {
	v, found := am.HasGet(key)
	if !found {
		return v, keyNotFound(key)
	}

	return v, nil
}

// GetOr returns def when key is absent.
func (am *ArrayMap[K, V]) GetOr(key K, def V) V {
	if v, found := am.HasGet(key); found {
		return v
	}

	return def
}

// GetOrInsert returns the stored value, or inserts def under key and
// returns it when key is absent.
func (am *ArrayMap[K, V]) GetOrInsert(key K, def V) V {
	idx, found := am.search(key)
	if found {
		return am.data[idx].Value
	}

	am.insertAt(idx, key, def)
	return def
}

// Remove returns ErrKeyNotFound when key is absent.
func (am *ArrayMap[K, V]) Remove(key K) error {
	if _, ok := am.HasRemove(key); !ok {
		return keyNotFound(key)
	}

	return nil
}

func (am *ArrayMap[K, V]) TryRemove(key K) bool {
	_, ok := am.HasRemove(key)
	return ok
}

func (am *ArrayMap[K, V]) HasRemove(key K) (V, bool) {
	idx, found := am.search(key)
	if !found {
		return utils.GetZero[V](), false
	}

	v := am.data[idx].Value
	copy(am.data[idx:], am.data[idx+1:])
	am.data[len(am.data)-1] = utils.Pair[K, V]{}
	am.data = am.data[:len(am.data)-1]

	return v, true
}

func (am *ArrayMap[K, V]) Clear() {
	clear(am.data)
	am.data = am.data[:0]
}

// Min returns the pair with the smallest key.
func (am *ArrayMap[K, V]) Min() (utils.Pair[K, V], bool) {
	if len(am.data) == 0 {
		return utils.Pair[K, V]{}, false
	}

	return am.data[0], true
}

// Max returns the pair with the largest key.
func (am *ArrayMap[K, V]) Max() (utils.Pair[K, V], bool) {
	if len(am.data) == 0 {
		return utils.Pair[K, V]{}, false
	}

	return am.data[len(am.data)-1], true
}

// Clone shares the ordering relation but not the backing slice.
func (am *ArrayMap[K, V]) Clone() *ArrayMap[K, V] {
	data := make([]utils.Pair[K, V], len(am.data))
	copy(data, am.data)
	return &ArrayMap[K, V]{data: data, less: am.less}
}

func (am *ArrayMap[K, V]) Filter(f FilterFn[K, V]) *ArrayMap[K, V] {
	result := &ArrayMap[K, V]{less: am.less}
	for order, pair := range am.data {
		if f(pair.Key, pair.Value, order) {
			result.data = append(result.data, pair)
		}
	}

	return result
}

// Transform maps values only, so the key order carries over.
func (am *ArrayMap[K, V]) Transform(f TransformerFn[K, V]) *ArrayMap[K, V] {
	result := &ArrayMap[K, V]{
		data: make([]utils.Pair[K, V], len(am.data)),
		less: am.less,
	}

	for order, pair := range am.data {
		result.data[order] = utils.Pair[K, V]{Key: pair.Key, Value: f(pair.Key, pair.Value, order)}
	}

	return result
}
