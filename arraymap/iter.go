package arraymap

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/eecs-autograder/ag-website-vue-sub005/utils"
)

// All yields pairs in ascending key order. Each call starts over from
// the current contents.
func (am *ArrayMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range am.data {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (am *ArrayMap[K, V]) Pairs(ctx context.Context) <-chan utils.Pair[K, V] {
	resultCh := make(chan utils.Pair[K, V])

	go func() {
		defer close(resultCh)

		for _, pair := range am.data {
			select {
			case <-ctx.Done():
				return
			case resultCh <- pair:
			}
		}
	}()

	return resultCh
}

// Entries returns a copy of the sorted sequence, safe to hand to
// rendering code.
func (am *ArrayMap[K, V]) Entries() []utils.Pair[K, V] {
	result := make([]utils.Pair[K, V], len(am.data))
	copy(result, am.data)
	return result
}

// At returns the pair at position i of the sorted sequence.
func (am *ArrayMap[K, V]) At(i int) utils.Pair[K, V] {
	return am.data[i]
}

func (am *ArrayMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(am.data))
	for _, p := range am.data {
		keys = append(keys, p.Key)
	}
	return keys
}

func (am *ArrayMap[K, V]) Values() []V {
	values := make([]V, 0, len(am.data))
	for _, p := range am.data {
		values = append(values, p.Value)
	}
	return values
}

func (am *ArrayMap[K, V]) ForEach(f ForEachFn[K, V]) {
	for order, p := range am.data {
		f(p.Key, p.Value, order)
	}
}

func (am *ArrayMap[K, V]) ForEachUntil(f ForEachUntilFn[K, V]) *ArrayMap[K, V] {
	for order, p := range am.data {
		if !f(p.Key, p.Value, order) {
			break
		}
	}

	return am
}

func (am *ArrayMap[K, V]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, p := range am.data {
		if i != 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%v:%v", p.Key, p.Value))
	}
	b.WriteString("]")
	return b.String()
}
