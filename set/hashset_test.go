package set_test

import (
	"sort"
	"testing"

	"github.com/eecs-autograder/ag-website-vue-sub005/set"
	"github.com/stretchr/testify/assert"
)

func TestHashSet_Remove(t *testing.T) {
	t.Run("remove existing item from the middle", func(t *testing.T) {
		s := set.NewHashSet[string]()
		s.InsertSlice([]string{"foo", "bar", "baz", "123"})

		assert.True(t, s.Remove("bar"))

		items := s.Items()
		sort.Strings(items)
		assert.Equal(t, []string{"123", "baz", "foo"}, items)
	})

	t.Run("remove missing item", func(t *testing.T) {
		s := set.NewHashSet[int]()
		s.Insert(1)

		assert.False(t, s.Remove(2))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("clear", func(t *testing.T) {
		s := set.NewHashSet[int]()
		s.InsertSlice([]int{1, 2, 3})
		s.Clear()

		assert.Equal(t, 0, s.Len())
		assert.False(t, s.Has(1))
	})
}
