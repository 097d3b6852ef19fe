package maputils_test

import (
	"fmt"
	"testing"

	"github.com/eecs-autograder/ag-website-vue-sub005/maputils"
	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	t.Run("empty map should return empty map", func(t *testing.T) {
		out := maputils.Transform(map[int]string{}, func(k int, v string) string { return "foo" })
		assert.Equal(t, map[int]string{}, out)
	})

	t.Run("non empty map values should be transformed in a new map", func(t *testing.T) {
		in := map[int]string{1: "foo", 3: "bar", 2: "baz"}
		out := maputils.Transform(in, func(k int, v string) string {
			return fmt.Sprintf("%s-transformed", v)
		})
		assert.Equal(t, map[int]string{
			1: "foo-transformed",
			3: "bar-transformed",
			2: "baz-transformed",
		}, out)
	})
}

func TestTransformWithKeys(t *testing.T) {
	in := map[int]string{1: "foo", 2: "bar"}
	out := maputils.TransformWithKeys(in, func(k int, v string) (int, string) {
		return k * 10, v + "!"
	})
	assert.Equal(t, map[int]string{10: "foo!", 20: "bar!"}, out)
}

func TestSorted(t *testing.T) {
	t.Run("descending by length", func(t *testing.T) {
		in := map[string]int{"a": 1, "ccc": 3, "bb": 2}
		am := maputils.Sorted(in, func(a, b string) bool { return len(a) > len(b) })

		assert.Equal(t, []string{"ccc", "bb", "a"}, am.Keys())
		assert.Equal(t, []int{3, 2, 1}, am.Values())
	})

	t.Run("sorted keys", func(t *testing.T) {
		in := map[int]bool{5: true, -1: false, 3: true}
		assert.Equal(t, []int{-1, 3, 5}, maputils.SortedKeys(in))
	})
}
