package arraymap_test

import (
	"fmt"

	"github.com/eecs-autograder/ag-website-vue-sub005/arraymap"
)

func ExampleArrayMap() {
	am := arraymap.NewOrdered[int, string]()
	am.Insert(5, "a")
	am.Insert(3, "b")
	fmt.Println(am.Insert(3, "c"))

	for k, v := range am.All() {
		fmt.Println(k, v)
	}

	fmt.Println(am.GetOr(4, "none"))
	fmt.Println(am.TryRemove(4))
	// Output:
	// false
	// 3 b
	// 5 a
	// none
	// false
}
