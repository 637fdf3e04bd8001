package sortedmap_test

import (
	"fmt"

	"github.com/CptBread/sorted-bread-box/ds/sortedmap"
)

func ExampleSortedMap() {
	sortedMap := sortedmap.New[int, string]()

	sortedMap.Insert(3, "c")
	sortedMap.Insert(1, "a")
	sortedMap.Insert(2, "b")

	fmt.Println(sortedMap.Entries())

	if value, exists := sortedMap.Get(2); exists {
		fmt.Println(value)
	}

	removed, _ := sortedMap.Remove(1)
	fmt.Println(removed, sortedMap.Keys())

	_, exists := sortedMap.Get(1)
	fmt.Println(exists)

	// Output:
	// [Entry(1, a) Entry(2, b) Entry(3, c)]
	// b
	// a [2 3]
	// false
}
