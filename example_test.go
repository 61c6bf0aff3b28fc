package acttrie

import (
	"fmt"

	set3 "github.com/TomTonic/Set3"
)

func Example_basicUsage() {
	t := New[int]()
	// Use FromString to obtain normalized keys from user strings
	t.Insert(FromString("Alice"), 1)
	t.Insert(FromString("Bob"), 2)

	fmt.Println(t.Size())
	// Output:
	// 2
}

func Example_rangeQuery() {
	t := New[int]()
	t.Insert(FromString("a"), 1)
	t.Insert(FromString("b"), 2)
	t.Insert(FromString("c"), 3)

	set := CollectBetweenInclusive(t, FromString("a"), FromString("b"))
	fmt.Println(set.Equals(set3.From(1, 2)))
	// Output:
	// true
}
