package named_test

import (
	"fmt"

	"strongtype/core/named"
)

type serialNumber struct {
	named.Comparable
	named.Hashable
}

func ExampleMap() {
	stock := named.NewMap[string, serialNumber, int]()
	stock.Set(named.New[serialNumber]("AA11"), 10)
	stock.Set(named.New[serialNumber]("BB22"), 20)

	n, ok := stock.Get(named.New[serialNumber]("AA11"))
	fmt.Println(n, ok)
	// Output: 10 true
}

type myInt struct {
	named.ImplicitlyConvertible[uint]
}

func ExampleConvertTo() {
	v := named.New[myInt](-1)
	fmt.Println(named.ConvertTo[uint](v) == ^uint(0))
	// Output: true
}
