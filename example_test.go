package emplace_test

import (
	"fmt"

	"github.com/emplacekit/emplace"
)

type Point struct {
	X, Y int
}

func ExampleOnHeap() {
	p, err := emplace.OnHeap[Point](emplace.TryInitFunc[Point](
		func(slot *emplace.Uninit[Point]) (*emplace.Init[Point], error) {
			return slot.Write(Point{X: 1, Y: 2})
		}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.X, p.Y)
	// Output: 1 2
}

func ExampleOnStack() {
	sum, err := emplace.OnStack[Point, int](emplace.ValueOf(Point{X: 3, Y: 4}),
		func(in *emplace.Init[Point]) int {
			p := in.Value()
			return p.X + p.Y
		})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sum)
	// Output: 7
}

func ExampleSlice() {
	squares, err := emplace.Slice[int](4, func(i int) emplace.TryInitializer[int] {
		return emplace.ValueOf(i * i)
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(squares)
	// Output: [0 1 4 9]
}
