// File: cave/example_test.go
package cave_test

import (
	"fmt"

	"github.com/katalvlaran/sandfall/cave"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Fill without a floor
////////////////////////////////////////////////////////////////////////////////

// ExampleCave_Fill pours sand into the two-ledge cave until a grain slides
// off the lowest ledge into the void.
//
//	  4     5  5
//	  9     0  0
//	  4     0  3
//	0 ......+...
//	1 ..........
//	2 ..........
//	3 ..........
//	4 ....#...##
//	5 ....#...#.
//	6 ..###...#.
//	7 ........#.
//	8 ........#.
//	9 #########.
func ExampleCave_Fill() {
	cv := cave.New()
	_ = cv.AddRockPath([]cave.Coord{{X: 498, Y: 4}, {X: 498, Y: 6}, {X: 496, Y: 6}})
	_ = cv.AddRockPath([]cave.Coord{{X: 503, Y: 4}, {X: 502, Y: 4}, {X: 502, Y: 9}, {X: 494, Y: 9}})

	fmt.Println("settled:", cv.Fill())
	fmt.Println("bounds:", cv.Bounds().MinX, cv.Bounds().MaxX, cv.Bounds().MaxY)
	// Output:
	// settled: 24
	// bounds: 494 503 9
}

////////////////////////////////////////////////////////////////////////////////
// Example: DropGrain with a floor
////////////////////////////////////////////////////////////////////////////////

// ExampleCave_AddFloor adds the endless floor two rows below the lowest rock
// and drops grains one at a time until the source is buried.
func ExampleCave_AddFloor() {
	cv := cave.New()
	_ = cv.AddRockPaths([][]cave.Coord{
		{{X: 498, Y: 4}, {X: 498, Y: 6}, {X: 496, Y: 6}},
		{{X: 503, Y: 4}, {X: 502, Y: 4}, {X: 502, Y: 9}, {X: 494, Y: 9}},
	})
	_ = cv.AddFloor()

	n := 0
	for cv.DropGrain() {
		n++
	}
	fmt.Println("floor row:", cv.Bounds().MaxY)
	fmt.Println("settled:", n)
	fmt.Println("source:", cv.ContentAt(cv.Source()))
	// Output:
	// floor row: 11
	// settled: 93
	// source: sand
}
