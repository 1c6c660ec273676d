// Package sandfall simulates sand pouring into a cave of rock, one grain at
// a time, on a sparse grid that only stores what has been touched.
//
// What is in the box?
//
//	• segment/ — axis-aligned segment and waypoint-path rasterization
//	• cave/    — the sparse cave grid: rock, optional floor, falling grains
//
// A grain enters at the source (500,0 by default) and falls straight down,
// else down-left, else down-right, until it rests or drops out of the
// tracked region into the void. With a floor added two rows below the lowest
// rock nothing is lost, and the pile grows until it buries the source.
//
// Quick ASCII example (source +, rock #, sand o):
//
//	......+...
//	..........
//	......o...
//	.....ooo..
//	....#ooo##
//	...o#ooo#.
//	..###ooo#.
//	....oooo#.
//	.o.ooooo#.
//	#########.
//
// represents the two-ledge cave after 24 grains; the 25th slides off the
// bottom-left and falls into the void.
//
//	go get github.com/katalvlaran/sandfall
package sandfall
