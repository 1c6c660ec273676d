package segment_test

import (
	"testing"

	"github.com/katalvlaran/sandfall/segment"
)

// BenchmarkRasterizePath measures a long zig-zag path of 1000 legs.
// Complexity: O(ΣL)
func BenchmarkRasterizePath(b *testing.B) {
	path := make([]segment.Point, 0, 1001)
	p := segment.Point{X: 0, Y: 0}
	path = append(path, p)
	for i := 0; i < 1000; i++ {
		if i%2 == 0 {
			p = p.Add(10, 0)
		} else {
			p = p.Add(0, 10)
		}
		path = append(path, p)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = segment.RasterizePath(path)
	}
}
