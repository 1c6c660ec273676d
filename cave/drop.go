package cave

// fallOffsets lists where a grain tries to move, in priority order:
// straight down, down-left, down-right.
var fallOffsets = [3][2]int{{0, 1}, {-1, 1}, {1, 1}}

// DropGrain releases one grain at the source and lets it fall until it rests
// or leaves the bounds. It reports true when the grain settled and became
// Sand; false when the grain fell into the Void or the source is already
// occupied. A grain that comes to rest on the source itself still counts;
// the drop after it fails. Once a drop fails, every later drop fails.
//
// The first call seals the cave against further rock and floor changes.
// Complexity: O(H), H = rows between the source and the bottom bound.
func (cv *Cave) DropGrain() bool {
	if cv.spent {
		return false
	}
	cv.sealed = true

	pos := cv.source
	cur := cv.ContentAt(pos)
	for cur != Void {
		next, content, moved := cv.fall(pos)
		if !moved {
			break
		}
		pos, cur = next, content
	}

	switch cur {
	case Air:
		cv.cells[pos] = Sand
		cv.sand++
		return true
	case Void:
		cv.stop("void", pos)
	default:
		// Sand or Rock on the source: nowhere to put the grain.
		cv.stop("blocked", pos)
	}

	return false
}

// Fill drops grains until one fails and returns how many settled during
// this call.
// Complexity: O(N·H) for N settled grains.
func (cv *Cave) Fill() int {
	n := 0
	for cv.DropGrain() {
		n++
	}

	return n
}

// fall returns the first passable cell below pos in fallOffsets order.
// moved is false when the grain at pos is at rest.
func (cv *Cave) fall(pos Coord) (next Coord, content Content, moved bool) {
	for _, d := range fallOffsets {
		next = pos.Add(d[0], d[1])
		if content = cv.ContentAt(next); content.passable() {
			return next, content, true
		}
	}

	return pos, 0, false
}

// stop marks the cave as spent and records why.
func (cv *Cave) stop(reason string, at Coord) {
	cv.spent = true
	cv.log.Debug("grain not settled", "reason", reason, "at", at.String(), "sand", cv.sand)
}
