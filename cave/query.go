package cave

// ContentAt returns what occupies c. A stored cell answers directly;
// otherwise the default is derived from the bounds:
//
//   - outside the bounds → Void
//   - on the floor row of a cave with a floor → Rock
//   - anything else → Air
//
// Air and floor Rock defaults are stored so the next lookup is a plain map
// hit. Void is never stored, and a stored cell is never altered here.
// Complexity: O(1) amortized.
func (cv *Cave) ContentAt(c Coord) Content {
	if content, ok := cv.cells[c]; ok {
		return content
	}
	content := cv.defaultContent(c)
	if content != Void {
		cv.cells[c] = content
	}

	return content
}

// Peek returns the stored content of c without deriving or storing a
// default. ok is false for cells nobody has written or queried yet.
func (cv *Cave) Peek(c Coord) (content Content, ok bool) {
	content, ok = cv.cells[c]
	return content, ok
}

// defaultContent is the content of an unstored cell.
func (cv *Cave) defaultContent(c Coord) Content {
	if !cv.bounds.Contains(c) {
		return Void
	}
	if cv.bounds.Floor && c.Y == cv.bounds.MaxY {
		return Rock
	}

	return Air
}
