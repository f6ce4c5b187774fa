package geometry

// Components counts the 8-connected components of the playable cells
// (height != -1) in a square heights grid of side W (len(heights) ==
// W*W). The map generator requires the result to be exactly 1.
func Components(heights []int, w int) int {
	visited := make([]bool, len(heights))
	var queue []Coordinate
	count := 0

	for i := range heights {
		if visited[i] {
			continue
		}
		visited[i] = true
		if heights[i] == -1 {
			// Unplayable cells don't start or belong to a component of
			// playable cells, but we still need to mark them visited so
			// the outer loop doesn't revisit them.
			continue
		}
		count++
		queue = append(queue[:0], Coordinate{X: i % w, Y: i / w})
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, d := range Dir {
				next := cur.Add(d)
				if !next.InBounds(w) {
					continue
				}
				idx := next.Index(w)
				if visited[idx] || heights[idx] == -1 {
					continue
				}
				visited[idx] = true
				queue = append(queue, next)
			}
		}
	}
	return count
}
