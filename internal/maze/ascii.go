package maze

import "strings"

// String draws the grid with +---+ corners and | walls. Unvisited cells are
// filled with '#'.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.rows*2 + 1) * (g.cols*4 + 2))

	b.WriteString("+")
	b.WriteString(strings.Repeat("---+", g.cols))
	b.WriteString("\n")

	for r := 0; r < g.rows; r++ {
		b.WriteString("|")
		for c := 0; c < g.cols; c++ {
			if g.IsVisited(r, c) {
				b.WriteString("   ")
			} else {
				b.WriteString("###")
			}
			if g.IsOpen(r, c, East) {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n")

		b.WriteString("+")
		for c := 0; c < g.cols; c++ {
			if g.IsOpen(r, c, South) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
