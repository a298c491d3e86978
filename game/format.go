package game

import (
	"fmt"
	"strings"
)

func (b *Board) String() string {
	return b.Format(Neutral)
}

// Format draws the board as text. When viewer is a playing side, the
// opposing side's ranks are hidden behind "#".
func (b *Board) Format(viewer Side) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < Cols; c++ {
		fmt.Fprintf(&sb, "%3d", c)
	}
	sb.WriteByte('\n')
	for r := 0; r < Rows; r++ {
		fmt.Fprintf(&sb, "%3d", r)
		for c := 0; c < Cols; c++ {
			coord := Coord{r, c}
			cell := b.Occupant(coord).String()
			if owner := b.Owner(coord); viewer.Playing() && owner == viewer.Opponent() {
				cell = "#"
			}
			fmt.Fprintf(&sb, "%3s", cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
