package board

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/daystram/gambit/position"
)

const svgCell = 48

// WriteSVG renders g as an SVG diagram with rank 8 on top. Squares marked in moves are
// highlighted, and threatened ones get a darker shade than quiet ones.
func (c *Catalog) WriteSVG(w io.Writer, g Grid, moves Moves) {
	size := svgCell * int(Width)
	canvas := svg.New(w)
	canvas.Start(size, size)
	for y := int8(0); y < int8(Height); y++ {
		for x := int8(0); x < int8(Width); x++ {
			p := position.New(x, y)
			left, top := int(x)*svgCell, (int(Height)-1-int(y))*svgCell

			fill := "fill:#769656"
			if (x+y)%2 == 1 {
				fill = "fill:#eeeed2"
			}
			switch moves[p] {
			case Reachable:
				fill = "fill:#e07a5f"
			case Quiet:
				fill = "fill:#f2cc8f"
			case Captured:
				fill = "fill:#81b29a"
			}
			canvas.Rect(left, top, svgCell, svgCell, fill)

			if id := g[p]; id != 0 {
				canvas.Text(left+svgCell/2, top+svgCell*3/4, c.SymbolUnicode(id),
					"text-anchor:middle;font-size:36px;font-family:serif")
			}
		}
	}
	canvas.End()
}
