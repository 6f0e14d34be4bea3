package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/gambit/position"
)

var (
	cellLight  = color.New(color.FgBlack, color.BgHiWhite)
	cellDark   = color.New(color.FgBlack, color.BgGreen)
	cellMarked = color.New(color.FgBlack, color.BgYellow)
	labelColor = color.New(color.Bold)
)

// Dump renders g as plain ASCII using FEN symbols.
func (c *Catalog) Dump(g Grid) string {
	builder := strings.Builder{}
	for y := int8(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := int8(0); x < int8(Width); x++ {
			sym := " "
			if id := g[position.New(x, y)]; id != 0 {
				sym = string(c.Symbol(id))
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// Draw renders g with colored cells. Squares a piece can reach according to moves are
// highlighted; pass a zero Moves to draw the plain board.
func (c *Catalog) Draw(g Grid, moves Moves) string {
	builder := strings.Builder{}
	for y := int8(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(labelColor.Sprintf(" %d ", y+1))
		for x := int8(0); x < int8(Width); x++ {
			p := position.New(x, y)
			sym := " "
			if id := g[p]; id != 0 {
				sym = c.SymbolUnicode(id)
			}
			cell := cellDark
			switch {
			case moves[p] != Unreachable:
				cell = cellMarked
			case (x+y)%2 == 1:
				cell = cellLight
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(labelColor.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// DumpMoves renders a marker grid, one rank per line with rank 8 on top.
func DumpMoves(m Moves) string {
	builder := strings.Builder{}
	for y := int8(Height) - 1; y >= 0; y-- {
		for x := int8(0); x < int8(Width); x++ {
			if x > 0 {
				_, _ = builder.WriteRune(' ')
			}
			_, _ = builder.WriteString(fmt.Sprintf("%2d", m[position.New(x, y)]))
		}
		_, _ = builder.WriteRune('\n')
	}
	return builder.String()
}
