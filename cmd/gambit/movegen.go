package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/daystram/gambit/board"
	"github.com/daystram/gambit/game"
)

func movegen(fen string, draw bool, svgPath string) error {
	log.Println("============ movegen")
	r := game.DefaultRules
	st, err := r.NewState(game.WithFEN(fen))
	if err != nil {
		return err
	}
	c := r.Pieces()
	fmt.Println("to move:", st.Turn)
	fmt.Println(c.Dump(st.Position.Grid))
	fmt.Println(r.Draw(st))
	fmt.Println(st.Status)

	moves := c.GenerateSide(st.Turn, st.Position)
	fmt.Println(board.DumpMoves(moves))
	dumpMoves(r, st)

	if svgPath != "" {
		f, err := os.Create(svgPath)
		if err != nil {
			return err
		}
		defer f.Close()
		c.WriteSVG(f, st.Position.Grid, moves)
		log.Println("svg written to", svgPath)
	}

	if draw {
		for _, mv := range r.LegalMoves(st) {
			res := r.Apply(mv.From, mv.To, board.KindQueen, st)
			fmt.Println(mv)
			fmt.Println(c.Draw(res.State.Position.Grid, c.Generate(mv.To, res.State.Position, board.Moves{})))
			fmt.Println(r.FEN(res.State))
		}
	}
	return nil
}

func dumpMoves(r game.Rules, st game.State) {
	mvs := r.LegalMoves(st)
	for i, mv := range mvs {
		res := r.Apply(mv.From, mv.To, board.KindQueen, st)
		fmt.Printf("option %*d: [%s] %s %s => %s (delta=%d) (%s %s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), board.KindOf(st.Position.Grid[mv.From]), mv.From, mv.To, res.Delta, res.Kind, res.Class)
	}
}
