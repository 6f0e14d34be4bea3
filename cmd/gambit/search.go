package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/daystram/gambit/board"
	"github.com/daystram/gambit/engine"
	"github.com/daystram/gambit/game"
)

// search lets the engine play the side to move against random replies.
func search(fen string, steps, depth, movetime int, noPrune bool) error {
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	r := game.DefaultRules
	st, err := r.NewState(game.WithFEN(fen))
	if err != nil {
		return err
	}
	e := engine.NewEngine(&engine.EngineConfig{
		Rules:          r,
		DisablePruning: noPrune,
	})
	cfg := &engine.SearchConfig{
		ClockConfig: engine.ClockConfig{
			Depth:    depth,
			Movetime: time.Duration(movetime) * time.Millisecond,
		},
	}
	fmt.Println(r.Draw(st))
	fmt.Println(r.FEN(st))

	playingSide := st.Turn
	getMove := func(st game.State) (game.Move, error) {
		if st.Turn == playingSide {
			return e.Search(context.Background(), st, cfg)
		}
		mvs := r.LegalMoves(st)
		return mvs[rnd.Intn(len(mvs))], nil
	}

	var history []game.Move
	for step := 1; step <= steps && !st.Status.IsTerminal(); step++ {
		fmt.Printf("\n=============== Move %d\n", st.FullMove)

		mv, err := getMove(st)
		if err != nil {
			return err
		}
		side := st.Turn
		res := r.Apply(mv.From, mv.To, mv.Promote, st)
		if res.Kind == game.ResultInvalid {
			return res.Err
		}
		st = res.State
		history = append(history, mv)

		fmt.Printf("\n>>> %s: %s (delta=%d)\n", side, mv, res.Delta)
		fmt.Println(r.FEN(st))
		fmt.Println(r.Draw(st))
	}
	log.Println("=============== game ended:", st.Status)
	fmt.Println(r.FEN(st))
	dumpHistory(history, playingSide)

	return nil
}

func dumpHistory(mvs []game.Move, first board.Side) {
	for i, mv := range mvs {
		if (i%2 == 0) == (first == board.SideWhite) {
			fmt.Printf("%d.", i/2+1)
		}
		fmt.Printf("%s ", mv)
	}
	fmt.Println()
}
