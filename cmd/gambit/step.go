package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/daystram/gambit/board"
	"github.com/daystram/gambit/game"
)

// step plays random legal moves and reports the average cost of the rules queries.
func step(fen string) error {
	log.Println("============ step")
	var (
		timesLegalMoves []time.Duration
		timesApply      []time.Duration
	)
	r := game.DefaultRules
	st, err := r.NewState(game.WithFEN(fen))
	if err != nil {
		return err
	}
	rnd := rand.New(rand.NewSource(1))
stepLoop:
	for step := 0; step < 5000; step++ {
		t1 := time.Now()
		mvs := r.LegalMoves(st)
		t2 := time.Now()
		timesLegalMoves = append(timesLegalMoves, t2.Sub(t1))
		if len(mvs) == 0 {
			return fmt.Errorf("unexpected move exhaustion: status=%s", st.Status)
		}
		mv := mvs[rnd.Intn(len(mvs))]

		t1 = time.Now()
		res := r.Apply(mv.From, mv.To, board.KindQueen, st)
		t2 = time.Now()
		timesApply = append(timesApply, t2.Sub(t1))
		side := st.Turn
		st = res.State

		fmt.Printf("\n===== [#%d] %s: %s\n", step/2+1, side, mv)
		fmt.Println(r.Draw(st))
		fmt.Println(r.FEN(st))
		switch {
		case st.Status.IsTerminal():
			break stepLoop
		case st.Status.IsCheck():
			<-time.After(100 * time.Millisecond)
			fallthrough
		default:
			<-time.After(10 * time.Millisecond)
		}
	}

	avg := func(ds []time.Duration) time.Duration {
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return time.Duration(s.Seconds() / float64(len(ds)) * float64(time.Second))
	}

	fmt.Println()
	fmt.Println(st.Status)
	fmt.Println("legal:", avg(timesLegalMoves))
	fmt.Println("apply:", avg(timesApply))
	return nil
}
