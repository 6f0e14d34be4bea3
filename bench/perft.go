package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/gambit/board"
	"github.com/daystram/gambit/game"
)

// Counters tallies the moves played at the last ply of a perft run.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func (c *Counters) add(o *Counters) {
	atomic.AddUint64(&c.Nodes, o.Nodes)
	atomic.AddUint64(&c.Captures, o.Captures)
	atomic.AddUint64(&c.EnPassants, o.EnPassants)
	atomic.AddUint64(&c.Castles, o.Castles)
	atomic.AddUint64(&c.Promotions, o.Promotions)
	atomic.AddUint64(&c.Checks, o.Checks)
}

func Perft(depth int, fen string, parallel, verbose bool, out chan string) error {
	st, err := game.NewState(game.WithFEN(fen))
	if err != nil {
		return err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	var c Counters
	start := time.Now()
	run(game.DefaultRules, st, depth, true, verbose, out, &c)
	end := time.Now()

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
			depth, c.Nodes, int(float64(c.Nodes)/end.Sub(start).Seconds()), c.Captures, c.EnPassants, c.Castles, c.Promotions, c.Checks, end.Sub(start).Seconds())

	return nil
}

type perftFunc func(r game.Rules, st game.State, d int, root, verbose bool, out chan string, c *Counters) uint64

func runPerft(r game.Rules, st game.State, d int, root, verbose bool, out chan string, c *Counters) uint64 {
	if d == 0 {
		c.Nodes++
		return 1
	}

	var sum uint64
	for _, mv := range moves(r, st) {
		var child uint64
		res := r.Apply(mv.From, mv.To, mv.Promote, st)
		if d != 1 {
			child = runPerft(r, res.State, d-1, false, verbose, out, c)
		} else {
			child = 1
			c.Nodes++
			record(st, mv, res, c)
		}
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

// runPerftParallel fans the root moves out on goroutines, each counting its subtree
// sequentially.
func runPerftParallel(r game.Rules, st game.State, d int, root, verbose bool, out chan string, c *Counters) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range moves(r, st) {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var local Counters
			res := r.Apply(mv.From, mv.To, mv.Promote, st)
			child := runPerft(r, res.State, d-1, false, false, nil, &local)
			if d == 1 {
				record(st, mv, res, &local)
			}
			c.add(&local)
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}

// moves lists the legal moves of st with one entry per promotion choice.
func moves(r game.Rules, st game.State) []game.Move {
	var mvs []game.Move
	for _, mv := range r.LegalMoves(st) {
		if promotes(st, mv) {
			for _, k := range board.PromoteCandidates {
				mvs = append(mvs, game.Move{From: mv.From, To: mv.To, Promote: k})
			}
			continue
		}
		mvs = append(mvs, mv)
	}
	return mvs
}

func promotes(st game.State, mv game.Move) bool {
	return board.KindOf(st.Position.Grid[mv.From]) == board.KindPawn &&
		int8(mv.To.Y()) == st.Turn.Opposite().HomeRank()
}

func record(st game.State, mv game.Move, res game.Result, c *Counters) {
	grid := st.Position.Grid
	kind := board.KindOf(grid[mv.From])
	dx := board.Abs(int8(mv.To.X()) - int8(mv.From.X()))
	switch {
	case grid[mv.To] != 0:
		c.Captures++
	case kind == board.KindPawn && dx == 1:
		c.Captures++
		c.EnPassants++
	}
	if kind == board.KindKing && dx == 2 {
		c.Castles++
	}
	if promotes(st, mv) {
		c.Promotions++
	}
	if res.Class.IsCheck() {
		c.Checks++
	}
}
