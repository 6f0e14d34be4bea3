package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/gambit/board"
	"github.com/daystram/gambit/game"
)

var (
	// ErrNoMove represents a search that could not produce a move.
	ErrNoMove = errors.New("cannot resolve best move")
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type EngineConfig struct {
	HashTableSize  int
	DisablePruning bool
	Rules          game.Rules
	Bitstrings     *board.Bitstrings
	Logger         func(...any)
}

type SearchConfig struct {
	ClockConfig ClockConfig
	Debug       bool
}

type Engine struct {
	searcher *Searcher
	tt       *TranspositionTable
	clock    *Clock

	nodes       int
	elapsedTime time.Duration
	logger      func(...any)
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}
	bs := cfg.Bitstrings
	if bs == nil {
		bs = board.DefaultBitstrings
	}

	return &Engine{
		searcher: &Searcher{
			Mover: cfg.Rules,
			Hash: func(whiteToMove bool, g board.Grid) uint64 {
				return board.Hash(whiteToMove, g, bs)
			},
			Pruning: !cfg.DisablePruning,
		},
		tt:     NewTranspositionTable(cfg.HashTableSize),
		clock:  NewClock(),
		logger: cfg.Logger,
	}
}

// Search deepens one ply at a time until the clock runs out and returns the best move
// of the last completed iteration. The table is kept between iterations and cleared
// for every new root.
func (e *Engine) Search(ctx context.Context, st game.State, cfg *SearchConfig) (game.Move, error) {
	if st.Status.IsTerminal() {
		return game.Move{}, fmt.Errorf("%w: game is over with %s", ErrNoMove, st.Status)
	}

	var best BranchValue
	e.tt.Clear()
	e.nodes = 0
	e.elapsedTime = 0
	e.clock.Start(ctx, &cfg.ClockConfig)
	defer e.clock.Stop()

	for d := 1; !e.clock.DoneByDepth(d); d++ {
		startTime := time.Now()
		e.searcher.ResetNodes()
		candidate := e.searcher.BestMove(true, 0, d, 0, nil, e.tt, st)
		e.elapsedTime += time.Since(startTime)
		e.nodes += e.searcher.Nodes()

		if candidate.IsNull() {
			break
		}
		best = candidate

		hits, misses, writes := e.tt.Stats()
		if cfg.Debug {
			e.logger(message.NewPrinter(language.English).
				Sprintf("depth:%d [%s] nodes:%d (%.0fn/s) t:%s tt:%d/%d/%d",
					d, formatScoreDebug(best.Value), e.nodes, float64(e.nodes)/((e.elapsedTime + 1).Seconds()), e.elapsedTime, hits, misses, writes))
		} else {
			e.logger(fmt.Sprintf("info depth %d score %s time %d nodes %d nps %.0f pv %s",
				d, formatScoreUCI(best.Value), e.elapsedTime.Milliseconds(), e.nodes, float64(e.nodes)/((e.elapsedTime + 1).Seconds()), best.Move(st).UCI()))
		}

		if best.Value == board.ScoreMate || best.Value == board.ScoreMin {
			break
		}
		if e.clock.DoneByMovetime() {
			break
		}
	}

	if best.IsNull() {
		return game.Move{}, ErrNoMove
	}
	return best.Move(st), nil
}

// Nodes returns the number of nodes visited by the last Search.
func (e *Engine) Nodes() int {
	return e.nodes
}

func formatScoreDebug(s board.Score) string {
	switch {
	case s == board.ScoreMate:
		return "#+"
	case s == board.ScoreMin:
		return "#-"
	case s > 0:
		return fmt.Sprintf("+%d", s)
	default:
		return fmt.Sprintf("%d", s)
	}
}

func formatScoreUCI(s board.Score) string {
	switch s {
	case board.ScoreMate:
		return "mate 1"
	case board.ScoreMin:
		return "mate -1"
	default:
		return fmt.Sprintf("cp %d", int(s)*100)
	}
}
