package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/daystram/gambit/bench"
	"github.com/daystram/gambit/board"
	"github.com/daystram/gambit/engine"
	"github.com/daystram/gambit/game"
)

var (
	EngineName   = "Gambit"
	EngineAuthor = "Danny August Ramaputra"

	// ErrUnknownCommand represents a line the interface cannot interpret.
	ErrUnknownCommand = errors.New("unknown command")

	errQuit = errors.New("quit")

	defaultOptions = options{
		debug:         false,
		depth:         engine.DefaultDepth,
		pruning:       true,
		hashTableSize: engine.DefaultHashTableSize,
		parallelPerft: true,
	}
)

type options struct {
	debug         bool
	depth         int
	pruning       bool
	hashTableSize int
	parallelPerft bool
}

type Interface struct {
	rules   game.Rules
	state   game.State
	engine  *engine.Engine
	options options

	out   io.Writer
	outMu sync.Mutex

	engineRunning atomic.Bool
	engineCancel  context.CancelFunc
	engineWG      sync.WaitGroup
}

func NewInterface(out io.Writer) *Interface {
	return &Interface{
		rules:   game.DefaultRules,
		options: defaultOptions,
		out:     out,
	}
}

// Run reads commands from in until quit or the end of the input.
func (i *Interface) Run(in io.Reader) error {
	ctx := context.Background()
	i.reset(ctx)
	defer i.commandStop(ctx)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		err := i.Execute(ctx, scanner.Text())
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			i.println(fmt.Sprintf("info string %v", err))
		}
	}
	return scanner.Err()
}

// Execute runs a single command line.
func (i *Interface) Execute(ctx context.Context, cmd string) error {
	args := strings.Fields(cmd)
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "uci":
		i.commandUCI(ctx)
	case "ucinewgame":
		i.reset(ctx)
	case "isready":
		i.commandReady(ctx)
	case "setoption":
		return i.commandSetOption(ctx, args[1:])
	case "position":
		return i.commandPosition(ctx, args[1:])
	case "d":
		i.commandDraw(ctx)
	case "go":
		return i.commandGo(ctx, args[1:])
	case "stop":
		i.commandStop(ctx)
	case "quit":
		return errQuit
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}

func (i *Interface) commandUCI(_ context.Context) {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option name Debug type check default %v", defaultOptions.debug))
	i.println(fmt.Sprintf("option name Depth type spin default %d min 1 max %d", defaultOptions.depth, engine.MaxDepth))
	i.println(fmt.Sprintf("option name Pruning type check default %v", defaultOptions.pruning))
	i.println(fmt.Sprintf("option name Hash type spin default %d min 1 max 16777216", defaultOptions.hashTableSize))
	i.println("uciok")
}

func (i *Interface) commandReady(_ context.Context) {
	if i.engine != nil {
		i.println("readyok")
	}
}

func (i *Interface) commandSetOption(ctx context.Context, args []string) error {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return fmt.Errorf("%w: malformed setoption", ErrUnknownCommand)
	}
	switch name, valueStr := strings.ToLower(args[1]), args[3]; name {
	case "debug":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			return err
		}
		i.options.debug = value
	case "depth":
		value, err := strconv.Atoi(valueStr)
		if err != nil {
			return err
		}
		if value < 1 || value > engine.MaxDepth {
			return fmt.Errorf("depth out of range: %d", value)
		}
		i.options.depth = value
	case "pruning":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			return err
		}
		i.options.pruning = value
		i.newEngine(ctx)
	case "hash":
		value, err := strconv.Atoi(valueStr)
		if err != nil {
			return err
		}
		if value < 1 || value > 1<<24 {
			return fmt.Errorf("hash size out of range: %d", value)
		}
		i.options.hashTableSize = value
		i.newEngine(ctx)
	default:
		return fmt.Errorf("%w: option %s", ErrUnknownCommand, args[1])
	}
	return nil
}

func (i *Interface) commandPosition(_ context.Context, args []string) error {
	if i.engineRunning.Load() || len(args) == 0 {
		return nil
	}

	var fen string
	var rest []string
	switch args[0] {
	case "fen":
		n := len(args)
		for j, a := range args {
			if a == "moves" {
				n = j
				break
			}
		}
		fen, rest = strings.Join(args[1:n], " "), args[n:]
	case "startpos":
		fen, rest = board.DefaultStartingPositionFEN, args[1:]
	default:
		return fmt.Errorf("%w: position %s", ErrUnknownCommand, args[0])
	}

	st, err := i.rules.NewState(game.WithFEN(fen))
	if err != nil {
		return err
	}
	if len(rest) > 0 && rest[0] == "moves" {
		for _, s := range rest[1:] {
			mv, err := game.ParseUCI(s)
			if err != nil {
				return err
			}
			res := i.rules.Apply(mv.From, mv.To, mv.Promote, st)
			if res.Kind == game.ResultInvalid {
				return res.Err
			}
			st = res.State
		}
	}
	i.state = st
	return nil
}

func (i *Interface) commandDraw(_ context.Context) {
	i.println(i.rules.Draw(i.state))
	i.println(fmt.Sprintf("Fen: %s", i.rules.FEN(i.state)))
}

func (i *Interface) commandGo(ctx context.Context, args []string) error {
	cfg := &engine.SearchConfig{
		ClockConfig: engine.ClockConfig{Depth: i.options.depth},
		Debug:       i.options.debug,
	}
	for j := 0; j+1 < len(args); j += 2 {
		value, err := strconv.Atoi(args[j+1])
		if err != nil {
			return err
		}
		switch args[j] {
		case "perft":
			out := make(chan string, 64)
			done := make(chan struct{})
			go func() {
				defer close(done)
				for s := range out {
					i.println(s)
				}
			}()
			err := bench.Perft(value, i.rules.FEN(i.state), i.options.parallelPerft, true, out)
			close(out)
			<-done
			return err
		case "depth":
			cfg.ClockConfig.Depth = value
		case "movetime":
			cfg.ClockConfig.Movetime = time.Duration(value) * time.Millisecond
			cfg.ClockConfig.Depth = 0
		}
	}
	if !i.engineRunning.CompareAndSwap(false, true) {
		return nil
	}

	engineCtx, engineCancel := context.WithCancel(ctx)
	i.engineCancel = engineCancel
	i.engineWG.Add(1)
	st, e := i.state, i.engine
	go func() {
		defer i.engineWG.Done()
		defer i.engineRunning.Store(false)
		defer engineCancel()

		mv, err := e.Search(engineCtx, st, cfg)
		if err != nil {
			i.println(fmt.Sprintf("info string %v", err))
			i.println("bestmove 0000")
			return
		}
		i.println(fmt.Sprintf("bestmove %s", mv.UCI()))
	}()
	return nil
}

// commandStop ends a running search and waits for its bestmove.
func (i *Interface) commandStop(_ context.Context) {
	if i.engineCancel != nil {
		i.engineCancel()
	}
	i.engineWG.Wait()
}

func (i *Interface) reset(ctx context.Context) {
	i.commandStop(ctx)
	_ = i.commandPosition(ctx, []string{"startpos"})
	i.newEngine(ctx)
}

func (i *Interface) newEngine(ctx context.Context) {
	i.commandStop(ctx)
	i.engine = engine.NewEngine(&engine.EngineConfig{
		HashTableSize:  i.options.hashTableSize,
		DisablePruning: !i.options.pruning,
		Rules:          i.rules,
		Logger:         i.println,
	})
}

func (i *Interface) println(a ...any) {
	i.outMu.Lock()
	defer i.outMu.Unlock()
	fmt.Fprintln(i.out, a...)
}
