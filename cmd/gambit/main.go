package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/daystram/gambit/board"
	"github.com/daystram/gambit/uci"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")
	svgPath     = flag.String("svg", "", "write the board and the moves of the side to move as SVG to this file")

	stepRun = flag.Bool("step", false, "run step mode")

	perftDepth = flag.Int("perft", 0, "run perft to this depth")

	searchRun      = flag.Bool("search", false, "run search mode")
	searchDepth    = flag.Int("search.depth", 0, "search depth in search mode")
	searchMovetime = flag.Int("search.movetime", 0, "search movetime in milliseconds in search mode")
	searchNoPrune  = flag.Bool("search.noprune", false, "disable alpha-beta pruning in search mode")
	searchSteps    = flag.Int("search.steps", 50, "number of moves to play in search mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(fen, *movegenDraw, *svgPath)
	}
	if *stepRun {
		return step(fen)
	}
	if *perftDepth > 0 {
		return perft(*perftDepth, fen)
	}
	if *searchRun {
		return search(fen, *searchSteps, *searchDepth, *searchMovetime, *searchNoPrune)
	}

	return runUCI()
}

func runUCI() error {
	return uci.NewInterface(os.Stdout).Run(os.Stdin)
}
