package main

import (
	"log"

	"github.com/daystram/gambit/bench"
)

func perft(depth int, fen string) error {
	for _, p := range []struct {
		name     string
		parallel bool
	}{
		{name: "dfs", parallel: false},
		{name: "parallel dfs", parallel: true},
	} {
		log.Printf("============ perft(%d): %s\n", depth, p.name)

		out := make(chan string, 64)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for s := range out {
				log.Println(s)
			}
		}()
		err := bench.Perft(depth, fen, p.parallel, true, out)
		close(out)
		<-done
		if err != nil {
			return err
		}
	}
	return nil
}
