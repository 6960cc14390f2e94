package main

import (
	"log"

	"github.com/daystram/bitcore/bench"
)

func runBench(fen string, iterations int, parallel bool) error {
	mode := "sequential"
	if parallel {
		mode = "parallel"
	}
	log.Printf("============ bench(%d): %s\n", iterations, mode)

	out := make(chan string, 1)
	if _, err := bench.Run(fen, iterations, parallel, out); err != nil {
		return err
	}
	log.Println(<-out)
	return nil
}
