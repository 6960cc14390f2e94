package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/daystram/bitcore/board"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	moves   = flag.String("moves", "", "comma separated UCI moves to apply, e.g. e2e4,e7e5")
	attacks = flag.Bool("attacks", false, "print the squares attacked by each side")
	check   = flag.Bool("check", false, "validate board consistency after every applied move")
	noColor = flag.Bool("nocolor", false, "disable colored diagrams")
	svgOut  = flag.String("svg", "", "write an SVG diagram of the final position to this path")

	benchRun        = flag.Bool("bench", false, "run bench mode")
	benchIterations = flag.Int("bench.iterations", 10_000, "iterations in bench mode")
	benchParallel   = flag.Bool("bench.parallel", false, "fan bench work out over goroutines")
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
	if *benchRun {
		return runBench(fen, *benchIterations, *benchParallel)
	}

	return inspect(fen, inspectConfig{
		moves:   splitMoves(*moves),
		attacks: *attacks,
		check:   *check,
		color:   !*noColor,
		svgPath: *svgOut,
	})
}

func splitMoves(s string) []string {
	var mvs []string
	for _, mv := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		mvs = append(mvs, strings.ToLower(mv))
	}
	return mvs
}
