package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/bitcore/board"
	"github.com/daystram/bitcore/position"
)

// Result counts the work done by one Run.
type Result struct {
	Attacks  uint64 // attacked squares summed over both sides
	Applied  uint64
	Captures uint64
	Checks   uint64 // applications leaving the opposing king attacked
	Elapsed  time.Duration
}

// Run repeatedly computes both sides' attack sets on the position and applies
// then undoes every attack target of every piece. Targets occupied by the
// mover's own pieces are skipped. Legality is not considered.
func Run(fen string, iterations int, parallel bool, out chan string) (Result, error) {
	var res Result
	b, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return res, err
	}

	var run runFunc
	if parallel {
		run = runParallel
	} else {
		run = runSequential
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := run(b, &res); err != nil {
			return res, err
		}
	}
	res.Elapsed = time.Since(start)

	out <- message.NewPrinter(language.English).
		Sprintf("i=%d attacks=%d applied=%d rate=%dop/s cap=%d chk=%d (%.3fs elapsed)",
			iterations, res.Attacks, res.Applied, int(float64(res.Applied)/res.Elapsed.Seconds()),
			res.Captures, res.Checks, res.Elapsed.Seconds())

	return res, nil
}

type runFunc func(b *board.Board, res *Result) error

func runSequential(b *board.Board, res *Result) error {
	for _, s := range board.SideList {
		res.Attacks += uint64(b.AttackedSquares(s).BitCount())
	}
	for bm := b.Occupied(); bm != 0; {
		applied, captures, checks, err := applyFrom(b, bm.PopLS1B())
		if err != nil {
			return err
		}
		res.Applied += applied
		res.Captures += captures
		res.Checks += checks
	}
	return nil
}

func runParallel(b *board.Board, res *Result) error {
	var (
		wg   sync.WaitGroup
		errs = make(chan error, board.TotalCells)
	)
	for _, s := range board.SideList {
		s := s
		wg.Add(1)
		go func() {
			defer wg.Done()
			atomic.AddUint64(&res.Attacks, uint64(b.AttackedSquares(s).BitCount()))
		}()
	}
	for bm := b.Occupied(); bm != 0; {
		from := bm.PopLS1B()
		wg.Add(1)
		go func() {
			defer wg.Done()
			applied, captures, checks, err := applyFrom(b.Clone(), from)
			if err != nil {
				errs <- err
				return
			}
			atomic.AddUint64(&res.Applied, applied)
			atomic.AddUint64(&res.Captures, captures)
			atomic.AddUint64(&res.Checks, checks)
		}()
	}
	wg.Wait()
	close(errs)
	return <-errs
}

// applyFrom plays every attack target of the piece on from, restoring b after each.
func applyFrom(b *board.Board, from position.Pos) (applied, captures, checks uint64, err error) {
	s, ok := b.SideAt(from)
	if !ok {
		return 0, 0, 0, nil
	}
	for targets := b.AttacksFrom(from) &^ b.SideBitmap(s); targets != 0; {
		mv, err := b.NewMove(from, targets.PopLS1B(), board.PieceUnknown)
		if err != nil {
			return applied, captures, checks, err
		}
		unApply := b.Apply(mv)
		applied++
		if mv.IsCapture() {
			captures++
		}
		if b.IsKingChecked(s.Opposite()) {
			checks++
		}
		if err := b.Validate(); err != nil {
			unApply()
			return applied, captures, checks, fmt.Errorf("after %s: %w", mv.UCI(), err)
		}
		unApply()
	}
	return applied, captures, checks, nil
}
