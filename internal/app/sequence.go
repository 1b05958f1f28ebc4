package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/chapter3/internal/cli"
	"github.com/agbru/chapter3/internal/logging"
	"github.com/agbru/chapter3/internal/metrics"
	"github.com/agbru/chapter3/internal/sequence"
)

const defaultProgressMinIterations = 1 << 20

// runSequence asks for a position, evaluates it and prints the result line.
func (a *Application) runSequence(ctx context.Context, p *cli.Prompter, out io.Writer) (string, error) {
	n, err := cli.AskParsed(p, cli.SequencePrompt, cli.ParsePosition, a.Config.Retry, a.onInvalid)
	if err != nil {
		return "", err
	}
	a.Logger.Debug("position read", logging.Uint64("n", n))

	start := time.Now()
	var res sequence.Result
	if a.Config.Big {
		res, err = a.evaluateBig(ctx, n)
	} else {
		res, err = sequence.Evaluate(n, a.Config.Convention)
	}
	elapsed := time.Since(start)
	a.Metrics.ObserveCompute(elapsed)
	if err != nil {
		return "", err
	}
	a.Metrics.ObserveIterations(res.Iterations)

	a.Logger.Debug("sequence evaluated",
		logging.Uint64("n", n),
		logging.Uint64("reported", res.Reported),
		logging.String("convention", res.Convention.String()),
		logging.Uint64("iterations", res.Iterations),
		logging.Bool("big", a.Config.Big),
		logging.Duration("elapsed", elapsed))

	cli.DisplaySequenceResult(out, res, a.theme)
	return metrics.OutcomeOK, nil
}

// evaluateBig runs the arbitrary-precision loop. Only this phase listens
// for SIGINT/SIGTERM; the input wait keeps the default signal behavior.
func (a *Application) evaluateBig(ctx context.Context, n uint64) (sequence.Result, error) {
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	var progress sequence.ProgressFunc
	if sequence.Iterations(n, a.Config.Convention) >= a.progressMinIterations {
		if ind := a.newProgress(fmt.Sprintf("F(%d)", n)); ind != nil {
			ind.Start()
			defer ind.Stop()
			progress = ind.Update
		}
	}
	return sequence.EvaluateBig(ctx, n, a.Config.Convention, progress)
}
