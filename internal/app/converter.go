package app

import (
	"io"
	"time"

	"github.com/agbru/chapter3/internal/cli"
	"github.com/agbru/chapter3/internal/logging"
	"github.com/agbru/chapter3/internal/metrics"
	"github.com/agbru/chapter3/internal/temperature"
)

// runConverter asks for the target unit and the reading, then prints the
// conversion. The reading is parsed before the selector is checked, so a
// bad number is fatal even when the selector is also invalid.
func (a *Application) runConverter(p *cli.Prompter, out io.Writer) (string, error) {
	selector, err := p.Ask(cli.UnitPrompt)
	if err != nil {
		return "", err
	}
	value, err := cli.AskParsed(p, cli.TemperaturePrompt, cli.ParseTemperature, a.Config.Retry, a.onInvalid)
	if err != nil {
		return "", err
	}

	start := time.Now()
	unit, err := temperature.ParseSelector(selector)
	if err != nil {
		a.Logger.Debug("selector rejected", logging.String("selector", selector))
		cli.DisplayInvalidSelector(out, a.theme)
		return metrics.OutcomeInvalidSelector, nil
	}
	conv, err := temperature.Convert(unit, value)
	elapsed := time.Since(start)
	a.Metrics.ObserveCompute(elapsed)
	if err != nil {
		return "", err
	}

	a.Logger.Debug("temperature converted",
		logging.String("from", string(conv.From)),
		logging.String("to", string(conv.To)),
		logging.Float64("input", conv.Input),
		logging.Float64("result", conv.Result),
		logging.Duration("elapsed", elapsed))

	cli.DisplayConversion(out, conv, a.theme)
	return metrics.OutcomeOK, nil
}
