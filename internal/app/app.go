package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/agbru/chapter3/internal/cli"
	"github.com/agbru/chapter3/internal/config"
	apperrors "github.com/agbru/chapter3/internal/errors"
	"github.com/agbru/chapter3/internal/logging"
	"github.com/agbru/chapter3/internal/metrics"
	"github.com/agbru/chapter3/internal/ui"
)

// progressIndicator is the part of cli.ProgressIndicator the evaluator uses.
type progressIndicator interface {
	Start()
	Update(progress float64)
	Stop()
}

// Application is one run of a console program.
type Application struct {
	Config    config.AppConfig
	In        io.Reader
	ErrWriter io.Writer
	Logger    logging.Logger
	Metrics   *metrics.Recorder

	// newProgress returns nil when no progress should be drawn.
	newProgress           func(label string) progressIndicator
	// progressMinIterations keeps the spinner away from runs that finish
	// before it would draw a frame.
	progressMinIterations uint64
	// rejected counts answers refused so far in retry mode.
	rejected              int

	theme    ui.Theme
	errTheme ui.Theme
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the default stderr logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithMetrics replaces the default metrics recorder.
func WithMetrics(m *metrics.Recorder) AppOption {
	return func(a *Application) { a.Metrics = m }
}

// New creates an Application for program by parsing command-line arguments.
// args includes the program name, as in os.Args.
func New(program config.Program, args []string, in io.Reader, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := program.Name()
	var cmdArgs []string
	if len(args) > 0 {
		programName = filepath.Base(args[0])
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, program, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	a := &Application{
		Config:                cfg,
		In:                    in,
		ErrWriter:             errWriter,
		progressMinIterations: defaultProgressMinIterations,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Logger == nil {
		level := zerolog.WarnLevel
		if cfg.Verbose {
			level = zerolog.DebugLevel
		}
		a.Logger = logging.NewConsoleLogger(errWriter, program.Name(), level, cfg.NoColor)
	}
	if a.Metrics == nil {
		a.Metrics = metrics.NewRecorder(program.Name())
	}
	if a.newProgress == nil {
		a.newProgress = terminalProgress(errWriter)
	}
	return a, nil
}

// terminalProgress draws a spinner on w only when w is a terminal, so
// redirected stderr stays clean.
func terminalProgress(w io.Writer) func(label string) progressIndicator {
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return func(string) progressIndicator { return nil }
	}
	return func(label string) progressIndicator {
		return cli.NewProgressIndicator(f, label)
	}
}

// Run executes one prompt/compute/print cycle and returns the process exit
// code. Prompts and results go to out; diagnostics go to ErrWriter.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	a.theme = ui.NewTheme(out, a.Config.NoColor)
	a.errTheme = ui.NewTheme(a.ErrWriter, a.Config.NoColor)
	prompter := cli.NewPrompter(a.In, out, a.theme)

	var (
		outcome string
		err     error
	)
	switch a.Config.Program {
	case config.ProgramSequence:
		outcome, err = a.runSequence(ctx, prompter, out)
	case config.ProgramConverter:
		outcome, err = a.runConverter(prompter, out)
	default:
		err = apperrors.NewConfigError("unknown program %d", a.Config.Program)
	}
	if err != nil {
		outcome = outcomeFor(err)
	}

	a.Metrics.ObserveRun(outcome)
	a.writeMetrics()

	if err != nil {
		a.Logger.Debug("run failed", logging.String("outcome", outcome), logging.Err(err))
		return apperrors.HandleError(err, a.ErrWriter, a.errTheme)
	}
	return apperrors.ExitSuccess
}

// onInvalid reports a rejected answer before the question is asked again.
func (a *Application) onInvalid(err error) {
	a.rejected++
	a.Metrics.ObserveRetry()
	a.Logger.Debug("input rejected", logging.Int("rejected", a.rejected), logging.Err(err))
	cli.DisplayRetryNotice(a.ErrWriter, err, a.errTheme)
}

func (a *Application) writeMetrics() {
	if a.Config.MetricsFile == "" {
		return
	}
	if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
		a.Logger.Warn("could not write metrics file",
			logging.String("path", a.Config.MetricsFile), logging.Err(err))
		return
	}
	a.Logger.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
}

func outcomeFor(err error) string {
	var (
		readErr     apperrors.ReadError
		overflowErr apperrors.OverflowError
	)
	switch {
	case apperrors.IsContextError(err):
		return metrics.OutcomeCanceled
	case errors.As(err, &readErr):
		return metrics.OutcomeReadError
	case errors.As(err, &overflowErr):
		return metrics.OutcomeOverflow
	case apperrors.IsInputError(err):
		return metrics.OutcomeInputError
	default:
		return metrics.OutcomeError
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// HandleInitError turns an error from New into an exit code. Help exits 0.
// Flag syntax errors were already reported by the flag package; invalid
// values get a diagnostic here.
func HandleInitError(err error, errWriter io.Writer) int {
	var configErr apperrors.ConfigError
	switch {
	case err == nil, IsHelpError(err):
		return apperrors.ExitSuccess
	case errors.As(err, &configErr):
		return apperrors.HandleError(err, errWriter, ui.NewTheme(errWriter, false))
	default:
		return apperrors.ExitErrorGeneric
	}
}
