// Package config parses the command line and environment of both console
// programs into an AppConfig.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/agbru/chapter3/internal/sequence"
)

// Program identifies which console program is being configured.
type Program int

const (
	// ProgramSequence is the Fibonacci sequence position evaluator.
	ProgramSequence Program = iota + 1
	// ProgramConverter is the Celsius/Fahrenheit converter.
	ProgramConverter
)

// Name returns the binary name of the program.
func (p Program) Name() string {
	switch p {
	case ProgramSequence:
		return "fibseq"
	case ProgramConverter:
		return "tempconv"
	}
	return "unknown"
}

// EnvPrefix returns the prefix of the program's environment variables,
// e.g. FIBSEQ_.
func (p Program) EnvPrefix() string {
	return strings.ToUpper(p.Name()) + "_"
}

// AppConfig holds the resolved configuration of one run.
type AppConfig struct {
	// Program is the console program being run.
	Program Program
	// Verbose enables debug logging on stderr.
	Verbose bool
	// NoColor disables styled output.
	NoColor bool
	// Retry asks again after unparseable input instead of aborting.
	Retry bool
	// MetricsFile, when set, receives the run metrics in Prometheus text format.
	MetricsFile string
	// Convention selects the sequence loop convention (fibseq only).
	Convention sequence.Convention
	// Big switches the evaluator to arbitrary precision (fibseq only).
	Big bool
}

// ParseConfig parses args (without the program name) for program. Usage
// and flag errors are written to errWriter. flag.ErrHelp is returned as is
// when help was requested.
func ParseConfig(programName string, program Program, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{Program: program}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Log debug diagnostics to stderr.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output (also honours NO_COLOR).")
	fs.BoolVar(&cfg.Retry, "retry", false, "Ask again after invalid input instead of exiting.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file.")

	var convention string
	if program == ProgramSequence {
		fs.StringVar(&convention, "convention", sequence.ConventionLegacy.String(),
			fmt.Sprintf("Loop convention (%s).", strings.Join(sequence.ConventionNames(), ", ")))
		fs.BoolVar(&cfg.Big, "big", false, "Use arbitrary precision instead of failing on 64-bit overflow.")
	}

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "%s\n\nFlags:\n", description(program))
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nEnvironment variables use the %s prefix, e.g. %sRETRY=true.\n",
			program.EnvPrefix(), program.EnvPrefix())
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintln(errWriter, err)
		fs.Usage()
		return cfg, err
	}

	convention = applyEnvOverrides(&cfg, fs, convention)

	if program == ProgramSequence {
		c, err := sequence.ParseConvention(convention)
		if err != nil {
			return cfg, err
		}
		cfg.Convention = c
	}
	return cfg, nil
}

func description(p Program) string {
	switch p {
	case ProgramSequence:
		return "Reads a position n and prints the Fibonacci number at that position."
	case ProgramConverter:
		return "Converts a temperature between Celsius and Fahrenheit."
	}
	return ""
}
