// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strings"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the program prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
// A zero program applies to both programs.
type envOverride struct {
	envKey  string
	flags   []string
	program Program
	apply   func(c *AppConfig, convention *string, v string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"VERBOSE", []string{"v", "verbose"}, 0, func(c *AppConfig, _ *string, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"RETRY", []string{"retry"}, 0, func(c *AppConfig, _ *string, v string) {
		c.Retry = parseBoolEnv(v, c.Retry)
	}},
	{"METRICS_FILE", []string{"metrics-file"}, 0, func(c *AppConfig, _ *string, v string) {
		c.MetricsFile = v
	}},
	{"CONVENTION", []string{"convention"}, ProgramSequence, func(_ *AppConfig, convention *string, v string) {
		*convention = v
	}},
	{"BIG", []string{"big"}, ProgramSequence, func(c *AppConfig, _ *string, v string) {
		c.Big = parseBoolEnv(v, c.Big)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
// The raw convention string is threaded through so it is validated once,
// after all sources are merged.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet, convention string) string {
	prefix := config.Program.EnvPrefix()
	for _, o := range envOverrides {
		if o.program != 0 && o.program != config.Program {
			continue
		}
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(prefix + o.envKey); val != "" {
			o.apply(config, &convention, val)
		}
	}
	return convention
}
