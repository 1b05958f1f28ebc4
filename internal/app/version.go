package app

import (
	"fmt"
	"io"

	"github.com/agbru/chapter3/internal/config"
)

// Version is set at build time with -ldflags "-X github.com/agbru/chapter3/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether args ask for the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes "{program} {version}".
func PrintVersion(out io.Writer, program config.Program) {
	fmt.Fprintf(out, "%s %s\n", program.Name(), Version)
}
