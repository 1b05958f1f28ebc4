package main

import (
	"context"
	"os"

	"github.com/agbru/chapter3/internal/app"
	"github.com/agbru/chapter3/internal/config"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout, config.ProgramSequence)
		return
	}

	application, err := app.New(config.ProgramSequence, os.Args, os.Stdin, os.Stderr)
	if err != nil {
		os.Exit(app.HandleInitError(err, os.Stderr))
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
