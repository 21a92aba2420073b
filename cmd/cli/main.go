package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/contentkit/taxokit/internal/app"
	"github.com/contentkit/taxokit/internal/cli"
	"github.com/contentkit/taxokit/internal/hcl"
	"github.com/contentkit/taxokit/internal/memhost"
)

// main is the entrypoint for the taxokit application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors (bad definitions, key
	// collisions), so we recover here to provide a clean exit message.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	// Instantiate the concrete HCL loader and the in-memory host. A real
	// CMS core would pass its own taxonomy.Host implementation instead.
	loader := hcl.NewLoader()
	host := memhost.New()
	taxokitApp := app.NewApp(outW, appConfig, loader, host)

	return taxokitApp.Run(context.Background(), appConfig)
}
