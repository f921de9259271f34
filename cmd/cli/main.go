package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/riggraph/internal/app"
	"github.com/vk/riggraph/internal/cli"
	"github.com/vk/riggraph/internal/config"
	"github.com/vk/riggraph/internal/hcl"
	"github.com/vk/riggraph/internal/yamlconfig"
)

// main is the entrypoint for the riggraph application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The graph builder panics on internal model errors; report them as a
	// regular failure.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("riggraph panicked: %v", r)
		}
	}()

	loader := config.MultiLoader{hcl.NewLoader(), yamlconfig.NewLoader()}
	return app.NewApp(outW, errW, appConfig, loader).Run(context.Background())
}
