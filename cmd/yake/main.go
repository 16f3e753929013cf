package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/zerotired/yake/internal/cli"
)

// main is the entrypoint for the yake application.
func main() {
	// Use a minimal logger until the command configures the real one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		cli.Render(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW, errW io.Writer, args []string) error {
	cmd := cli.NewRootCommand(outW, errW, nil)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}
