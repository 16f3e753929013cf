// Package cli defines the yake command-line surface.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/zerotired/yake/internal/app"
	"github.com/zerotired/yake/internal/executor"
)

// version is overridden via -ldflags at release time.
var version = "dev"

// NewRootCommand builds the yake root command. The runner is injectable for
// tests; nil selects the real shell.
func NewRootCommand(outW, errW io.Writer, runner executor.Runner) *cobra.Command {
	var opts struct {
		file      string
		dir       string
		logLevel  string
		logFormat string
		noColor   bool
	}

	cmd := &cobra.Command{
		Use:   "yake TARGET",
		Short: "make with YAML files",
		Long: `Yake executes targets declared in a Yakefile.

A Yakefile describes a tree of named targets: groups form namespaces,
callables carry shell commands, and a target may depend on other targets
and declare environment variables that merge along its ancestor chain.`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.NewConfig(app.Config{
				YakefilePath: opts.file,
				Dir:          opts.dir,
				Target:       args[0],
				LogLevel:     opts.logLevel,
				LogFormat:    opts.logFormat,
				NoColor:      opts.noColor,
			})
			if err != nil {
				return err
			}
			return app.New(outW, errW, cfg, runner).Run(cmd.Context())
		},
	}

	cmd.SetOut(outW)
	cmd.SetErr(errW)
	cmd.Flags().StringVarP(&opts.file, "file", "f", "Yakefile", "path to the root Yakefile")
	cmd.Flags().StringVarP(&opts.dir, "directory", "C", ".", "directory searched for subordinate Yakefiles")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable ANSI colors in execution output")

	return cmd
}
