package executor

import (
	"context"
	"fmt"
	"io"

	"github.com/zerotired/yake/internal/ctxlog"
	"github.com/zerotired/yake/internal/resolver"
	"github.com/zerotired/yake/internal/yakefile"
)

// Runner abstracts shell command execution so tests can substitute a
// recorder for the real shell.
type Runner interface {
	// Run executes command through a shell with env overlaid on the host
	// environment and returns the command's exit status. The returned error
	// covers spawn and output-decoding failures, not a non-zero exit.
	Run(ctx context.Context, command string, env map[string]string) (int, error)
}

// CommandError reports a command that could not be spawned or whose output
// could not be read back as text.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Executor drives the sequential execution protocol for one document.
type Executor struct {
	runner Runner
	outW   io.Writer
}

// New returns an Executor writing its banners to outW.
func New(runner Runner, outW io.Writer) *Executor {
	return &Executor{runner: runner, outW: outW}
}

// Execute runs the named target's direct dependencies in declared order,
// then the target itself. The environment is resolved once, by the requested
// name, and reused for every dependency's commands; a dependency never gets
// an independently resolved environment. The first command that fails to
// spawn aborts the remaining sequence.
func (e *Executor) Execute(ctx context.Context, yf *yakefile.Yakefile, name string) error {
	target, ok := resolver.Lookup(yf, name)
	if !ok {
		return &resolver.UnknownTargetError{Name: name, Known: resolver.TargetNames(yf)}
	}

	deps, err := resolver.DependenciesOf(yf, name)
	if err != nil {
		return err
	}

	env, err := resolver.ResolvedEnv(yf, name)
	if err != nil {
		return err
	}

	ctxlog.FromContext(ctx).Debug("executing target",
		"target", name, "dependencies", len(deps), "env_keys", len(env))

	for _, dep := range deps {
		if err := e.runTarget(ctx, dep, env); err != nil {
			return err
		}
	}
	return e.runTarget(ctx, target, env)
}

// runTarget runs one target's command list. Targets without commands run
// nothing and print nothing. A non-zero exit status does not abort the
// sequence; only spawn and decode failures do.
func (e *Executor) runTarget(ctx context.Context, target *yakefile.Target, env map[string]string) error {
	if len(target.Exec) == 0 {
		return nil
	}
	logger := ctxlog.FromContext(ctx)
	for _, command := range target.Exec {
		fmt.Fprintf(e.outW, "%s %s:\n",
			bannerStyle.Sprint("↪ Executing"), commandStyle.Sprint(command))
		status, err := e.runner.Run(ctx, command, env)
		if err != nil {
			return &CommandError{Command: command, Err: err}
		}
		if status != 0 {
			logger.Warn("command exited non-zero", "command", command, "status", status)
		}
	}
	fmt.Fprintln(e.outW, bannerStyle.Sprint("↪ Done"))
	return nil
}
