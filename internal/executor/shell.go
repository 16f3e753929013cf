package executor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Shell runs commands through `bash -c`, streaming stdout and stderr line
// by line to its writers as the command runs, each line behind the stream's
// gutter.
type Shell struct {
	OutW io.Writer
	ErrW io.Writer
}

// Run implements Runner.
func (s *Shell) Run(ctx context.Context, command string, env map[string]string) (int, error) {
	cmd := exec.CommandContext(ctx, "bash", "-c", command)
	cmd.Env = overlayEnv(os.Environ(), env)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 0, fmt.Errorf("open stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return 0, fmt.Errorf("open stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("spawn failed: %w", err)
	}

	var wg sync.WaitGroup
	var outErr, errErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		outErr = copyLines(s.OutW, stdout, stdoutGutter)
	}()
	go func() {
		defer wg.Done()
		errErr = copyLines(s.ErrW, stderr, stderrGutter)
	}()
	wg.Wait()

	waitErr := cmd.Wait()
	if outErr != nil {
		return 0, fmt.Errorf("read stdout: %w", outErr)
	}
	if errErr != nil {
		return 0, fmt.Errorf("read stderr: %w", errErr)
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if waitErr != nil {
		return 0, fmt.Errorf("wait: %w", waitErr)
	}
	return 0, nil
}

// copyLines writes each line of r to w behind the stream's gutter. Output
// that is not valid UTF-8 is an error.
func copyLines(w io.Writer, r io.Reader, gutter *color.Color) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if !utf8.Valid(scanner.Bytes()) {
			return errors.New("output is not valid UTF-8")
		}
		fmt.Fprintf(w, "%s  %s\n", gutter.Sprint("┆"), scanner.Text())
	}
	return scanner.Err()
}

// overlayEnv appends the resolved variables to the host environment in
// sorted key order; later entries win when the process environment resolves
// duplicates.
func overlayEnv(host []string, env map[string]string) []string {
	merged := make([]string, len(host), len(host)+len(env))
	copy(merged, host)
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		merged = append(merged, k+"="+env[k])
	}
	return merged
}
