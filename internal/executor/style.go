package executor

import "github.com/fatih/color"

// Output styling mirrors the stream tagging users rely on to tell command
// output apart: blue banners, a green gutter for stdout, a red one for
// stderr. Honors color.NoColor.
var (
	bannerStyle  = color.New(color.FgBlue, color.Bold)
	commandStyle = color.New(color.FgGreen, color.Bold)
	stdoutGutter = color.New(color.FgGreen, color.Bold)
	stderrGutter = color.New(color.FgRed, color.Bold)
)
