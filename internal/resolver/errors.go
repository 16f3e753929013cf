package resolver

import (
	"fmt"
	"strings"
)

// reservedEnv lists the variable names a Yakefile must never set. They are
// inherited from the host process; overriding them breaks path and locale
// expansion in spawned shells.
var reservedEnv = []string{"TERM", "TZ", "LANG", "PATH", "HOME"}

// UnknownTargetError reports a name that does not resolve, either as the
// requested target or inside a depends list. Known carries the sorted
// qualified names of every Callable target so callers can print them.
type UnknownTargetError struct {
	Name        string
	DependentOf string
	Known       []string
}

func (e *UnknownTargetError) Error() string {
	if e.DependentOf != "" {
		return fmt.Sprintf("unknown dependency %q in target %q", e.Name, e.DependentOf)
	}
	return fmt.Sprintf("unknown target %q", e.Name)
}

// ReservedEnvError reports reserved variable names found in a resolved
// environment, whichever merge layer introduced them.
type ReservedEnvError struct {
	Target string
	Keys   []string
}

func (e *ReservedEnvError) Error() string {
	return fmt.Sprintf("target %q: forbidden environment variables: %s",
		e.Target, strings.Join(e.Keys, ", "))
}
