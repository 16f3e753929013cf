// Package executor runs a resolved target: each direct dependency's
// commands in declared order, then the target's own commands. Execution is
// strictly sequential; there is no parallelism, no retry and no rollback.
package executor
