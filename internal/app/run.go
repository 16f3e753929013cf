package app

import (
	"context"
	"fmt"

	"github.com/zerotired/yake/internal/ctxlog"
	"github.com/zerotired/yake/internal/executor"
	"github.com/zerotired/yake/internal/fsutil"
	"github.com/zerotired/yake/internal/resolver"
	"github.com/zerotired/yake/internal/yakefile"
)

// Run loads the root Yakefile, composes subordinate documents when the root
// asks for them, and executes the configured target.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("loading root yakefile", "path", a.config.YakefilePath)

	root, err := yakefile.Load(a.config.YakefilePath)
	if err != nil {
		return err
	}

	if root.Meta.IncludeRecursively {
		paths, err := fsutil.FindYakefiles(a.config.Dir)
		if err != nil {
			return fmt.Errorf("discover subordinate yakefiles: %w", err)
		}
		a.logger.Debug("discovered subordinate yakefiles", "count", len(paths))
		for _, path := range paths {
			sub, err := yakefile.Load(path)
			if err != nil {
				return err
			}
			resolver.Merge(root, sub)
		}
	}

	return executor.New(a.runner, a.outW).Execute(ctx, root, a.config.Target)
}
