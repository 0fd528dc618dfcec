package hooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphi011/githooks/internal/config"
	"github.com/raphi011/githooks/internal/log"
	"github.com/raphi011/githooks/internal/source"
)

// Dispatch runs every active hook bound to the given event, across all
// materialized sources, in declaration order. A failing hook does not stop
// its siblings; after all matched hooks have been attempted the failures
// are returned as one aggregate error. A run where no hook matched is
// reported informationally, not as an error.
func Dispatch(ctx context.Context, root string, event config.Event, cfg *config.Config) error {
	l := log.FromContext(ctx)

	active := cfg.ActiveNames()
	ran := false
	var errs []error

	for _, src := range cfg.Sources {
		sourcePath, err := source.LocalPath(root, src.Origin)
		if err != nil {
			l.Warnf("skipping source %s: %v\n", src.Origin, err)
			continue
		}

		for _, h := range src.Hooks {
			if !active[h.Name] {
				l.Debugf("hook %q is not enabled in the top-level config, skipping\n", h.Name)
				continue
			}
			if !h.On(event) {
				continue
			}

			ran = true
			l.Printf("Running hook %q (%s)\n", h.Name, event)
			if err := Run(ctx, root, h, sourcePath); err != nil {
				l.Warnf("%v\n", err)
				errs = append(errs, err)
			}
		}
	}

	if !ran {
		l.Println("Nothing to do.")
		return nil
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d hook(s) failed for %s:\n%w", len(errs), event, errors.Join(errs...))
	}
	return nil
}
