package remove

import (
	"fmt"
	"io"

	"github.com/lakshaymaurya-felt/officemole/internal/apps"
	"github.com/lakshaymaurya-felt/officemole/internal/config"
	"github.com/lakshaymaurya-felt/officemole/internal/core"
	"github.com/lakshaymaurya-felt/officemole/internal/logging"
	"github.com/lakshaymaurya-felt/officemole/internal/ui"
)

// Orchestrator sequences discovery, confirmation and removal, and owns the
// removal tally for one run. Execution is strictly sequential: targets are
// deleted one at a time, and the lazy pattern-resolution sequence is
// consumed directly in Run's own loop so every counter increment is visible
// to the final summary.
type Orchestrator struct {
	Bundles  []config.PathPattern
	Patterns []config.PathPattern
	Remover  Remover
	Resolver *Resolver
	In       io.Reader
	Out      io.Writer

	// Optional collaborators, nil to skip. New wires the real ones.
	QuitRunningApps func(bundlePaths []string)
	UnloadLaunchJob func(path string)
	ForgetReceipts  func() int
	FreeSpace       func() (uint64, bool)
}

// New returns an orchestrator wired with the static removal plan, the real
// darwin collaborators, and the given remover and operator streams.
func New(remover Remover, in io.Reader, out io.Writer) *Orchestrator {
	return &Orchestrator{
		Bundles:         config.AppBundles(),
		Patterns:        config.SupportPatterns(),
		Remover:         remover,
		Resolver:        NewResolver(),
		In:              in,
		Out:             out,
		QuitRunningApps: apps.QuitRunning,
		UnloadLaunchJob: UnloadLaunchJob,
		ForgetReceipts:  ForgetReceipts,
		FreeSpace: func() (uint64, bool) {
			free, err := core.FreeSpace("/")
			return free, err == nil
		},
	}
}

// Run executes the full removal flow and returns the process exit code:
// 0 on success, on nothing-found and on operator decline; 1 when one or
// more removals failed.
func (o *Orchestrator) Run() int {
	logger := logging.GetLogger("orchestrator")
	if o.Resolver == nil {
		o.Resolver = NewResolver()
	}

	fmt.Fprintln(o.Out, ui.Banner("Checking for Microsoft Office..."))

	found := Discover(o.Bundles, func(path string) {
		fmt.Fprintln(o.Out, ui.Accent("Found: "+path))
	})
	if len(found) == 0 {
		fmt.Fprintln(o.Out, "Microsoft Office not found. Nothing to do.")
		return 0
	}

	var bundleBytes int64
	for _, t := range found {
		bundleBytes += core.DirSize(t.Path)
	}

	fmt.Fprintf(o.Out, "\nThis will remove %d application(s) (%s) and all associated files. Continue? [y/N]: ",
		len(found), core.FormatSize(bundleBytes))
	if !Confirm(o.In) {
		fmt.Fprintln(o.Out, ui.Warn("Cancelled."))
		return 0
	}

	var freeBefore uint64
	haveFree := false
	if o.FreeSpace != nil {
		freeBefore, haveFree = o.FreeSpace()
	}

	if o.QuitRunningApps != nil {
		o.QuitRunningApps(targetPaths(found))
	}

	var tally Tally

	// ── Bundle phase: loud, one line per attempt ─────────────────
	for _, t := range found {
		if err := o.Remover.Remove(t.Path); err != nil {
			tally.Errors++
			logger.Debug().Err(err).Str("path", t.Path).Msg("bundle removal failed")
			fmt.Fprintln(o.Out, ui.Err("Error removing: "+t.Path))
			continue
		}
		tally.BundlesRemoved++
		fmt.Fprintln(o.Out, ui.OK("Removed: "+t.Path))
	}

	// ── Support phase: counted, not individually reported ───────
	// Matched support files are high-volume; per-item lines would bury
	// the bundle results. Failures still land in the tally.
	for _, p := range o.Patterns {
		matched := false
		for path := range o.Resolver.Resolve(p.Pattern) {
			matched = true
			if o.UnloadLaunchJob != nil && IsLaunchJobPlist(path) {
				o.UnloadLaunchJob(path)
			}
			if err := o.Remover.Remove(path); err != nil {
				tally.Errors++
				logger.Debug().Err(err).Str("path", path).Msg("support removal failed")
				continue
			}
			tally.SupportRemoved++
			logger.Debug().Str("path", path).Str("pattern", p.Pattern).Msg("support artifact removed")
		}
		if !matched {
			logger.Debug().Str("pattern", p.Pattern).Str("outcome", OutcomeSkipped.String()).Msg(p.Description)
		}
	}

	if o.ForgetReceipts != nil {
		if forgotten := o.ForgetReceipts(); forgotten > 0 {
			logger.Debug().Int("count", forgotten).Msg("installer receipts forgotten")
		}
	}

	fmt.Fprintln(o.Out)
	fmt.Fprintln(o.Out, "Removal Summary:")
	fmt.Fprintf(o.Out, "  Applications removed: %d\n", tally.BundlesRemoved)
	fmt.Fprintf(o.Out, "  Associated files/folders removed: %d\n", tally.SupportRemoved)
	fmt.Fprintf(o.Out, "  Errors: %d\n", tally.Errors)
	if haveFree {
		if freeAfter, ok := o.FreeSpace(); ok && freeAfter > freeBefore {
			fmt.Fprintf(o.Out, "  Disk space reclaimed: %s\n", core.FormatSize(int64(freeAfter-freeBefore)))
		}
	}
	fmt.Fprintln(o.Out)

	if tally.Errors > 0 {
		fmt.Fprintln(o.Out, ui.Failure("Removal completed with errors."))
		return 1
	}
	fmt.Fprintln(o.Out, ui.Success("Microsoft Office has been removed."))
	return 0
}

func targetPaths(targets []Target) []string {
	paths := make([]string, len(targets))
	for i, t := range targets {
		paths[i] = t.Path
	}
	return paths
}
