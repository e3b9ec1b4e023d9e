package remove

import (
	"os"

	"github.com/lakshaymaurya-felt/officemole/internal/config"
	"github.com/lakshaymaurya-felt/officemole/internal/pathutil"
)

// Discover checks each configured bundle path for existence as a directory
// and returns the ones present, preserving input order. Bundle paths are
// exact — no globbing happens at this stage. Each find is passed to report
// the moment it is made, not batched.
func Discover(bundles []config.PathPattern, report func(path string)) []Target {
	var found []Target
	for _, b := range bundles {
		path := pathutil.ExpandHome(b.Pattern)
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		if report != nil {
			report(path)
		}
		found = append(found, Target{Path: path, Scope: config.ScopeBundle})
	}
	return found
}
