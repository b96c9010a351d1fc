package rosterreport

import "github.com/louisbranch/tavernstats/internal/platform/viewer"

// deps are the side-effecting collaborators of a run.
type deps struct {
	opener viewer.Opener
}

func defaultDeps(cfg Config) deps {
	if !cfg.Open {
		return deps{opener: viewer.Nop{}}
	}
	return deps{opener: viewer.Default()}
}
