// Package version reports the gorcw build.
//
// Version, GitCommit and BuildTime are overridden at link time:
//
//	go build -ldflags "-X github.com/alexiusacademia/gorcw/internal/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"

	Author = "Alexius Academia"
	Year   = "2025"
)

// Info describes one build of the calculator
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
}

// Get returns the linked build info, falling back to the VCS stamp
// the go command embeds when GitCommit was not set with -ldflags.
func Get() Info {
	info := Info{Version: Version}
	if GitCommit != "unknown" {
		info.GitCommit = GitCommit
	}
	if BuildTime != "unknown" {
		info.BuildTime = BuildTime
	}
	if info.GitCommit != "" {
		return info
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) > 7 {
				s.Value = s.Value[:7]
			}
			info.GitCommit = s.Value
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		}
	}
	return info
}

// String formats the info as printed by `gorcw version`
func (i Info) String() string {
	s := "gorcw v" + i.Version
	switch {
	case i.GitCommit != "" && i.BuildTime != "":
		s += fmt.Sprintf(" (commit %s, built %s)", i.GitCommit, i.BuildTime)
	case i.GitCommit != "":
		s += fmt.Sprintf(" (commit %s)", i.GitCommit)
	}
	return s
}
