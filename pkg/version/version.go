// Package version identifies the running binary. The commit comes from an
// -ldflags override when set (container builds without .git), otherwise from
// the module's embedded VCS metadata, otherwise "dev".
package version

import "runtime/debug"

// AppName appears in version strings, hello payloads, and MCP handshakes.
const AppName = "edged"

// gitCommitOverride is injected at build time via
// -ldflags "-X .../pkg/version.gitCommitOverride=<sha>".
var gitCommitOverride string

// GitCommit is the short commit hash, or "dev" outside a VCS build.
var GitCommit = resolveCommit()

const shortLen = 8

func resolveCommit() string {
	if gitCommitOverride != "" {
		return short(gitCommitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
}

func short(rev string) string {
	if len(rev) > shortLen {
		return rev[:shortLen]
	}
	return rev
}

// Full returns "<app>/<commit>", the form used in user agents and logs.
func Full() string {
	return AppName + "/" + GitCommit
}
