package main

import (
	"runtime"

	"github.com/bnema/quadchat/internal/cli/cmd"
	"github.com/bnema/quadchat/internal/domain/build"
	"github.com/bnema/quadchat/pkg/webkit"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	// GTK must run on the thread main starts on.
	webkit.InitMainThread()
}

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
