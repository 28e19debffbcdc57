// Package buildinfo exposes build metadata injected at link time via
// -ldflags and renders it as a version banner.
package buildinfo

import (
	"fmt"
	"io"

	goversion "github.com/caarlos0/go-version"
)

// Set via -ldflags, e.g.:
//
//	go build -ldflags "-X greeter-demo/internal/buildinfo.version=v1.2.3"
var (
	version = "dev"
	commit  = ""
	date    = ""
	builtBy = ""
)

// Info assembles the version report for the current binary.
func Info() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails("greeter-demo", "Prints a greeting and a small arithmetic summary.", ""),
		func(i *goversion.Info) {
			if commit != "" {
				i.GitCommit = commit
			}
			if version != "" {
				i.GitVersion = version
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}

// Print writes the version banner to w.
func Print(w io.Writer) {
	fmt.Fprintln(w, Info().String())
}
