// Package buildinfo reports how the binary was built.
package buildinfo

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/dmitrijs2005/keeperdemo/internal/buildinfo.buildVersion=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// readBuildInfo is a test seam for debug.ReadBuildInfo.
var readBuildInfo = debug.ReadBuildInfo

// Data is the resolved build metadata. Unknown values are "N/A".
type Data struct {
	Version string
	Date    string
	Commit  string
}

// Current resolves build data from linker flags, falling back to the VCS
// settings embedded by the go tool.
func Current() Data {
	d := Data{Version: buildVersion, Date: buildDate, Commit: buildCommit}

	if info, ok := readBuildInfo(); ok && info != nil {
		if d.Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			d.Version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if d.Commit == "" {
					d.Commit = s.Value
					if len(d.Commit) > 12 {
						d.Commit = d.Commit[:12]
					}
				}
			case "vcs.time":
				if d.Date == "" {
					d.Date = s.Value
				}
			}
		}
	}

	for _, p := range []*string{&d.Version, &d.Date, &d.Commit} {
		if *p == "" {
			*p = "N/A"
		}
	}
	return d
}

// PrintBuildData writes the build banner to w.
func PrintBuildData(w io.Writer) {
	d := Current()
	fmt.Fprintf(w, "Build version: %s\n", d.Version)
	fmt.Fprintf(w, "Build date: %s\n", d.Date)
	fmt.Fprintf(w, "Build commit: %s\n", d.Commit)
}
