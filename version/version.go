// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports the name and build information of the running
// program.
package version

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime/debug"
	"strings"

	"go.astrophena.name/licenser/syncx"
)

// Info describes a build.
type Info struct {
	Name      string
	Version   string
	Commit    string
	Dirty     bool
	GoVersion string
}

// String returns a human-readable multi-line description of i.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", i.Name, i.Version)
	if i.Commit != "" {
		commit := i.Commit
		if i.Dirty {
			commit += "-dirty"
		}
		fmt.Fprintf(&sb, "commit: %s\n", commit)
	}
	fmt.Fprintf(&sb, "go: %s\n", i.GoVersion)
	return sb.String()
}

var info syncx.Lazy[Info]

// Version returns build information of the running program.
func Version() Info { return info.Get(readInfo) }

// CmdName returns the base name of the running program.
func CmdName() string { return Version().Name }

func readInfo() Info {
	i := Info{
		Name:    strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe"),
		Version: "devel",
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	i.GoVersion = bi.GoVersion
	if bi.Path != "" && !strings.HasSuffix(bi.Path, ".test") {
		i.Name = path.Base(bi.Path)
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		i.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.modified":
			i.Dirty = s.Value == "true"
		}
	}
	return i
}
