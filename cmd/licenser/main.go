// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"go.astrophena.name/licenser/cli"
	"go.astrophena.name/licenser/licenser"
)

func main() { cli.Main(new(app)) }

type app struct {
	fs *flag.FlagSet

	configPath   string
	opts         licenser.Config
	extensions   listFlag
	excludePaths listFlag
}

func (a *app) Flags(fs *flag.FlagSet) {
	a.fs = fs
	fs.StringVar(&a.configPath, "config", "", "Read options from YAML `file`. Flags take precedence.")
	fs.StringVar(&a.opts.LicenseKey, "license_key", "", "License to insert, e.g. MIT or Apache-2.0.")
	fs.StringVar(&a.opts.ProjectName, "project_name", "", "Project `name` substituted into the header.")
	fs.StringVar(&a.opts.Authors, "authors", "", "Copyright holders substituted into the header.")
	fs.StringVar(&a.opts.RootPath, "root_path", "", "Directory to process recursively.")
	fs.Var(&a.extensions, "extensions", "Space-separated file name suffixes to process (default \".py\"). Can be repeated.")
	fs.BoolVar(&a.opts.CreateBackup, "create_backup", false, "Save the original of each modified file as <file>.bak.")
	fs.BoolVar(&a.opts.CheckExact, "check_exact", false, "Skip only files carrying the exact header of a known license.")
	fs.Var(&a.excludePaths, "exclude_paths", "Space-separated regular expressions matched against file names without extension (default \"__init__\"). Can be repeated.")
	fs.IntVar(&a.opts.Year, "year", 0, "Copyright year (default current year).")
	fs.BoolVar(&a.opts.DryRun, "dry_run", false, "Print diffs instead of modifying files.")
	fs.BoolVar(&a.opts.Check, "check", false, "Fail if any file lacks a header. Nothing is modified.")
	fs.IntVar(&a.opts.Jobs, "jobs", 0, "Number of files processed concurrently (default GOMAXPROCS).")
	fs.StringVar(&a.opts.ReportPath, "report", "", "Write an HTML report of the run to `file`.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrInvalidArgs, env.Args)
	}

	cfg, err := a.config()
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
	}
	cfg.Stdout = env.Stdout

	rep, err := licenser.Run(ctx, cfg)
	if errors.Is(err, licenser.ErrInvalidConfig) {
		return fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
	}
	if rep != nil {
		if werr := rep.WriteSummary(env.Stderr); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

// config loads the config file, if any, and applies the flags that were set
// on the command line on top of it.
func (a *app) config() (*licenser.Config, error) {
	cfg := new(licenser.Config)
	if a.configPath != "" {
		var err error
		if cfg, err = licenser.LoadConfig(a.configPath); err != nil {
			return nil, err
		}
	}

	overrides := map[string]func(){
		"license_key":   func() { cfg.LicenseKey = a.opts.LicenseKey },
		"project_name":  func() { cfg.ProjectName = a.opts.ProjectName },
		"authors":       func() { cfg.Authors = a.opts.Authors },
		"root_path":     func() { cfg.RootPath = a.opts.RootPath },
		"extensions":    func() { cfg.Extensions = a.extensions.vals },
		"create_backup": func() { cfg.CreateBackup = a.opts.CreateBackup },
		"check_exact":   func() { cfg.CheckExact = a.opts.CheckExact },
		"exclude_paths": func() { cfg.ExcludePaths = a.excludePaths.vals },
		"year":          func() { cfg.Year = a.opts.Year },
		"dry_run":       func() { cfg.DryRun = a.opts.DryRun },
		"check":         func() { cfg.Check = a.opts.Check },
		"jobs":          func() { cfg.Jobs = a.opts.Jobs },
		"report":        func() { cfg.ReportPath = a.opts.ReportPath },
	}
	if a.fs != nil {
		a.fs.Visit(func(f *flag.Flag) {
			if apply, ok := overrides[f.Name]; ok {
				apply()
			}
		})
	}
	return cfg, nil
}

// RewriteArgs joins the values that follow a list flag, as in
// "-extensions .py .js", into a single argument. Values are taken up to the
// next argument that starts with a dash.
func (a *app) RewriteArgs(fs *flag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		out = append(out, arg)
		if arg == "--" || !strings.HasPrefix(arg, "-") || arg == "-" {
			// Flag parsing stops here.
			return append(out, args[i+1:]...)
		}
		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		f := fs.Lookup(name)
		if f == nil || hasValue || isBoolFlag(f) || i+1 == len(args) {
			continue
		}
		i++
		val := args[i]
		if _, ok := f.Value.(*listFlag); ok {
			for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				val += " " + args[i]
			}
		}
		out = append(out, val)
	}
	return out
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}

// listFlag is a flag holding a space-separated list. Repeating the flag
// appends to the list. Setting it to an empty string yields an empty, non-nil
// list, which disables the default.
type listFlag struct {
	vals []string
}

func (l *listFlag) String() string { return strings.Join(l.vals, " ") }

func (l *listFlag) Set(s string) error {
	if l.vals == nil {
		l.vals = []string{}
	}
	l.vals = append(l.vals, strings.Fields(s)...)
	return nil
}
