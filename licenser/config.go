// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package licenser

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"go.astrophena.name/licenser/header"
	"go.astrophena.name/licenser/license"
)

// ErrInvalidConfig marks configuration errors. They are reported before any
// file is touched.
var ErrInvalidConfig = errors.New("invalid configuration")

// Defaults used when a Config leaves a list unset.
var (
	DefaultExtensions   = []string{".py"}
	DefaultExcludePaths = []string{"__init__"}
)

// Config describes a single run.
type Config struct {
	// LicenseKey is the license to insert, one of license.Kinds.
	LicenseKey  string `yaml:"license_key"`
	ProjectName string `yaml:"project_name"`
	Authors     string `yaml:"authors"`
	// RootPath is the directory to walk.
	RootPath string `yaml:"root_path"`
	// Extensions lists the file name suffixes to process. Nil means
	// DefaultExtensions.
	Extensions []string `yaml:"extensions"`
	// CreateBackup writes <file>.bak before modifying a file.
	CreateBackup bool `yaml:"create_backup"`
	// CheckExact skips only files that carry the exact header of any known
	// license for this project, authors and year, instead of any header with
	// the detection keyword.
	CheckExact bool `yaml:"check_exact"`
	// ExcludePaths are regular expressions matched against file names
	// without extension. Nil means DefaultExcludePaths.
	ExcludePaths []string `yaml:"exclude_paths"`
	// Year defaults to the current year.
	Year int `yaml:"year"`
	// DryRun prints the changes as diffs to Stdout instead of writing them.
	DryRun bool `yaml:"dry_run"`
	// Check fails the run if any file lacks a header. Nothing is written.
	Check bool `yaml:"check"`
	// Jobs limits the number of files processed concurrently. Zero means
	// GOMAXPROCS.
	Jobs int `yaml:"jobs"`
	// ReportPath, if set, is where an HTML report of the run is written.
	ReportPath string `yaml:"report"`
	// Styles adds or replaces comment styles by extension.
	Styles map[string]header.Style `yaml:"styles"`

	// Stdout receives dry-run diffs. Nil discards them.
	Stdout io.Writer `yaml:"-"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Mark(err, ErrInvalidConfig)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return c, nil
}

// ParseConfig parses a YAML config. Unknown fields are an error.
func ParseConfig(data []byte) (*Config, error) {
	c := new(Config)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Mark(errors.Wrap(err, "parsing config"), ErrInvalidConfig)
	}
	return c, nil
}

// Validate reports all problems with c. The returned error is marked with
// [ErrInvalidConfig].
func (c *Config) Validate() error {
	_, err := c.compile()
	return err
}

// plan is a validated Config ready to run.
type plan struct {
	kind       license.Kind
	params     license.Params
	root       string
	extensions []string
	exclude    []*regexp.Regexp
	styles     *header.Styles
	jobs       int
}

func (c *Config) compile() (*plan, error) {
	var (
		p    = new(plan)
		errs []error
	)
	invalid := func(format string, args ...any) {
		errs = append(errs, errors.Newf(format, args...))
	}

	if c.LicenseKey == "" {
		invalid("license_key is required")
	} else if k, err := license.ParseKind(c.LicenseKey); err != nil {
		errs = append(errs, err)
	} else {
		p.kind = k
	}
	if c.ProjectName == "" {
		invalid("project_name is required")
	}
	if c.Authors == "" {
		invalid("authors is required")
	}

	switch fi, err := os.Stat(c.RootPath); {
	case c.RootPath == "":
		invalid("root_path is required")
	case errors.Is(err, os.ErrNotExist):
		invalid("the path %s does not exist", c.RootPath)
	case err != nil:
		errs = append(errs, err)
	case !fi.IsDir():
		invalid("the path %s is not a directory", c.RootPath)
	}
	p.root = c.RootPath

	p.extensions = c.Extensions
	if p.extensions == nil {
		p.extensions = DefaultExtensions
	}
	for _, ext := range p.extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			invalid("extension %q must start with a dot", ext)
		}
	}

	excludes := c.ExcludePaths
	if excludes == nil {
		excludes = DefaultExcludePaths
	}
	for _, pattern := range excludes {
		re, err := regexp.Compile(pattern)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "exclusion pattern %q", pattern))
			continue
		}
		p.exclude = append(p.exclude, re)
	}

	for ext, st := range c.Styles {
		if !strings.HasPrefix(ext, ".") {
			invalid("style extension %q must start with a dot", ext)
		}
		if strings.TrimSpace(st.Prefix) == "" {
			invalid("style for %q has an empty prefix", ext)
		}
	}
	p.styles = header.DefaultStyles().With(c.Styles)

	if c.Year < 0 {
		invalid("year %d is negative", c.Year)
	}
	p.params = license.Params{
		Year:        c.Year,
		Authors:     c.Authors,
		ProjectName: c.ProjectName,
	}
	if p.params.Year == 0 {
		p.params.Year = time.Now().Year()
	}

	if c.Jobs < 0 {
		invalid("jobs %d is negative", c.Jobs)
	}
	p.jobs = c.Jobs
	if p.jobs == 0 {
		p.jobs = runtime.GOMAXPROCS(0)
	}

	if len(errs) > 0 {
		return nil, errors.Mark(errors.Join(errs...), ErrInvalidConfig)
	}
	return p, nil
}
