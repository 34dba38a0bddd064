// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package licenser walks a directory tree and inserts license headers into
// the files that do not carry one yet.
//
// Files are selected by name suffix and filtered by exclusion patterns
// matched against the file name without its extension. For every selected
// file the comment style is chosen by extension, the file is checked for an
// existing header, and, if none is found, the formatted header is inserted.
//
// A file that cannot be read during detection is treated as having no
// header: the insertion is still attempted, and its failure, if any, is
// reported for that file.
//
// Symbolic links and other files that are not regular are never written
// through; a selected one is reported as skipped.
package licenser

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go4org/hashtriemap"
	"golang.org/x/sync/errgroup"

	"go.astrophena.name/licenser/header"
	"go.astrophena.name/licenser/license"
	"go.astrophena.name/licenser/logger"
)

// ErrMissingHeaders is returned in check mode when some files lack a header.
var ErrMissingHeaders = errors.New("files without license header")

// FileError is a failure to process a single file.
type FileError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileError) Error() string { return e.Op + " " + e.Path + ": " + e.Err.Error() }
func (e *FileError) Unwrap() error { return e.Err }

type runner struct {
	cfg   *Config
	plan  *plan
	store *license.Store

	outMu  sync.Mutex
	stdout io.Writer

	results hashtriemap.HashTrieMap[string, FileResult]
}

// Run processes the tree described by cfg.
//
// Configuration problems are returned before any file is touched and carry
// [ErrInvalidConfig]. Otherwise every file is processed even if some fail;
// the returned error then joins the [FileError] of each failed file. In check
// mode, files lacking a header make Run fail with [ErrMissingHeaders].
func Run(ctx context.Context, cfg *Config) (*Report, error) {
	p, err := cfg.compile()
	if err != nil {
		return nil, err
	}

	r := &runner{
		cfg:    cfg,
		plan:   p,
		store:  license.NewStore(),
		stdout: cfg.Stdout,
	}
	if r.stdout == nil {
		r.stdout = io.Discard
	}

	if err := r.walk(ctx); err != nil {
		return nil, err
	}

	rep := r.report()
	logger.Info(ctx, "finished",
		slog.Int(string(ActionInserted), rep.Count(ActionInserted)),
		slog.Int(string(ActionWouldInsert), rep.Count(ActionWouldInsert)),
		slog.Int(string(ActionAlreadyLicensed), rep.Count(ActionAlreadyLicensed)),
		slog.Int(string(ActionExcluded), rep.Count(ActionExcluded)),
		slog.Int(string(ActionSkipped), rep.Count(ActionSkipped)),
		slog.Int(string(ActionFailed), rep.Count(ActionFailed)),
	)

	if cfg.ReportPath != "" {
		if err := rep.WriteHTMLFile(ctx, cfg.ReportPath); err != nil {
			return rep, errors.Wrap(err, "writing report")
		}
	}

	if err := rep.Err(); err != nil {
		return rep, err
	}
	if cfg.Check {
		if missing := rep.Paths(ActionWouldInsert); len(missing) > 0 {
			return rep, errors.Mark(
				errors.Newf("%d file(s) without license header:\n%s", len(missing), strings.Join(missing, "\n")),
				ErrMissingHeaders,
			)
		}
	}
	return rep, nil
}

func (r *runner) walk(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.plan.jobs)

	err := filepath.WalkDir(r.plan.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == r.plan.root {
				return err
			}
			r.fail(logger.With(ctx, slog.String("path", path)), path, "walk", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		name := d.Name()
		if !r.selected(name) {
			return nil
		}
		if !d.Type().IsRegular() {
			reason := "not a regular file"
			if d.Type()&fs.ModeSymlink != 0 {
				reason = "symbolic link"
			}
			logger.Debug(ctx, "skipping file", slog.String("path", path), slog.String("reason", reason))
			r.record(FileResult{Path: path, Action: ActionSkipped, Reason: reason})
			return nil
		}
		ext := filepath.Ext(name)
		if pattern, ok := r.excluded(strings.TrimSuffix(name, ext)); ok {
			logger.Info(ctx, "skipping file matching exclusion pattern",
				slog.String("path", path), slog.String("pattern", pattern))
			r.record(FileResult{Path: path, Action: ActionExcluded, Pattern: pattern})
			return nil
		}

		g.Go(func() error {
			r.process(logger.With(ctx, slog.String("path", path)), path, ext)
			return nil
		})
		return nil
	})

	// Per-file goroutines never fail; Wait only drains them.
	_ = g.Wait()
	return err
}

func (r *runner) selected(name string) bool {
	return slices.ContainsFunc(r.plan.extensions, func(ext string) bool {
		return strings.HasSuffix(name, ext)
	})
}

func (r *runner) excluded(stem string) (string, bool) {
	for _, re := range r.plan.exclude {
		if re.MatchString(stem) {
			return re.String(), true
		}
	}
	return "", false
}

func (r *runner) process(ctx context.Context, path, ext string) {
	style := r.plan.styles.Lookup(ext)

	hdr, err := header.Build(r.store, r.plan.kind, r.plan.params, style)
	if err != nil {
		r.fail(ctx, path, "format", err)
		return
	}

	content, readErr := os.ReadFile(path)
	if readErr != nil {
		logger.Warn(ctx, "cannot read file, assuming it has no license header", slog.Any("error", readErr))
	}

	res, err := r.detect(content, style)
	if err != nil {
		r.fail(ctx, path, "detect", err)
		return
	}
	res.Path = path
	if res.Action == ActionAlreadyLicensed {
		if len(res.Kinds) > 0 {
			for _, k := range res.Kinds {
				logger.Warn(ctx, "license already present, not adding another one",
					slog.String("kind", string(k)),
					slog.String("authors", r.plan.params.Authors),
					slog.String("project", r.plan.params.ProjectName),
					slog.Int("year", r.plan.params.Year))
			}
		} else {
			logger.Warn(ctx, "file most likely has a license already, not adding another one",
				slog.String("pattern", res.Pattern))
		}
		r.record(res)
		return
	}

	if r.cfg.DryRun || r.cfg.Check {
		if r.cfg.DryRun && readErr == nil {
			if err := r.printDiff(path, content, header.Prepend(hdr, content)); err != nil {
				r.fail(ctx, path, "diff", err)
				return
			}
		}
		logger.Debug(ctx, "license header missing")
		r.record(FileResult{Path: path, Action: ActionWouldInsert})
		return
	}

	if err := header.Insert(path, hdr, r.cfg.CreateBackup); err != nil {
		r.fail(ctx, path, "insert", err)
		return
	}
	logger.Debug(ctx, "added license header", slog.String("kind", string(r.plan.kind)))
	r.record(FileResult{Path: path, Action: ActionInserted})
}

// detect reports whether content already has a header. nil content, as left
// by a failed read, has none.
func (r *runner) detect(content []byte, style header.Style) (FileResult, error) {
	if !r.cfg.CheckExact {
		if header.DetectApprox(content, style) {
			return FileResult{Action: ActionAlreadyLicensed, Pattern: header.Marker(style)}, nil
		}
		return FileResult{}, nil
	}

	d, err := header.DetectExact(content, r.store, r.plan.params, style)
	if err != nil {
		return FileResult{}, err
	}
	if d.Found {
		return FileResult{Action: ActionAlreadyLicensed, Kinds: d.Matched()}, nil
	}
	return FileResult{}, nil
}

func (r *runner) record(res FileResult) { r.results.Store(res.Path, res) }

func (r *runner) fail(ctx context.Context, path, op string, err error) {
	logger.Error(ctx, "failed to process file", slog.String("op", op), slog.Any("error", err))
	r.record(FileResult{
		Path:   path,
		Action: ActionFailed,
		Err:    &FileError{Path: path, Op: op, Err: err},
	})
}
