// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package licenser

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/cockroachdb/errors"

	"go.astrophena.name/licenser/license"
)

// Action is what happened to a file.
type Action string

// Possible actions.
const (
	ActionInserted        Action = "inserted"
	ActionWouldInsert     Action = "would-insert"
	ActionAlreadyLicensed Action = "already-licensed"
	ActionExcluded        Action = "excluded"
	ActionSkipped         Action = "skipped"
	ActionFailed          Action = "failed"
)

var actions = []Action{ActionInserted, ActionWouldInsert, ActionAlreadyLicensed, ActionExcluded, ActionSkipped, ActionFailed}

// FileResult is the outcome for a single file.
type FileResult struct {
	Path   string
	Action Action
	// Kinds lists the licenses found by exact detection.
	Kinds []license.Kind
	// Pattern is the exclusion pattern or the approximate detection marker
	// that matched.
	Pattern string
	// Reason says why a file was skipped.
	Reason string
	// Err is set for ActionFailed.
	Err error
}

// Report summarizes a run.
type Report struct {
	// Results are sorted by path.
	Results []FileResult
}

func (r *runner) report() *Report {
	rep := new(Report)
	r.results.Range(func(_ string, res FileResult) bool {
		rep.Results = append(rep.Results, res)
		return true
	})
	slices.SortFunc(rep.Results, func(a, b FileResult) int { return cmp.Compare(a.Path, b.Path) })
	return rep
}

// Count returns the number of files with action a.
func (r *Report) Count(a Action) int {
	var n int
	for _, res := range r.Results {
		if res.Action == a {
			n++
		}
	}
	return n
}

// Paths returns the sorted paths of files with action a.
func (r *Report) Paths(a Action) []string {
	var paths []string
	for _, res := range r.Results {
		if res.Action == a {
			paths = append(paths, res.Path)
		}
	}
	return paths
}

// Err joins the errors of all failed files, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errors.Join(errs...)
}

// WriteSummary writes one line per action that happened at least once.
func (r *Report) WriteSummary(w io.Writer) error {
	for _, a := range actions {
		if n := r.Count(a); n > 0 {
			if _, err := fmt.Fprintf(w, "%s: %d\n", a, n); err != nil {
				return err
			}
		}
	}
	return nil
}
