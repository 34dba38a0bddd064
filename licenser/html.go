// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package licenser

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/natefinch/atomic"
)

//go:generate go tool templ generate -f report.templ

// WriteHTML renders r as a standalone HTML page.
func (r *Report) WriteHTML(ctx context.Context, w io.Writer) error {
	return reportPage(r).Render(ctx, w)
}

// WriteHTMLFile renders r as HTML and atomically replaces the file at path.
func (r *Report) WriteHTMLFile(ctx context.Context, path string) error {
	var buf bytes.Buffer
	if err := r.WriteHTML(ctx, &buf); err != nil {
		return err
	}
	return atomic.WriteFile(path, &buf)
}

func details(res FileResult) string {
	switch {
	case res.Err != nil:
		return res.Err.Error()
	case len(res.Kinds) > 0:
		kinds := make([]string, len(res.Kinds))
		for i, k := range res.Kinds {
			kinds[i] = string(k)
		}
		return strings.Join(kinds, ", ")
	case res.Reason != "":
		return res.Reason
	default:
		return res.Pattern
	}
}
