// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package licenser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// writeDiff writes a line diff between before and after. Unchanged lines are
// omitted.
func writeDiff(w io.Writer, path string, before, after []byte) error {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", path, path)
	for _, d := range diffs {
		var mark string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			mark = "+"
		case diffmatchpatch.DiffDelete:
			mark = "-"
		default:
			continue
		}
		for line := range strings.Lines(d.Text) {
			buf.WriteString(mark)
			buf.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func (r *runner) printDiff(path string, before, after []byte) error {
	r.outMu.Lock()
	defer r.outMu.Unlock()
	return writeDiff(r.stdout, path, before, after)
}
