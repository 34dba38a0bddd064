// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package header formats license headers as comments and detects them in
// existing files.
package header

import (
	"strings"

	"go.astrophena.name/licenser/license"
)

// Keyword is put on the first line of every formatted header. Approximate
// detection looks for it right after the comment prefix.
const Keyword = "Copyright (C)"

// Format turns an already substituted license body into a comment block in
// the given style.
//
// Line styles prefix every line with the comment prefix and a space, and put
// [Keyword] in front of the first line's text. Block styles emit the prefix,
// the body with [Keyword] in front of it, and the suffix, each on its own
// line. The body is therefore not verbatim for block styles: the keyword is
// what lets [DetectApprox] find a block header it wrote, since its [Marker]
// is the prefix followed by the keyword.
func Format(body string, style Style) string {
	if style.IsBlock() {
		return style.Prefix + "\n" + Keyword + body + "\n" + style.Suffix
	}

	var b strings.Builder
	for i, line := range strings.Split(body, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(style.Prefix)
		b.WriteByte(' ')
		if i == 0 {
			b.WriteString(Keyword)
		}
		b.WriteString(line)
	}
	return b.String()
}

// Build renders the template of kind k with p and formats it in style.
func Build(store *license.Store, k license.Kind, p license.Params, style Style) (string, error) {
	body, err := store.Render(k, p)
	if err != nil {
		return "", err
	}
	return Format(body, style), nil
}
