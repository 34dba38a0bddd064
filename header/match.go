// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"strings"
	"unicode"
)

// Contains reports whether content contains needle, allowing every run of
// whitespace in needle (newlines included) to match a run of one or more
// whitespace characters of any length in content. Leading and trailing
// whitespace of needle is ignored. An empty needle is always found.
func Contains(content, needle string) bool {
	segs := strings.Fields(needle)
	if len(segs) == 0 {
		return true
	}

	for off := 0; off < len(content); {
		i := strings.Index(content[off:], segs[0])
		if i < 0 {
			return false
		}
		start := off + i
		if matchRest(content[start+len(segs[0]):], segs[1:]) {
			return true
		}
		off = start + 1
	}
	return false
}

// matchRest reports whether s starts with segs, each preceded by at least one
// whitespace character.
func matchRest(s string, segs []string) bool {
	for _, seg := range segs {
		trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
		if len(trimmed) == len(s) {
			return false
		}
		if !strings.HasPrefix(trimmed, seg) {
			return false
		}
		s = trimmed[len(seg):]
	}
	return true
}
