// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"maps"
	"strings"
)

// Style is a pair of comment delimiters. An empty Suffix means a line
// comment: every line of the header gets the Prefix.
type Style struct {
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`
}

// IsBlock reports whether s wraps the header in opening and closing
// delimiters instead of prefixing every line.
func (s Style) IsBlock() bool { return strings.TrimSpace(s.Suffix) != "" }

// DefaultStyle is used for extensions missing from a [Styles] table.
var DefaultStyle = Style{Prefix: "#"}

var builtinStyles = map[string]Style{
	".py":     {Prefix: "#"},
	".js":     {Prefix: "//"},
	".cpp":    {Prefix: "//"},
	".c":      {Prefix: "//"},
	".hpp":    {Prefix: "//"},
	".h":      {Prefix: "//"},
	".sh":     {Prefix: "#"},
	".java":   {Prefix: "//"},
	".rb":     {Prefix: "#"},
	".cs":     {Prefix: "//"},
	".go":     {Prefix: "//"},
	".r":      {Prefix: "#"},
	".m":      {Prefix: "%"},
	".pl":     {Prefix: "#"},
	".php":    {Prefix: "//"},
	".ts":     {Prefix: "//"},
	".swift":  {Prefix: "//"},
	".kts":    {Prefix: "//"},
	".kt":     {Prefix: "//"},
	".f":      {Prefix: "c"},
	".for":    {Prefix: "c"},
	".f90":    {Prefix: "!"},
	".f95":    {Prefix: "!"},
	".lua":    {Prefix: "--"},
	".sql":    {Prefix: "--"},
	".ada":    {Prefix: "--"},
	".html":   {Prefix: "<!--", Suffix: "-->"},
	".xml":    {Prefix: "<!--", Suffix: "-->"},
	".rhtml":  {Prefix: "<%#", Suffix: "%>"},
	".css":    {Prefix: "/*", Suffix: "*/"},
	".scss":   {Prefix: "//"},
	".yml":    {Prefix: "#"},
	".yaml":   {Prefix: "#"},
	".json":   {Prefix: "//"}, // Only for parsers that accept comments.
	".ini":    {Prefix: ";"},
	".tex":    {Prefix: "%"},
	".matlab": {Prefix: "%"},
	".vbs":    {Prefix: "'"},
	".vb":     {Prefix: "'"},
	".bas":    {Prefix: "'"},
	".ps1":    {Prefix: "#"},
}

// Styles maps file extensions, dot included and case-sensitive, to comment
// styles. A Styles value is never modified after creation.
type Styles struct {
	byExt map[string]Style
}

// DefaultStyles returns the built-in extension table.
func DefaultStyles() *Styles {
	return &Styles{byExt: maps.Clone(builtinStyles)}
}

// Lookup returns the style for ext, or [DefaultStyle] if ext is unknown.
func (s *Styles) Lookup(ext string) Style {
	if st, ok := s.byExt[ext]; ok {
		return st
	}
	return DefaultStyle
}

// With returns a copy of s where the entries of extra replace or extend the
// existing ones.
func (s *Styles) With(extra map[string]Style) *Styles {
	m := maps.Clone(s.byExt)
	maps.Copy(m, extra)
	return &Styles{byExt: m}
}
