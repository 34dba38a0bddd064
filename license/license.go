// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package license holds the built-in license header templates and fills in
// their placeholders.
package license

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind identifies one of the supported licenses.
type Kind string

// Supported license kinds.
const (
	GPLv2   Kind = "GPLv2"
	MIT     Kind = "MIT"
	Apache2 Kind = "Apache-2.0"
	BSD3    Kind = "BSD-3"
	BSD2    Kind = "BSD-2"
	LGPLv21 Kind = "LGPLv2.1"
	LGPLv3  Kind = "LGPLv3"
	GPLv3   Kind = "GPLv3"
	AGPLv3  Kind = "AGPLv3"
	MPL2    Kind = "MPL-2.0"
)

var kinds = []Kind{GPLv2, MIT, Apache2, BSD3, BSD2, LGPLv21, LGPLv3, GPLv3, AGPLv3, MPL2}

// Kinds returns all supported license kinds in a stable order.
func Kinds() []Kind { return slices.Clone(kinds) }

// ErrUnknownKind is returned when a license kind is not one of [Kinds].
var ErrUnknownKind = errors.New("unknown license kind")

// ParseKind validates s and returns it as a [Kind].
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !slices.Contains(kinds, k) {
		return "", unknownKind(k)
	}
	return k, nil
}

func unknownKind(k Kind) error {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return errors.Mark(
		errors.Newf("unknown license kind %q (supported: %s)", string(k), strings.Join(names, ", ")),
		ErrUnknownKind,
	)
}

// Params are the values substituted into a template.
type Params struct {
	Year        int
	Authors     string
	ProjectName string
}

// Substitute replaces the {year}, {authors} and {project_name} placeholders
// in tmpl. Substituted values are not scanned for placeholders again.
func Substitute(tmpl string, p Params) string {
	return strings.NewReplacer(
		"{year}", strconv.Itoa(p.Year),
		"{authors}", p.Authors,
		"{project_name}", p.ProjectName,
	).Replace(tmpl)
}

// Store maps license kinds to their templates. It is immutable once
// created and safe for concurrent use.
type Store struct {
	templates map[Kind]string
}

// NewStore returns a Store with the built-in templates.
func NewStore() *Store {
	s := &Store{templates: make(map[Kind]string, len(builtinTemplates))}
	for k, tmpl := range builtinTemplates {
		s.templates[k] = tmpl
	}
	return s
}

// Kinds returns the kinds known to s in a stable order.
func (s *Store) Kinds() []Kind {
	var ks []Kind
	for _, k := range kinds {
		if _, ok := s.templates[k]; ok {
			ks = append(ks, k)
		}
	}
	return ks
}

// Template returns the raw template of kind k.
func (s *Store) Template(k Kind) (string, error) {
	tmpl, ok := s.templates[k]
	if !ok {
		return "", unknownKind(k)
	}
	return tmpl, nil
}

// Render returns the template of kind k with placeholders substituted.
func (s *Store) Render(k Kind, p Params) (string, error) {
	tmpl, err := s.Template(k)
	if err != nil {
		return "", err
	}
	return Substitute(tmpl, p), nil
}
