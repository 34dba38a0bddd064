// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"go.astrophena.name/licenser/testutil"
)

func TestParseKind(t *testing.T) {
	cases := map[string]struct {
		in      string
		want    Kind
		wantErr bool
	}{
		"mit":            {in: "MIT", want: MIT},
		"apache":         {in: "Apache-2.0", want: Apache2},
		"lgpl 2.1":       {in: "LGPLv2.1", want: LGPLv21},
		"wrong case":     {in: "mit", wantErr: true},
		"legacy spacing": {in: "Apache 2.0", wantErr: true},
		"empty":          {in: "", wantErr: true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseKind(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownKind) {
					t.Fatalf("ParseKind(%q): want ErrUnknownKind, got %v", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q): %v", tc.in, err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestStore(t *testing.T) {
	s := NewStore()

	testutil.AssertEqual(t, s.Kinds(), Kinds())
	testutil.AssertEqual(t, len(Kinds()), 10)

	for _, k := range s.Kinds() {
		tmpl, err := s.Template(k)
		if err != nil {
			t.Fatalf("Template(%q): %v", k, err)
		}
		if !strings.HasPrefix(tmpl, " {year}") {
			t.Errorf("template %q must start with \" {year}\", got %q", k, tmpl[:min(len(tmpl), 20)])
		}
		if strings.HasSuffix(tmpl, "\n") {
			t.Errorf("template %q must not end with a newline", k)
		}
		if !strings.Contains(tmpl, "{authors}") {
			t.Errorf("template %q has no {authors} placeholder", k)
		}
	}

	if _, err := s.Template("WTFPL"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("Template(WTFPL): want ErrUnknownKind, got %v", err)
	}
}

func TestKindsIsACopy(t *testing.T) {
	ks := Kinds()
	ks[0] = "broken"
	testutil.AssertEqual(t, Kinds()[0], GPLv2)
}

func TestRender(t *testing.T) {
	s := NewStore()
	got, err := s.Render(MIT, Params{Year: 2024, Authors: "Bar", ProjectName: "Foo"})
	if err != nil {
		t.Fatal(err)
	}
	first, _, _ := strings.Cut(got, "\n")
	testutil.AssertEqual(t, first, " 2024 Bar")
	if !strings.Contains(got, "This file is part of Foo and distributed under the MIT License.") {
		t.Fatalf("project name not substituted:\n%s", got)
	}
	if strings.Contains(got, "{") {
		t.Fatalf("placeholders left after rendering:\n%s", got)
	}
}

func TestSubstitute(t *testing.T) {
	cases := map[string]struct {
		tmpl string
		p    Params
		want string
	}{
		"all placeholders": {
			tmpl: "{year} {authors} {project_name}",
			p:    Params{Year: 2020, Authors: "A", ProjectName: "P"},
			want: "2020 A P",
		},
		"repeated": {
			tmpl: "{project_name}/{project_name}",
			p:    Params{ProjectName: "x"},
			want: "x/x",
		},
		"values are not expanded again": {
			tmpl: "{authors}",
			p:    Params{Year: 1999, Authors: "{year}"},
			want: "{year}",
		},
		"no placeholders": {
			tmpl: "plain",
			want: "plain",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, Substitute(tc.tmpl, tc.p), tc.want)
		})
	}
}

func TestRenderMPLNamesProject(t *testing.T) {
	got, err := NewStore().Render(MPL2, Params{Year: 2024, Authors: "Bar", ProjectName: "Foo"})
	if err != nil {
		t.Fatal(err)
	}
	first, _, _ := strings.Cut(got, "\n")
	testutil.AssertEqual(t, first, " 2024 Bar")
	if !strings.Contains(got, "This file is part of Foo and distributed under the Mozilla Public License v2.0.") {
		t.Fatalf("project name missing:\n%s", got)
	}
	if !strings.HasSuffix(got, "file, You can obtain one at https://mozilla.org/MPL/2.0/.") {
		t.Fatalf("MPL notice missing:\n%s", got)
	}
}
