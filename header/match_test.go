// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"testing"

	"go.astrophena.name/licenser/testutil"
)

func TestContains(t *testing.T) {
	cases := map[string]struct {
		content string
		needle  string
		want    bool
	}{
		"exact":                 {content: "# Copyright (C) 2024", needle: "# Copyright (C)", want: true},
		"wider spacing":         {content: "#    Copyright (C) 2024", needle: "# Copyright (C)", want: true},
		"tab":                   {content: "#\tCopyright\t(C)", needle: "# Copyright (C)", want: true},
		"newline in needle":     {content: "# a\n# b", needle: "# a\n# b", want: true},
		"extra blank lines":     {content: "# a\n\n\n   # b", needle: "# a\n# b", want: true},
		"crlf":                  {content: "# a\r\n# b", needle: "# a\n# b", want: true},
		"newline matches space": {content: "<!--\nCopyright (C) 2024", needle: "<!-- Copyright (C)", want: true},
		"missing whitespace":    {content: "#Copyright (C)", needle: "# Copyright (C)", want: false},
		"absent":                {content: "print('hello')\n", needle: "# Copyright (C)", want: false},
		"different case":        {content: "# copyright (c)", needle: "# Copyright (C)", want: false},
		"second occurrence":     {content: "# Copyright 2020\n# Copyright (C) 2024", needle: "# Copyright (C)", want: true},
		"segments out of order": {content: "# b\n# a", needle: "# a\n# b", want: false},
		"text between segments": {content: "# a x # b", needle: "# a # b", want: false},
		"empty needle":          {content: "anything", needle: "", want: true},
		"whitespace needle":     {content: "", needle: " \n ", want: true},
		"empty content":         {content: "", needle: "#", want: false},
		"metacharacters":        {content: "// (C) [x]*", needle: "// (C) [x]*", want: true},
		"non-ascii":             {content: "# © 2024 Ilya", needle: "# © 2024 Ilya", want: true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, Contains(tc.content, tc.needle), tc.want)
		})
	}
}
