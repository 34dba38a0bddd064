// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Licenser inserts license headers into source files.

It recursively walks a directory and, for every file whose name ends with
one of the selected extensions, checks whether the file already carries a
license header. If it does not, the chosen license is rendered with the
project name, authors and year, formatted as a comment in the style of the
file's language and prepended to the file.

By default a file is considered licensed when it contains the comment prefix
followed by "Copyright (C)". With -check_exact, only files containing the
exact header of one of the supported licenses for the same project, authors
and year are skipped.

Files whose name without extension matches one of the exclusion patterns
(regular expressions, "__init__" by default) are left alone.

Supported licenses: GPLv2, MIT, Apache-2.0, BSD-3, BSD-2, LGPLv2.1, LGPLv3,
GPLv3, AGPLv3, MPL-2.0.

Usage:

	$ licenser -license_key MIT -project_name Foo -authors Bar -root_path .
	$ licenser -license_key Apache-2.0 -project_name Foo -authors Bar \
	    -root_path . -extensions ".go .js" -create_backup
	$ licenser -config licenser.yaml -dry_run

Options can also be read from a YAML file passed with -config. It accepts
the same keys as the flags, plus a "styles" map that adds comment styles:

	license_key: MIT
	project_name: Foo
	authors: Bar
	root_path: .
	extensions: [.py, .hs]
	styles:
	  .hs: {prefix: "{-", suffix: "-}"}

Flags override values from the file.

With -dry_run, the changes are printed as diffs and nothing is written. With
-check, nothing is written and the program fails if any file lacks a header.
-report writes an HTML report of the run.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/licenser/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
