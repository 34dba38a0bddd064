// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cerrors "github.com/cockroachdb/errors"

	"go.astrophena.name/licenser/cli"
	"go.astrophena.name/licenser/licenser"
	"go.astrophena.name/licenser/testutil"
)

type result struct {
	err            error
	stdout, stderr string
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	env := &cli.Env{
		Args:   args,
		Getenv: func(string) string { return "" },
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	}
	err := cli.Run(cli.WithEnv(context.Background(), env), new(app))
	return result{err: err, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestInsert(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.py")
	writeFile(t, path, "print(1)\n")

	res := run(t,
		"--license_key", "MIT",
		"--project_name", "Foo",
		"--authors", "Bar",
		"--root_path", dir,
		"--year", "2024",
	)
	if res.err != nil {
		t.Fatalf("run: %v\nstderr:\n%s", res.err, res.stderr)
	}
	got := readFile(t, path)
	if !strings.HasPrefix(got, "# Copyright (C) 2024 Bar\n") {
		t.Fatalf("unexpected header:\n%s", got)
	}
	if !strings.Contains(res.stderr, "inserted: 1\n") {
		t.Fatalf("summary missing from stderr:\n%s", res.stderr)
	}
	testutil.AssertEqual(t, res.stdout, "")
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	if err := os.Mkdir(src, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(src, "a.hs"), "main = pure ()\n")
	writeFile(t, filepath.Join(src, "b.py"), "pass\n")

	cfgPath := filepath.Join(dir, "licenser.yaml")
	writeFile(t, cfgPath, `license_key: MIT
project_name: Foo
authors: File Author
root_path: `+src+`
year: 2020
extensions: [.hs]
styles:
  .hs: {prefix: "--"}
`)

	res := run(t, "-config", cfgPath, "-authors", "Flag Author", "-year", "2024")
	if res.err != nil {
		t.Fatalf("run: %v\nstderr:\n%s", res.err, res.stderr)
	}
	got := readFile(t, filepath.Join(src, "a.hs"))
	if !strings.HasPrefix(got, "-- Copyright (C) 2024 Flag Author\n") {
		t.Fatalf("unexpected header:\n%s", got)
	}
	testutil.AssertEqual(t, readFile(t, filepath.Join(src, "b.py")), "pass\n")
}

func TestDryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.sh")
	writeFile(t, path, "echo hi\n")

	res := run(t,
		"-license_key", "GPLv3", "-project_name", "Foo", "-authors", "Bar",
		"-root_path", dir, "-extensions", ".sh", "-year", "2024", "-dry_run",
	)
	if res.err != nil {
		t.Fatalf("run: %v", res.err)
	}
	testutil.AssertEqual(t, readFile(t, path), "echo hi\n")
	if !strings.HasPrefix(res.stdout, "--- "+path+"\n+++ "+path+"\n+# Copyright (C) 2024 Bar\n") {
		t.Fatalf("unexpected diff:\n%s", res.stdout)
	}
	if !strings.Contains(res.stderr, "would-insert: 1\n") {
		t.Fatalf("summary missing from stderr:\n%s", res.stderr)
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "pass\n")

	res := run(t,
		"-license_key", "MIT", "-project_name", "Foo", "-authors", "Bar",
		"-root_path", dir, "-check",
	)
	if !cerrors.Is(res.err, licenser.ErrMissingHeaders) {
		t.Fatalf("want ErrMissingHeaders, got %v", res.err)
	}
	testutil.AssertEqual(t, readFile(t, filepath.Join(dir, "a.py")), "pass\n")
}

func TestInvalidArgs(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]struct {
		args    []string
		wantErr string
	}{
		"no flags": {
			wantErr: "license_key is required",
		},
		"unknown license": {
			args:    []string{"-license_key", "WTFPL", "-project_name", "Foo", "-authors", "Bar", "-root_path", dir},
			wantErr: `unknown license kind "WTFPL"`,
		},
		"missing root": {
			args:    []string{"-license_key", "MIT", "-project_name", "Foo", "-authors", "Bar", "-root_path", filepath.Join(dir, "nope")},
			wantErr: "does not exist",
		},
		"bad exclusion pattern": {
			args:    []string{"-license_key", "MIT", "-project_name", "Foo", "-authors", "Bar", "-root_path", dir, "-exclude_paths", "("},
			wantErr: "exclusion pattern",
		},
		"positional arguments": {
			args:    []string{"extra"},
			wantErr: "unexpected arguments",
		},
		"missing config file": {
			args:    []string{"-config", filepath.Join(dir, "missing.yaml")},
			wantErr: "missing.yaml",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			res := run(t, tc.args...)
			if !errors.Is(res.err, cli.ErrInvalidArgs) {
				t.Fatalf("want ErrInvalidArgs, got %v", res.err)
			}
			if !strings.Contains(res.err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not contain %q", res.err, tc.wantErr)
			}
		})
	}
}

func TestListFlagsTakeSeveralValues(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.py":       "x = 1\n",
		"b.js":       "let x = 1;\n",
		"c.go":       "package c\n",
		"d.rb":       "puts 1\n",
		"gen_pb2.py": "y = 2\n",
		"e_test.go":  "package c\n",
	}
	for name, content := range files {
		writeFile(t, filepath.Join(dir, name), content)
	}

	res := run(t,
		"--license_key", "MIT",
		"--extensions", ".py", ".js",
		"--project_name", "Foo",
		"--authors", "Bar",
		"--extensions=.go",
		"--exclude_paths", "_pb2$", "_test$",
		"--root_path", dir,
		"--year", "2024",
	)
	if res.err != nil {
		t.Fatalf("run: %v\nstderr:\n%s", res.err, res.stderr)
	}

	for name, licensed := range map[string]bool{
		"a.py":       true,
		"b.js":       true,
		"c.go":       true,
		"d.rb":       false,
		"gen_pb2.py": false,
		"e_test.go":  false,
	} {
		got := readFile(t, filepath.Join(dir, name))
		if licensed != strings.Contains(got, "Copyright (C) 2024 Bar") {
			t.Errorf("%s: licensed = %v, want %v:\n%s", name, !licensed, licensed, got)
		}
	}
	if !strings.Contains(res.stderr, "inserted: 3\n") || !strings.Contains(res.stderr, "excluded: 2\n") {
		t.Fatalf("unexpected summary:\n%s", res.stderr)
	}
}

func TestRewriteArgs(t *testing.T) {
	a := new(app)
	fs := flag.NewFlagSet("licenser", flag.ContinueOnError)
	a.Flags(fs)
	fs.Bool("v", false, "")

	cases := map[string]struct {
		in   []string
		want []string
	}{
		"values after list flag": {
			in:   []string{"--extensions", ".py", ".js", "-v"},
			want: []string{"--extensions", ".py .js", "-v"},
		},
		"quoted list": {
			in:   []string{"-extensions", ".py .js"},
			want: []string{"-extensions", ".py .js"},
		},
		"inline value": {
			in:   []string{"-extensions=.py", ".js"},
			want: []string{"-extensions=.py", ".js"},
		},
		"string flag takes one value": {
			in:   []string{"-authors", "Bar", "extra"},
			want: []string{"-authors", "Bar", "extra"},
		},
		"bool flag takes none": {
			in:   []string{"-check", "extra", "-v"},
			want: []string{"-check", "extra", "-v"},
		},
		"first value may start with a dash": {
			in:   []string{"-exclude_paths", "-gen$", "x$", "-year", "2024"},
			want: []string{"-exclude_paths", "-gen$ x$", "-year", "2024"},
		},
		"empty value": {
			in:   []string{"-exclude_paths", "", "-check"},
			want: []string{"-exclude_paths", "", "-check"},
		},
		"terminator": {
			in:   []string{"--", "-extensions", ".py", ".js"},
			want: []string{"--", "-extensions", ".py", ".js"},
		},
		"missing value": {
			in:   []string{"-extensions"},
			want: []string{"-extensions"},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, a.RewriteArgs(fs, tc.in), tc.want)
		})
	}
}

func TestListFlag(t *testing.T) {
	var l listFlag
	testutil.AssertEqual(t, l.String(), "")

	for _, s := range []string{".go .js", " .ts\t.vue "} {
		if err := l.Set(s); err != nil {
			t.Fatal(err)
		}
	}
	testutil.AssertEqual(t, l.vals, []string{".go", ".js", ".ts", ".vue"})
	testutil.AssertEqual(t, l.String(), ".go .js .ts .vue")

	var empty listFlag
	if err := empty.Set(""); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, empty.vals, []string{})
}

func TestEmptyExclusionsDisableDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "__init__.py")
	writeFile(t, path, "")

	res := run(t,
		"-license_key", "MIT", "-project_name", "Foo", "-authors", "Bar",
		"-root_path", dir, "-exclude_paths", "", "-year", "2024",
	)
	if res.err != nil {
		t.Fatalf("run: %v", res.err)
	}
	if !strings.HasPrefix(readFile(t, path), "# Copyright (C) 2024 Bar\n") {
		t.Fatalf("__init__.py not licensed:\n%s", readFile(t, path))
	}
}
