// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"go.astrophena.name/licenser/testutil"
)

func TestLogfWriter(t *testing.T) {
	var (
		logged  bool
		message string
	)
	logf := func(format string, args ...any) {
		logged = true
		message = fmt.Sprintf(format, args...)
	}
	Logf(logf).Write([]byte("hello"))
	testutil.AssertEqual(t, logged, true)
	testutil.AssertEqual(t, message, "hello")
}

func newTextLogger(buf *bytes.Buffer) *Logger {
	l := New(nil)
	l.Attach(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: l.Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	return l
}

func TestPutGet(t *testing.T) {
	ctx := context.Background()
	if !IsDefault(Get(ctx)) {
		t.Fatal("empty context must return the default logger")
	}
	Info(ctx, "discarded") // Must not panic.

	var buf bytes.Buffer
	l := newTextLogger(&buf)
	ctx = Put(ctx, l)
	testutil.AssertEqual(t, Get(ctx) == l, true)
	testutil.AssertEqual(t, LevelVar(ctx) == l.Level, true)

	Warn(ctx, "already licensed", slog.String("path", "a.py"))
	Debug(ctx, "hidden")
	testutil.AssertEqual(t, buf.String(), "level=WARN msg=\"already licensed\" path=a.py\n")

	buf.Reset()
	l.Level.Set(slog.LevelDebug)
	Debug(ctx, "shown")
	testutil.AssertEqual(t, buf.String(), "level=DEBUG msg=shown\n")
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := newTextLogger(&buf)
	ctx := Put(context.Background(), l)

	fileCtx := With(ctx, slog.String("path", "pkg/main.py"))
	Error(fileCtx, "write failed")
	Info(ctx, "done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertEqual(t, lines, []string{
		"level=ERROR msg=\"write failed\" path=pkg/main.py",
		"level=INFO msg=done",
	})
	testutil.AssertEqual(t, LevelVar(fileCtx) == l.Level, true)
}

func TestAttachDetach(t *testing.T) {
	var a, b bytes.Buffer
	l := New(nil)
	ha := slog.NewTextHandler(&a, nil)
	hb := slog.NewTextHandler(&b, nil)
	l.Attach(ha)
	l.Attach(hb)
	l.Info("both")
	l.Detach(hb)
	l.Info("one")

	testutil.AssertEqual(t, strings.Count(a.String(), "\n"), 2)
	testutil.AssertEqual(t, strings.Count(b.String(), "\n"), 1)
}
