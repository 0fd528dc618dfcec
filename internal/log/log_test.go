package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestFromContext_NoLogger(t *testing.T) {
	t.Parallel()
	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("FromContext() = nil, want no-op logger")
	}
	// Must not panic when writing
	l.Printf("discarded %d\n", 1)
	l.Command("git", "status")
}

func TestFromContext_RoundTrip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := New(&buf, false, false)
	ctx := WithLogger(context.Background(), l)

	got := FromContext(ctx)
	got.Println("hello")

	if buf.String() != "hello\n" {
		t.Errorf("output = %q, want %q", buf.String(), "hello\n")
	}
}

func TestCommand_VerboseOnly(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	New(&buf, false, false).Command("git", "add", "a.txt")
	if buf.Len() != 0 {
		t.Errorf("non-verbose Command wrote %q, want nothing", buf.String())
	}

	New(&buf, true, false).Command("git", "add", "a.txt")
	if got, want := buf.String(), "$ git add a.txt\n"; got != want {
		t.Errorf("verbose Command wrote %q, want %q", got, want)
	}
}

func TestQuiet_SuppressesOutputButNotWarnings(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := New(&buf, false, true)

	l.Printf("info %s\n", "x")
	l.Println("more info")
	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q, want nothing", buf.String())
	}

	l.Warnf("something failed: %v\n", "boom")
	if !strings.HasPrefix(buf.String(), "Warning: ") {
		t.Errorf("Warnf output = %q, want Warning prefix", buf.String())
	}
}

func TestDebugf_VerboseOnly(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	New(&buf, false, false).Debugf("dbg\n")
	if buf.Len() != 0 {
		t.Errorf("non-verbose Debugf wrote %q, want nothing", buf.String())
	}

	New(&buf, true, false).Debugf("dbg\n")
	if buf.String() != "dbg\n" {
		t.Errorf("verbose Debugf wrote %q, want %q", buf.String(), "dbg\n")
	}
}
