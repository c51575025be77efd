package demos

import (
	"bytes"
	"os"
	"sort"
	"strings"
	"testing"
	"time"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	fn()
	return buf.String()
}

func TestSupplyAsync(t *testing.T) {
	future := SupplyAsync(func() string { return "done" })
	select {
	case v := <-future:
		if v != "done" {
			t.Fatalf("got %q, want %q", v, "done")
		}
	case <-time.After(time.Second):
		t.Fatal("future never yielded")
	}
}

func TestAsyncHello(t *testing.T) {
	out := captureOutput(t, func() { AsyncHello(10 * time.Millisecond) })
	if out != "Hello, World!\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestMultipleThread(t *testing.T) {
	out := captureOutput(t, MultipleThread)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	// goroutine scheduling decides the order
	sort.Strings(lines)
	if lines[0] != "Thread 1" || lines[1] != "Thread 2" {
		t.Fatalf("unexpected lines %v", lines)
	}
}

func TestStaticType(t *testing.T) {
	out := captureOutput(t, StaticType)
	want := "10\nHello\n10 apples\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}
