package log

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func captureSink(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetSink(&buf)
	t.Cleanup(func() {
		SetSink(os.Stdout)
		SetLevel(Notice)
	})
	return &buf
}

func TestPrintfLogger_ImplementsCoreLogger(t *testing.T) {
	var _ core.Logger = NewPrintfLogger("test")
}

func TestPrintfLogger_RespectsLevel(t *testing.T) {
	buf := captureSink(t)
	SetLevel(Notice)

	logger := NewPrintfLogger("renderer")
	logger.Printf("tile %d done\n", 3)
	if buf.Len() != 0 {
		t.Errorf("Info message should be filtered at Notice level, got %q", buf.String())
	}

	logger.WithLevel(Notice).Printf("render %s\n", "complete")
	out := buf.String()
	if !strings.Contains(out, "[renderer]") || !strings.Contains(out, "render complete") {
		t.Errorf("Expected notice with module name, got %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected the trailing newline to be trimmed, got %q", out)
	}
}

func TestSetLevel_Debug(t *testing.T) {
	buf := captureSink(t)
	SetLevel(Debug)

	New("scene").Debugf("loaded %d spheres", 6)
	if !strings.Contains(buf.String(), "loaded 6 spheres") {
		t.Errorf("Expected debug output, got %q", buf.String())
	}
}

func TestSetSink_KeepsLevel(t *testing.T) {
	SetLevel(Notice)
	buf := captureSink(t)

	logger := New("output")
	logger.Info("hidden")
	logger.Notice("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("Info message should stay filtered after swapping the sink, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("Expected notice output, got %q", buf.String())
	}
}
