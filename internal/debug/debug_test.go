package debug

import (
	"bytes"
	"strings"
	"testing"
)

// capture enables debug output into a buffer for the duration of the test.
func capture(t *testing.T, color bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetDebug(true)
	SetNoColor(!color)
	t.Cleanup(func() {
		SetOutput(nil)
		SetDebug(false)
		SetNoColor(false)
	})
	return &buf
}

func TestSetDebug(t *testing.T) {
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled")
	}

	SetDebug(true)
	if !IsEnabled() {
		t.Error("Debug should be enabled")
	}

	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled again")
	}
}

func TestDebugOutput(t *testing.T) {
	buf := capture(t, false)

	Debug("test message %s", "arg")
	output := buf.String()

	if !strings.HasPrefix(output, "[DEBUG] ") {
		t.Errorf("Output should start with [DEBUG] prefix, got: %s", output)
	}
	if !strings.Contains(output, "test message arg") {
		t.Errorf("Output should contain message, got: %s", output)
	}
	if strings.Contains(output, "\033[") {
		t.Errorf("Output should not contain color codes, got: %q", output)
	}
}

func TestDebugColorOutput(t *testing.T) {
	buf := capture(t, true)

	Debug("colored")
	if !strings.Contains(buf.String(), colorCyan) {
		t.Errorf("Output should contain color codes, got: %q", buf.String())
	}
}

func TestDebugDisabled(t *testing.T) {
	buf := capture(t, false)
	SetDebug(false)

	Debug("this should not appear")
	DebugSection("hidden")
	DebugValue("key", "value")
	DebugJSON("data", map[string]int{"a": 1})

	if buf.Len() != 0 {
		t.Errorf("Debug output should be empty when disabled, got: %s", buf.String())
	}
}

func TestDebugSection(t *testing.T) {
	buf := capture(t, false)

	DebugSection("Generate")
	if !strings.Contains(buf.String(), "=== Generate ===") {
		t.Errorf("Output should contain section header, got: %s", buf.String())
	}
}

func TestDebugValue(t *testing.T) {
	buf := capture(t, false)

	DebugValue("output_dir", "src/pages")
	if !strings.Contains(buf.String(), "output_dir = src/pages") {
		t.Errorf("Output should contain key = value, got: %s", buf.String())
	}
}

func TestDebugJSON(t *testing.T) {
	buf := capture(t, false)

	DebugJSON("config", map[string]string{"extension": ".tsx"})
	output := buf.String()

	if !strings.Contains(output, "config:") {
		t.Errorf("Output should contain key, got: %s", output)
	}
	if !strings.Contains(output, `"extension": ".tsx"`) {
		t.Errorf("Output should contain indented JSON, got: %s", output)
	}
}
