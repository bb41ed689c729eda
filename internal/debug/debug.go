// Package debug writes diagnostic messages to stderr when --debug is set.
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	out     io.Writer = os.Stderr
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

const timestampFormat = "15:04:05.000"

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
}

// SetOutput redirects debug output. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
}

// emit writes one line with the [DEBUG] prefix and a timestamp.
// label is highlighted when color is on; body follows it.
func emit(label, body string) {
	mu.RLock()
	if !enabled {
		mu.RUnlock()
		return
	}
	w, useColor := out, !noColor
	mu.RUnlock()

	timestamp := time.Now().Format(timestampFormat)

	if useColor {
		if label != "" {
			label = colorCyan + label + colorReset
		}
		fmt.Fprintf(w, "%s[DEBUG]%s %s%s%s %s%s\n",
			colorCyan, colorReset, colorGray, timestamp, colorReset, label, body)
		return
	}
	fmt.Fprintf(w, "[DEBUG] %s %s%s\n", timestamp, label, body)
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	emit("", fmt.Sprintf(format, args...))
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	emit("=== "+section+" ===", "")
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	emit(key, fmt.Sprintf(" = %v", value))
}

// DebugJSON prints structured data as JSON for debugging
func DebugJSON(key string, v interface{}) {
	if !IsEnabled() {
		return
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Debug("Failed to marshal %s to JSON: %v", key, err)
		return
	}
	emit(key, ":\n"+string(data))
}
