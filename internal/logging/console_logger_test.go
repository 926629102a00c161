package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
)

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	output := captureStderr(t, func() {
		NewConsoleLogger(true).Verbose("cd -> %s", "/docs")
	})

	expected := "[VERBOSE] cd -> /docs\n"
	if output != expected {
		t.Errorf("Expected %q, got %q", expected, output)
	}
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	output := captureStderr(t, func() {
		NewConsoleLogger(false).Verbose("cd -> %s", "/docs")
	})

	if output != "" {
		t.Errorf("Expected no output, got %q", output)
	}
}

func TestConsoleLogger_Info(t *testing.T) {
	output := captureStderr(t, func() {
		NewConsoleLogger(false).Info("loaded %s", "vfsh.yaml")
	})

	expected := "loaded vfsh.yaml\n"
	if output != expected {
		t.Errorf("Expected %q, got %q", expected, output)
	}
}

func TestConsoleLogger_Error(t *testing.T) {
	output := captureStderr(t, func() {
		NewConsoleLogger(false).Error("read failed: %s", "EOF")
	})

	expected := "[ERROR] read failed: EOF\n"
	if output != expected {
		t.Errorf("Expected %q, got %q", expected, output)
	}
}

func TestConsoleLogger_NoArgsKeepsPercent(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleLogger(false).WithOutput(&buf).Info("100% done")

	if buf.String() != "100% done\n" {
		t.Errorf("Expected literal message, got %q", buf.String())
	}
}

func TestConsoleLogger_WithOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(true).WithOutput(&buf)

	stderr := captureStderr(t, func() {
		logger.Verbose("one")
		logger.Error("two")
	})

	if stderr != "" {
		t.Errorf("Expected nothing on stderr, got %q", stderr)
	}
	if buf.String() != "[VERBOSE] one\n[ERROR] two\n" {
		t.Errorf("Unexpected buffered output %q", buf.String())
	}
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(true).WithOutput(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 30 {
		t.Errorf("Expected 30 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if !strings.Contains(line, "message") && !strings.Contains(line, "verbose") && !strings.Contains(line, "error") {
			t.Errorf("Line %d appears corrupted: %q", i, line)
		}
	}
}

func TestNullLogger_DiscardsAllMessages(t *testing.T) {
	output := captureStderr(t, func() {
		logger := NewNullLogger()
		logger.Verbose("verbose")
		logger.Info("info")
		logger.Error("error")
	})

	if output != "" {
		t.Errorf("NullLogger should discard all messages, got: %q", output)
	}
}

// Example demonstrates NullLogger usage
func ExampleNullLogger() {
	logger := NewNullLogger()
	logger.Info("This message is discarded")
	logger.Verbose("This too")
	logger.Error("And this")
	fmt.Println("Done")
	// Output:
	// Done
}
