package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/danieljhkim/librarian/internal/prompt"
)

// captureOutput redirects command output into buffers for the test.
func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var bufOut, bufErr bytes.Buffer
	oldOut, oldErr := stdout, stderr
	stdout, stderr = &bufOut, &bufErr
	t.Cleanup(func() {
		stdout, stderr = oldOut, oldErr
	})
	return &bufOut, &bufErr
}

func TestReportError(t *testing.T) {
	color.NoColor = true
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"failure", os.ErrNotExist, "✗ file does not exist\n"},
		{"cancelled", fmt.Errorf("%w: no library path", prompt.ErrCancelled), prompt.ErrCancelled.Error() + ": no library path\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bufOut, bufErr := captureOutput(t)
			ReportError(tt.err)
			if bufErr.String() != tt.want {
				t.Errorf("ReportError() stderr = %q, want %q", bufErr.String(), tt.want)
			}
			if bufOut.Len() != 0 {
				t.Errorf("ReportError() wrote to stdout: %q", bufOut.String())
			}
		})
	}
}

func TestOutputJSON(t *testing.T) {
	bufOut, _ := captureOutput(t)

	if err := outputJSON(map[string]string{"test": "value"}); err != nil {
		t.Fatalf("outputJSON() error = %v", err)
	}

	var v map[string]string
	if err := json.Unmarshal(bufOut.Bytes(), &v); err != nil {
		t.Fatalf("outputJSON() produced invalid JSON: %v", err)
	}
	if v["test"] != "value" {
		t.Errorf("outputJSON() = %v", v)
	}
}

func TestPrintFunctions(t *testing.T) {
	bufOut, bufErr := captureOutput(t)

	PrintSuccess("Success message")
	PrintWarning("Warning message")
	PrintError("Error message")
	PrintInfo("Info message")
	PrintList([]string{"alpha"}, 0)

	for _, want := range []string{"Success message", "Warning message", "Info message", "- alpha"} {
		if !strings.Contains(bufOut.String(), want) {
			t.Errorf("stdout missing %q: %q", want, bufOut.String())
		}
	}
	if !strings.Contains(bufErr.String(), "Error message") {
		t.Error("PrintError should write to stderr")
	}
}

func TestFramed(t *testing.T) {
	bufOut, _ := captureOutput(t)

	err := framed(func() error {
		PrintInfo("body")
		return errors.New("boom")
	})
	if err == nil || err.Error() != "boom" {
		t.Fatalf("framed() error = %v, want boom", err)
	}

	want := "-----\nbody\n-----\n"
	if bufOut.String() != want {
		t.Errorf("framed() output = %q, want %q", bufOut.String(), want)
	}
}

func TestPrintCount(t *testing.T) {
	if got := PrintCount(1, "project", "projects"); got != "1 project" {
		t.Errorf("PrintCount(1) = %q", got)
	}
	if got := PrintCount(3, "project", "projects"); got != "3 projects" {
		t.Errorf("PrintCount(3) = %q", got)
	}
}
