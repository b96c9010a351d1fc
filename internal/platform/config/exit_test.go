package config

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestExitfWritesMessageAndCode(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	exitf(&buf, func(c int) { code = c }, "Error: %s", "missing dataset")

	if code != ExitCodeFailure {
		t.Fatalf("expected exit code %d, got %d", ExitCodeFailure, code)
	}
	if got := buf.String(); got != "Error: missing dataset\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

// TestExitf_ExitsWithCode1 uses the subprocess pattern because os.Exit
// cannot be intercepted in-process.
func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf_ExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "fatal: something broke") {
		t.Fatalf("expected stderr to contain %q, got %q", "fatal: something broke", string(out))
	}
}
