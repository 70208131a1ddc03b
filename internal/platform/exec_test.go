package platform

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"
)

func TestExecRunnerOutput(t *testing.T) {
	stdout, stderr, err := ExecRunner{}.Output(context.Background(), nil, "echo", "hello world")
	if err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	if string(stdout) != "hello world\n" {
		t.Errorf("Output() stdout = %q, want %q", stdout, "hello world\n")
	}
	if len(stderr) != 0 {
		t.Errorf("Output() stderr = %q, want empty", stderr)
	}
}

func TestExecRunnerOutput_KeepsRawBytes(t *testing.T) {
	stdout, _, err := ExecRunner{}.Output(context.Background(), nil, "printf", "  padded  \n")
	if err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	if string(stdout) != "  padded  \n" {
		t.Errorf("Output() stdout = %q, want untrimmed output", stdout)
	}
}

func TestExecRunnerOutput_StripsEnv(t *testing.T) {
	t.Setenv("RUSTUP_TOOLCHAIN", "nightly")
	script := `printf '%s' "${RUSTUP_TOOLCHAIN-unset}"`

	stdout, _, err := ExecRunner{}.Output(context.Background(), []string{"RUSTUP_TOOLCHAIN"}, "sh", "-c", script)
	if err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	if string(stdout) != "unset" {
		t.Errorf("child saw RUSTUP_TOOLCHAIN=%q, want it removed", stdout)
	}

	stdout, _, err = ExecRunner{}.Output(context.Background(), nil, "sh", "-c", script)
	if err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	if string(stdout) != "nightly" {
		t.Errorf("child saw RUSTUP_TOOLCHAIN=%q, want inherited %q", stdout, "nightly")
	}
}

func TestExecRunnerOutput_NonZeroExit(t *testing.T) {
	_, stderr, err := ExecRunner{}.Output(context.Background(), nil, "sh", "-c", "echo oops >&2; exit 3")
	if err == nil {
		t.Fatal("Output() expected error for non-zero exit")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Output() error = %T, want *exec.ExitError in chain", err)
	}
	if exitErr.ExitCode() != 3 {
		t.Errorf("exit code = %d, want 3", exitErr.ExitCode())
	}
	if string(stderr) != "oops\n" {
		t.Errorf("Output() stderr = %q, want %q", stderr, "oops\n")
	}
}

func TestExecRunnerOutput_CommandNotFound(t *testing.T) {
	_, _, err := ExecRunner{}.Output(context.Background(), nil, "nonexistent_command_xyz_12345")
	if err == nil {
		t.Fatal("Output() expected error for nonexistent command")
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("Output() error = %v, want exec.ErrNotFound in chain", err)
	}
}

func TestExecRunnerOutput_ContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, _, err := ExecRunner{}.Output(ctx, nil, "sleep", "10")
	if err == nil {
		t.Error("Output() expected error on timeout")
	}
	if ctx.Err() != context.DeadlineExceeded {
		t.Errorf("expected DeadlineExceeded, got %v", ctx.Err())
	}
}

func TestExists(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    bool
	}{
		{"sh exists", "sh", true},
		{"echo exists", "echo", true},
		{"nonexistent command", "nonexistent_command_xyz_12345", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Exists(tt.command)
			if got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.command, got, tt.want)
			}
		})
	}
}
