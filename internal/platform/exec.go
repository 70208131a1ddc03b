package platform

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// ExecRunner runs commands on the local host through os/exec,
// inheriting the current process environment.
type ExecRunner struct{}

// Output runs name with args and returns its raw stdout and stderr.
// unsetEnv lists environment variable names to strip from the child's
// inherited environment. Stdout is not trimmed or decoded.
func (r ExecRunner) Output(ctx context.Context, unsetEnv []string, name string, args ...string) (stdout, stderr []byte, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if len(unsetEnv) > 0 {
		cmd.Env = EnvWithout(os.Environ(), unsetEnv...)
	}

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	if err := cmd.Run(); err != nil {
		return outBuf.Bytes(), errBuf.Bytes(), fmt.Errorf("running %s: %w", name, err)
	}
	return outBuf.Bytes(), errBuf.Bytes(), nil
}

// Exists checks if a command exists in PATH.
func Exists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
