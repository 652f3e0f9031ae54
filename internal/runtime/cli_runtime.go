package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// CLIRuntime implements Runtime by shelling out to the docker (or podman)
// CLI. Build output and attached container stdio go to the configured
// streams, which default to the invoking process's own.
type CLIRuntime struct {
	bin string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewCLIRuntime creates a CLIRuntime driving the given binary ("docker" or
// "podman"). Use DetectBinary to find one.
func NewCLIRuntime(bin string) *CLIRuntime {
	return &CLIRuntime{
		bin:    bin,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// buildArgs returns the CLI arguments for a build invocation.
func buildArgs(ref ImageRef, contextDir string) []string {
	return []string{"build", "-t", ref.String(), contextDir}
}

// runArgs returns the CLI arguments for a run invocation.
func runArgs(ref ImageRef, spec ContainerSpec) []string {
	args := []string{"run"}
	if spec.Detached {
		args = append(args, "-d")
	}
	if spec.AutoRemove {
		args = append(args, "--rm")
	}
	if spec.RestartPolicy != RestartNone {
		args = append(args, "--restart", string(spec.RestartPolicy))
	}
	args = append(args, "--name", spec.Name)
	for _, p := range spec.Ports {
		args = append(args, "-p", p.String())
	}
	if spec.EnvFile != "" {
		args = append(args, "--env-file", spec.EnvFile)
	}
	args = append(args, ref.String())
	return args
}

// Build builds the image at ref from contextDir, streaming the runtime's
// build output to the configured streams.
func (r *CLIRuntime) Build(ctx context.Context, ref ImageRef, contextDir string) error {
	cmd := exec.CommandContext(ctx, r.bin, buildArgs(ref, contextDir)...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s exited with code %d", ErrBuildFailed, r.bin, exitErr.ExitCode())
		}
		return fmt.Errorf("%w: %w", ErrBuildFailed, err)
	}
	return nil
}

// Stop stops the named container. The error includes the runtime's own
// message ("No such container", permission failures, ...).
func (r *CLIRuntime) Stop(ctx context.Context, name string) error {
	cmd := exec.CommandContext(ctx, r.bin, "stop", name)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("stop %s: %s", name, strings.TrimSpace(string(output)))
	}
	return nil
}

// Remove removes the named container.
func (r *CLIRuntime) Remove(ctx context.Context, name string) error {
	cmd := exec.CommandContext(ctx, r.bin, "rm", name)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("rm %s: %s", name, strings.TrimSpace(string(output)))
	}
	return nil
}

// Run launches a container from ref according to spec.
//
// Detached mode captures the runtime's stderr so a rejected run request
// (port already bound, name collision) surfaces with the runtime's own
// message. Attached mode wires the container to the configured stdio and
// returns the container's exit code; the runtime CLI exits with the
// container's code, so a launch rejection shows up on the attached stderr
// and in the returned code.
func (r *CLIRuntime) Run(ctx context.Context, ref ImageRef, spec ContainerSpec) (int, error) {
	args := runArgs(ref, spec)

	if spec.Detached {
		cmd := exec.CommandContext(ctx, r.bin, args...)
		cmd.Stdout = io.Discard
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return -1, fmt.Errorf("%w: %s", ErrLaunchFailed, strings.TrimSpace(stderr.String()))
			}
			return -1, fmt.Errorf("%w: %w", ErrLaunchFailed, err)
		}
		return 0, nil
	}

	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("%w: %w", ErrLaunchFailed, err)
	}
	return 0, nil
}

// Status reports the container's state via inspect. The runtime exits
// non-zero if the container does not exist.
func (r *CLIRuntime) Status(ctx context.Context, name string) (Status, error) {
	cmd := exec.CommandContext(ctx, r.bin, "inspect", "--format", "{{.State.Status}}", name)
	out, err := cmd.Output()
	if err != nil {
		return StatusNotFound, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return Status(strings.TrimSpace(string(out))), nil
}

// Verify CLIRuntime implements Runtime
var _ Runtime = (*CLIRuntime)(nil)
