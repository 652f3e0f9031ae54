package runtime

import "errors"

// ErrNoRuntime is returned when neither docker nor podman is usable.
var ErrNoRuntime = errors.New("no container runtime found (need docker or podman)")

// ErrBuildFailed is returned when the image build exits with a non-zero status.
var ErrBuildFailed = errors.New("image build failed")

// ErrLaunchFailed is returned when the runtime rejects a run request.
var ErrLaunchFailed = errors.New("container launch failed")

// ErrNotFound is returned by Status when no container with the given name exists.
var ErrNotFound = errors.New("container not found")
