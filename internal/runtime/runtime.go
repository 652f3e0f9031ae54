package runtime

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// ImageRef identifies a buildable, runnable image in the local registry.
// Rebuilding with the same reference overwrites the previous content.
type ImageRef struct {
	Name string
	Tag  string
}

// String returns the "name:tag" form used on the runtime command line.
func (r ImageRef) String() string {
	return r.Name + ":" + r.Tag
}

// PortMapping binds one host port to one container port.
type PortMapping struct {
	HostPort      uint16
	ContainerPort uint16
}

// String returns the "host:container" form used by -p flags.
func (p PortMapping) String() string {
	return fmt.Sprintf("%d:%d", p.HostPort, p.ContainerPort)
}

// ParsePort parses a "host:container" mapping. A bare port like "8000"
// maps the same port on both sides.
func ParsePort(s string) (PortMapping, error) {
	host, container, found := strings.Cut(s, ":")
	if !found {
		container = host
	}

	h, err := parsePortNumber(host)
	if err != nil {
		return PortMapping{}, fmt.Errorf("invalid port mapping %q: %w", s, err)
	}
	c, err := parsePortNumber(container)
	if err != nil {
		return PortMapping{}, fmt.Errorf("invalid port mapping %q: %w", s, err)
	}

	return PortMapping{HostPort: h, ContainerPort: c}, nil
}

func parsePortNumber(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("port must be in 1..65535, got %q", s)
	}
	return uint16(n), nil
}

// RestartPolicy is a runtime-level setting controlling automatic relaunch
// of a container after it exits.
type RestartPolicy string

const (
	// RestartNone leaves the container stopped after exit.
	RestartNone RestartPolicy = ""

	// RestartAlways relaunches the container after any exit, including
	// host reboot, until it is explicitly removed.
	RestartAlways RestartPolicy = "always"
)

// ContainerSpec describes how a container should be launched.
type ContainerSpec struct {
	// Name is the container name, unique within the runtime.
	Name string

	// Ports are host-to-container bindings, applied in order.
	Ports []PortMapping

	// EnvFile is a path to a KEY=VALUE file whose entries are passed into
	// the container's process environment unmodified. Empty means none.
	EnvFile string

	// RestartPolicy controls relaunch after exit.
	RestartPolicy RestartPolicy

	// Detached runs the container in the background; Run returns as soon
	// as the runtime accepts the request. When false the container is
	// attached to the invoking process's stdio and Run blocks until exit.
	Detached bool

	// AutoRemove removes the container the instant it stops (--rm).
	AutoRemove bool
}

// Status is the observed state of a named container, as reported by the
// runtime. Values other than StatusNotFound mirror the runtime's own state
// strings ("running", "exited", ...).
type Status string

const (
	StatusRunning  Status = "running"
	StatusExited   Status = "exited"
	StatusNotFound Status = "not found"
)

// Runtime is the interface over container runtime operations. The runtime's
// registry is the single source of truth: callers never cache container
// state between invocations.
type Runtime interface {
	// Build builds (or rebuilds) the image at ref from the build recipe in
	// contextDir. Returns ErrBuildFailed wrapped around the underlying
	// failure if the build exits non-zero.
	Build(ctx context.Context, ref ImageRef, contextDir string) error

	// Stop stops the named container. Stopping a container that does not
	// exist is an error at this level; callers decide whether to care.
	Stop(ctx context.Context, name string) error

	// Remove removes the named container.
	Remove(ctx context.Context, name string) error

	// Run launches a new container from ref according to spec.
	//
	// Detached: returns (0, nil) once the runtime accepts the run request,
	// or ErrLaunchFailed if it rejects it. Attached: blocks until the
	// container exits and returns its exit code; a non-zero exit code is
	// not itself an error.
	Run(ctx context.Context, ref ImageRef, spec ContainerSpec) (int, error)

	// Status reports the current state of the named container, or
	// ErrNotFound if no container with that name exists.
	Status(ctx context.Context, name string) (Status, error)
}
