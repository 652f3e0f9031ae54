// Package deploy implements the container deployment sequence: build the
// image, tear down any previous container of the same name, launch a new
// one. The container runtime is an injected collaborator so the sequencing
// logic can be exercised against a fake.
package deploy

import (
	"context"

	"github.com/shipit-dev/shipit/internal/runtime"
)

// Mode selects the launch semantics for a deployment.
type Mode int

const (
	// Interactive runs the container attached to the invoking terminal
	// with auto-removal on exit; Deploy blocks until the container stops.
	Interactive Mode = iota

	// DetachedPersistent runs the container in the background with a
	// restart-always policy; Deploy returns once the runtime accepts the
	// run request and the container's lifecycle is the runtime's problem
	// from then on.
	DetachedPersistent
)

func (m Mode) String() string {
	switch m {
	case Interactive:
		return "interactive"
	case DetachedPersistent:
		return "detached"
	default:
		return "unknown"
	}
}

// Request describes one deployment.
type Request struct {
	// Ref is the image to build and run
	Ref runtime.ImageRef

	// BuildContext is the directory containing the build recipe
	BuildContext string

	// Name is the container name for this environment
	Name string

	// Ports are host-to-container bindings
	Ports []runtime.PortMapping

	// EnvFile is the KEY=VALUE file injected into the container ("" = none)
	EnvFile string

	// Mode selects interactive vs detached-persistent launch semantics
	Mode Mode
}

// Result is the outcome of a successful deployment.
type Result struct {
	// ContainerName is the name of the launched container
	ContainerName string

	// ExitCode is the container's exit code in Interactive mode. Always 0
	// in DetachedPersistent mode, where the container is still running.
	ExitCode int
}

// Deployer runs the deployment sequence against an injected runtime.
type Deployer struct {
	// Runtime is the container runtime collaborator
	Runtime runtime.Runtime

	// OnEvent, when set, is called before each stage executes so the
	// caller can render progress. Called synchronously.
	OnEvent func(Event)
}

// New creates a Deployer over the given runtime.
func New(rt runtime.Runtime) *Deployer {
	return &Deployer{Runtime: rt}
}

// Deploy runs the full sequence: Build, Teardown, Launch. A build failure
// aborts before any teardown happens, so a broken build never touches the
// running container. Teardown failures are suppressed. There is no
// verification that the launched container stays healthy; "launched" means
// the runtime accepted the run request.
func (d *Deployer) Deploy(ctx context.Context, req Request) (Result, error) {
	d.notify(Event{Stage: StageBuild, Detail: req.Ref.String()})
	if err := d.Runtime.Build(ctx, req.Ref, req.BuildContext); err != nil {
		return Result{}, err
	}

	d.notify(Event{Stage: StageTeardown, Detail: req.Name})
	d.Teardown(ctx, req.Name)

	d.notify(Event{Stage: StageLaunch, Detail: req.Name})
	code, err := d.Runtime.Run(ctx, req.Ref, specFor(req))
	if err != nil {
		return Result{}, err
	}

	return Result{ContainerName: req.Name, ExitCode: code}, nil
}

// Teardown stops and removes the named container. Both steps are
// best-effort: a container that does not exist is the common case on a
// fresh host, and even a stop failure must not prevent the remove attempt
// or a subsequent launch, so every error is suppressed.
func (d *Deployer) Teardown(ctx context.Context, name string) {
	_ = d.Runtime.Stop(ctx, name)
	_ = d.Runtime.Remove(ctx, name)
}

func (d *Deployer) notify(e Event) {
	if d.OnEvent != nil {
		d.OnEvent(e)
	}
}

// specFor translates a request's mode into concrete launch settings.
func specFor(req Request) runtime.ContainerSpec {
	spec := runtime.ContainerSpec{
		Name:    req.Name,
		Ports:   req.Ports,
		EnvFile: req.EnvFile,
	}
	switch req.Mode {
	case Interactive:
		spec.AutoRemove = true
	case DetachedPersistent:
		spec.Detached = true
		spec.RestartPolicy = runtime.RestartAlways
	}
	return spec
}
