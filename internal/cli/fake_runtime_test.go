package cli

import (
	"context"

	"github.com/shipit-dev/shipit/internal/runtime"
)

// fakeRuntime records calls and returns scripted results.
type fakeRuntime struct {
	calls []string

	buildErr  error
	runErr    error
	runExit   int
	status    runtime.Status
	statusErr error

	lastSpec runtime.ContainerSpec
}

func (f *fakeRuntime) Build(ctx context.Context, ref runtime.ImageRef, contextDir string) error {
	f.calls = append(f.calls, "build "+ref.String())
	return f.buildErr
}

func (f *fakeRuntime) Stop(ctx context.Context, name string) error {
	f.calls = append(f.calls, "stop "+name)
	return nil
}

func (f *fakeRuntime) Remove(ctx context.Context, name string) error {
	f.calls = append(f.calls, "rm "+name)
	return nil
}

func (f *fakeRuntime) Run(ctx context.Context, ref runtime.ImageRef, spec runtime.ContainerSpec) (int, error) {
	f.calls = append(f.calls, "run "+spec.Name)
	f.lastSpec = spec
	return f.runExit, f.runErr
}

func (f *fakeRuntime) Status(ctx context.Context, name string) (runtime.Status, error) {
	f.calls = append(f.calls, "status "+name)
	return f.status, f.statusErr
}
