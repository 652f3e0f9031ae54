package runtime

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestCLIRuntime_ImplementsRuntimeInterface(t *testing.T) {
	var _ Runtime = (*CLIRuntime)(nil)
}

func TestBuildArgs(t *testing.T) {
	args := buildArgs(ImageRef{Name: "svc", Tag: "latest"}, ".")
	expected := "build -t svc:latest ."
	if got := strings.Join(args, " "); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestRunArgs_Interactive(t *testing.T) {
	spec := ContainerSpec{
		Name:       "svc-dev",
		Ports:      []PortMapping{{HostPort: 8443, ContainerPort: 8443}},
		EnvFile:    ".env",
		AutoRemove: true,
	}
	args := runArgs(ImageRef{Name: "svc", Tag: "latest"}, spec)

	expected := "run --rm --name svc-dev -p 8443:8443 --env-file .env svc:latest"
	if got := strings.Join(args, " "); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestRunArgs_DetachedPersistent(t *testing.T) {
	spec := ContainerSpec{
		Name:          "svc-prod",
		Ports:         []PortMapping{{HostPort: 8000, ContainerPort: 8000}},
		EnvFile:       ".env",
		RestartPolicy: RestartAlways,
		Detached:      true,
	}
	args := runArgs(ImageRef{Name: "svc", Tag: "latest"}, spec)

	expected := "run -d --restart always --name svc-prod -p 8000:8000 --env-file .env svc:latest"
	if got := strings.Join(args, " "); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestRunArgs_NoEnvFileNoPorts(t *testing.T) {
	args := runArgs(ImageRef{Name: "svc", Tag: "v1"}, ContainerSpec{Name: "svc-dev"})

	joined := strings.Join(args, " ")
	if strings.Contains(joined, "--env-file") {
		t.Errorf("unexpected --env-file flag in %q", joined)
	}
	if strings.Contains(joined, "-p ") {
		t.Errorf("unexpected port flag in %q", joined)
	}
	if !strings.HasSuffix(joined, "svc:v1") {
		t.Errorf("expected image reference last, got %q", joined)
	}
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		in      string
		want    PortMapping
		wantErr bool
	}{
		{in: "8443:8443", want: PortMapping{8443, 8443}},
		{in: "80:8000", want: PortMapping{80, 8000}},
		{in: "8000", want: PortMapping{8000, 8000}},
		{in: "0:8000", wantErr: true},
		{in: "8000:", wantErr: true},
		{in: "http:8000", wantErr: true},
		{in: "70000:80", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePort(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePort(%q): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePort(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePort(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestImageRef_String(t *testing.T) {
	ref := ImageRef{Name: "svc", Tag: "latest"}
	if ref.String() != "svc:latest" {
		t.Errorf("expected svc:latest, got %s", ref.String())
	}
}

func TestCLIRuntime_DetachedLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	bin, err := DetectBinary()
	if err != nil {
		t.Skip("no container runtime available")
	}

	rt := NewCLIRuntime(bin)
	ctx := context.Background()
	name := fmt.Sprintf("shipit-test-%d", time.Now().UnixNano())

	spec := ContainerSpec{Name: name, Detached: true}
	if _, err := rt.Run(ctx, ImageRef{Name: "alpine", Tag: "latest"}, spec); err != nil {
		t.Skipf("cannot run alpine container: %v", err)
	}
	t.Cleanup(func() {
		rt.Stop(context.Background(), name)
		rt.Remove(context.Background(), name)
	})

	// Stop and remove, then the name must be gone.
	if err := rt.Stop(ctx, name); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if err := rt.Remove(ctx, name); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if _, err := rt.Status(ctx, name); err == nil {
		t.Errorf("expected not-found status after remove")
	}
}

func TestCLIRuntime_StopMissingContainerFails(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	bin, err := DetectBinary()
	if err != nil {
		t.Skip("no container runtime available")
	}

	rt := NewCLIRuntime(bin)
	name := fmt.Sprintf("shipit-missing-%d", time.Now().UnixNano())

	// The runtime reports an error; suppressing it is the orchestrator's job.
	if err := rt.Stop(context.Background(), name); err == nil {
		t.Error("expected error stopping a container that does not exist")
	}
}
