package runtime

import (
	"os/exec"
	"testing"
)

func TestDetectBinary_PrefersDocker(t *testing.T) {
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not available")
	}
	if err := exec.Command("docker", "version").Run(); err != nil {
		t.Skip("docker daemon not reachable")
	}

	bin, err := DetectBinary()
	if err != nil {
		t.Fatalf("DetectBinary() failed: %v", err)
	}
	if bin != "docker" {
		t.Errorf("expected docker, got %s", bin)
	}
}

func TestDetectBinary_ErrNoRuntime(t *testing.T) {
	// Documents the contract; environments with a runtime installed
	// cannot exercise the failure path directly.
	t.Log("DetectBinary returns ErrNoRuntime when neither docker nor podman works")
}
