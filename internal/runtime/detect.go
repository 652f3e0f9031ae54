package runtime

import "os/exec"

// DetectBinary finds a usable container runtime binary. Docker is checked
// first, then podman. A binary counts as usable only if `<bin> version`
// succeeds, which also catches an unreachable daemon.
func DetectBinary() (string, error) {
	for _, bin := range []string{"docker", "podman"} {
		if _, err := exec.LookPath(bin); err != nil {
			continue
		}
		if err := exec.Command(bin, "version").Run(); err != nil {
			continue
		}
		return bin, nil
	}
	return "", ErrNoRuntime
}
