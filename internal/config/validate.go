package config

import (
	"errors"
	"fmt"

	"github.com/shipit-dev/shipit/internal/runtime"
)

// ValidationError contains details about what failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// validateConfig checks all config values for validity.
// Returns nil if valid, or joined errors for all validation failures.
func validateConfig(cfg *Config) error {
	var errs []error

	if cfg.Image.Name == "" {
		errs = append(errs, &ValidationError{
			Field:   "image.name",
			Value:   cfg.Image.Name,
			Message: "must not be empty",
		})
	}

	if cfg.Image.Tag == "" {
		errs = append(errs, &ValidationError{
			Field:   "image.tag",
			Value:   cfg.Image.Tag,
			Message: "must not be empty",
		})
	}

	if cfg.Build.Context == "" {
		errs = append(errs, &ValidationError{
			Field:   "build.context",
			Value:   cfg.Build.Context,
			Message: "must not be empty",
		})
	}

	switch cfg.Runtime {
	case "auto", "docker", "podman":
		// Valid
	default:
		errs = append(errs, &ValidationError{
			Field:   "runtime",
			Value:   cfg.Runtime,
			Message: "must be one of: auto, docker, podman",
		})
	}

	for env, ec := range map[string]EnvironmentConfig{"dev": cfg.Dev, "prod": cfg.Prod} {
		if ec.ContainerName == "" {
			errs = append(errs, &ValidationError{
				Field:   env + ".container_name",
				Value:   ec.ContainerName,
				Message: "must not be empty",
			})
		}
		for i, p := range ec.Ports {
			if _, err := runtime.ParsePort(p); err != nil {
				errs = append(errs, &ValidationError{
					Field:   fmt.Sprintf("%s.ports[%d]", env, i),
					Value:   p,
					Message: err.Error(),
				})
			}
		}
	}

	// Dev and prod share an image but never a container name; equal names
	// would make every deploy tear down the other environment.
	if cfg.Dev.ContainerName != "" && cfg.Dev.ContainerName == cfg.Prod.ContainerName {
		errs = append(errs, &ValidationError{
			Field:   "prod.container_name",
			Value:   cfg.Prod.ContainerName,
			Message: "must differ from dev.container_name",
		})
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
