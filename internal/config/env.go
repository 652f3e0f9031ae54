package config

import "os"

// Environment variables recognized as config overrides.
const (
	EnvVarRuntime = "SHIPIT_RUNTIME"
	EnvVarImage   = "SHIPIT_IMAGE"
	EnvVarTag     = "SHIPIT_TAG"
	EnvVarEnvFile = "SHIPIT_ENV_FILE"
)

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: EnvVarRuntime,
		apply: func(c *Config, v string) {
			c.Runtime = v
		},
	},
	{
		envVar: EnvVarImage,
		apply: func(c *Config, v string) {
			c.Image.Name = v
		},
	},
	{
		envVar: EnvVarTag,
		apply: func(c *Config, v string) {
			c.Image.Tag = v
		},
	},
	{
		envVar: EnvVarEnvFile,
		apply: func(c *Config, v string) {
			c.EnvFile = v
		},
	},
}

// applyEnvOverrides modifies config in place with values set in the
// process environment.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}

// applyDotenvOverrides applies entries read from the env file for
// variables the process environment leaves unset, so the same variable
// set in the shell beats one committed in the file.
func applyDotenvOverrides(cfg *Config, dotenv map[string]string) {
	for _, override := range envOverrides {
		if os.Getenv(override.envVar) != "" {
			continue
		}
		if val := dotenv[override.envVar]; val != "" {
			override.apply(cfg, val)
		}
	}
}
