package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/shipit-dev/shipit/internal/runtime"
)

// Config holds all configuration for a deployment. It is immutable after
// creation via LoadConfig().
type Config struct {
	// Image identifies the build artifact. Dev and prod share one image
	// reference; only container names and ports differ per environment.
	Image ImageConfig `yaml:"image"`

	// Build contains image build settings
	Build BuildConfig `yaml:"build"`

	// EnvFile is the KEY=VALUE file injected into launched containers.
	// Relative paths are resolved from the project root.
	EnvFile string `yaml:"env_file"`

	// Runtime selects the container runtime binary: "auto", "docker" or "podman"
	Runtime string `yaml:"runtime"`

	// Dev configures the interactive development deployment
	Dev EnvironmentConfig `yaml:"dev"`

	// Prod configures the detached production deployment
	Prod EnvironmentConfig `yaml:"prod"`
}

// ImageConfig identifies the image to build and run.
type ImageConfig struct {
	// Name is the image name (e.g., "svc")
	Name string `yaml:"name"`

	// Tag is the image tag (e.g., "latest")
	Tag string `yaml:"tag"`
}

// Ref returns the image as a runtime reference.
func (c ImageConfig) Ref() runtime.ImageRef {
	return runtime.ImageRef{Name: c.Name, Tag: c.Tag}
}

// BuildConfig controls image construction.
type BuildConfig struct {
	// Context is the build context directory containing the build recipe.
	// Relative paths are resolved from the project root.
	Context string `yaml:"context"`
}

// EnvironmentConfig configures one deployment environment.
type EnvironmentConfig struct {
	// ContainerName is the container name for this environment. Dev and
	// prod names must differ or the two deployments collide at the runtime.
	ContainerName string `yaml:"container_name"`

	// Ports are "host:container" mappings bound at launch
	Ports []string `yaml:"ports"`
}

// PortMappings parses the configured port strings. LoadConfig validates
// them, so this does not fail on a loaded Config.
func (e EnvironmentConfig) PortMappings() ([]runtime.PortMapping, error) {
	mappings := make([]runtime.PortMapping, 0, len(e.Ports))
	for _, s := range e.Ports {
		p, err := runtime.ParsePort(s)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, p)
	}
	return mappings, nil
}

// LoadConfig loads configuration for the project rooted at projectRoot.
// Layering: compiled defaults, then the optional .shipit.yaml file, then
// SHIPIT_* overrides from the process environment and the project's env
// file (process environment wins), then validation.
//
// The env file doubles as an override source because the deployed service
// reads the same file at startup; a missing env file is not an error.
func LoadConfig(projectRoot string) (*Config, error) {
	root, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}

	cfg := DefaultConfig(filepath.Base(root))
	defaultDevName := cfg.Dev.ContainerName
	defaultProdName := cfg.Prod.ContainerName

	// Optional config file
	configPath := filepath.Join(root, ConfigFileName)
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", ConfigFileName, err)
		}
	}

	// Process environment overrides, then resolve relative paths
	applyEnvOverrides(cfg)
	if !filepath.IsAbs(cfg.EnvFile) {
		cfg.EnvFile = filepath.Join(root, cfg.EnvFile)
	}
	if !filepath.IsAbs(cfg.Build.Context) {
		cfg.Build.Context = filepath.Join(root, cfg.Build.Context)
	}

	// Env file entries act as a fallback override layer. The env file
	// cannot relocate itself.
	if dotenv, err := godotenv.Read(cfg.EnvFile); err == nil {
		delete(dotenv, EnvVarEnvFile)
		applyDotenvOverrides(cfg, dotenv)
	}

	// Container name defaults follow the image name, not the directory
	// name; an explicit container_name always wins.
	if cfg.Dev.ContainerName == defaultDevName {
		cfg.Dev.ContainerName = cfg.Image.Name + DefaultDevSuffix
	}
	if cfg.Prod.ContainerName == defaultProdName {
		cfg.Prod.ContainerName = cfg.Image.Name + DefaultProdSuffix
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
