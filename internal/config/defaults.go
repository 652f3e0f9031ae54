package config

const (
	ConfigFileName = ".shipit.yaml"

	DefaultTag          = "latest"
	DefaultBuildContext = "."
	DefaultEnvFile      = ".env"
	DefaultRuntime      = "auto"
	DefaultDevPort      = "8443:8443"
	DefaultProdPort     = "8000:8000"
	DefaultDevSuffix    = "-dev"
	DefaultProdSuffix   = "-prod"
)

// DefaultConfig returns a Config with all default values applied. The
// image and container names are derived from the project directory name.
func DefaultConfig(projectName string) *Config {
	return &Config{
		Image: ImageConfig{
			Name: projectName,
			Tag:  DefaultTag,
		},
		Build: BuildConfig{
			Context: DefaultBuildContext,
		},
		EnvFile: DefaultEnvFile,
		Runtime: DefaultRuntime,
		Dev: EnvironmentConfig{
			ContainerName: projectName + DefaultDevSuffix,
			Ports:         []string{DefaultDevPort},
		},
		Prod: EnvironmentConfig{
			ContainerName: projectName + DefaultProdSuffix,
			Ports:         []string{DefaultProdPort},
		},
	}
}
