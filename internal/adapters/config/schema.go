package config

// Projectfile represents the structure of the bccproj.yaml configuration file.
// Pointer fields distinguish an omitted key from its zero value.
type Projectfile struct {
	Make          *string    `yaml:"make"`
	StripExe      *bool      `yaml:"strip_exe"`
	VersionMarker *MarkerDTO `yaml:"version_marker"`
}

// MarkerDTO represents the version marker commands in the configuration.
type MarkerDTO struct {
	Mark  []string `yaml:"mark"`
	Clear []string `yaml:"clear"`
}
