// Package settings manages persistent user settings for the asgraph CLI.
package settings

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPolicyName is the policy used when no override is configured.
const DefaultPolicyName = "default"

// Settings holds persistent user preferences for the CLI.
type Settings struct {
	// DefaultASRelFile is the as-rel file to use when --as-rel-file is
	// not specified on the command line.
	DefaultASRelFile string `yaml:"default_as_rel_file,omitempty"`

	// DefaultPolicy records a routing policy name (only "default"
	// exists). The CLI does not read it; graphs are always built with
	// policy.Default.
	DefaultPolicy string `yaml:"default_policy,omitempty"`

	// DefaultSeed seeds hijack middle-AS sampling when --seed is not
	// given, so repeated runs without an explicit seed are still
	// reproducible for a given settings file.
	DefaultSeed uint64 `yaml:"default_seed,omitempty"`

	// MetricsAddr is the default --metrics-addr.
	MetricsAddr string `yaml:"metrics_addr,omitempty"`

	// RedisAddr is the default --redis-addr for the reachability cache.
	RedisAddr string `yaml:"redis_addr,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file.
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "/tmp/asgraph_settings.yaml"
	}
	return filepath.Join(home, ".asgraph", "settings.yaml")
}

// Load reads settings from the default location.
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path. A missing file yields
// zero-value settings rather than an error.
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes settings to the default location.
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path.
func (s *Settings) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetPolicy returns the configured policy name, with a fallback default.
func (s *Settings) GetPolicy() string {
	if s.DefaultPolicy != "" {
		return s.DefaultPolicy
	}
	return DefaultPolicyName
}

// Clear resets all settings to defaults.
func (s *Settings) Clear() {
	*s = Settings{}
}
