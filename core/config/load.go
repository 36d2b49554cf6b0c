package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory. An empty path or a
// missing configuration file selects the built-in defaults.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	if path == "" {
		return defaultConfig(), nil
	}

	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := afero.ReadFile(fsys, filepath.Join(path, ConfigurationName))
	switch {
	case os.IsNotExist(err):
		return defaultConfig(), nil
	case err != nil:
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
