// Config loading for the puzzler CLI.
package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/puzzles/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyAlgorithm = "algorithm"
	cfgKeyDataDir   = "data_dir"
	cfgKeyWordsFile = "words_file"

	// Default search algorithm when neither flag nor config sets one.
	defaultAlgorithm = "bfs"
)

// loadConfig reads config.yaml from the resolved config directory using
// Viper. A missing config.yaml is not an error: defaults apply, and the
// init command is responsible for creating the file.
func loadConfig() (*viper.Viper, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyAlgorithm, defaultAlgorithm)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// resolveAlgorithm returns the search algorithm from flag, then config,
// then the built-in default.
func resolveAlgorithm(v *viper.Viper) string {
	if flags.algorithm != "" {
		return flags.algorithm
	}
	return v.GetString(cfgKeyAlgorithm)
}

// resolveDataDir returns the data directory from flag, config, env, or
// the CWD-relative default.
func resolveDataDir(v *viper.Viper) (string, error) {
	return paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
}
