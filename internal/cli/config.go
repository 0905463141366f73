package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// envPrefix is stripped from environment variables, so SKOOMA_ADDR maps
// to the "addr" key.
const envPrefix = "SKOOMA_"

// defaultConfigFile is loaded when present and no --config flag was given.
const defaultConfigFile = "skooma.yaml"

// ServeConfig holds the settings for the HTTP server.
//
// Precedence, lowest to highest: defaults, config file, environment
// variables, command line flags.
type ServeConfig struct {
	Addr     string `koanf:"addr"`
	RedisURL string `koanf:"redis_url"`
	LogLevel string `koanf:"log_level"`
}

// LoadServeConfig merges defaults, an optional YAML config file, SKOOMA_*
// environment variables and any explicitly set flags.
func LoadServeConfig(cfgFile string, flags *pflag.FlagSet) (*ServeConfig, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"addr":      ":8080",
		"redis_url": "",
		"log_level": "info",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	explicit := cfgFile != ""
	if cfgFile == "" {
		cfgFile = defaultConfigFile
	}
	if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
		// A missing default file is fine; a missing explicit one is not.
		if explicit || !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading config file %s: %w", cfgFile, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil)
		if err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg ServeConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
