package config

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

	"github.com/miajio/nlsql/pkg/pipeline"
)

// EnvPrefix prefixes environment overrides: NL2SQL_STORE_DIR -> store_dir.
const EnvPrefix = "NL2SQL_"

// findConfigFile returns the explicit path, or nl2sql.yaml / nl2sql.yml in
// the working directory, or "".
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"nl2sql.yaml", "nl2sql.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"schema_file":         DefaultSchemaFile,
		"query_file":          DefaultQueryFile,
		"audio_file":          DefaultAudioFile,
		"output_file":         DefaultOutputFile,
		"store_dir":           "",
		"suggestions":         DefaultSuggestions,
		"cutoff":              DefaultCutoff,
		"interactive":         InteractiveAuto,
		"rules":               RulesStandard,
		"verbose":             false,
		"fallback_query":      pipeline.FallbackQuery,
		"history_ttl":         "0s",
		"gc_interval":         DefaultGCInterval.String(),
		"transcriber_command": "",
	}
}

// Load reads configuration. Precedence (highest to lowest):
// flags > env vars > config file > defaults. It returns the config and
// the config file used, if any.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, used, nil
}
