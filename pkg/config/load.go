package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/marshallshelly/domino/pkg/registrar"
)

// EnvPrefix prefixes environment variables: DOMINO_DATABASE_URL.
const EnvPrefix = "DOMINO"

// Load reads configuration into v with the following precedence:
// 1. Command line flags bound with BindPFlag
// 2. Environment variables
// 3. Config file (path, or domino.yaml in . or $HOME/.domino)
// 4. Default values
func Load(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("domino")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.domino")
	}

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", "")
	v.SetDefault("database.url", "")
	v.SetDefault("database.schema", "public")

	v.SetDefault("scaffold.tables", []string{})
	v.SetDefault("scaffold.namespace", "")
	v.SetDefault("scaffold.generate_model", true)
	v.SetDefault("scaffold.exclude", []string{})

	v.SetDefault("output.root", ".")
	v.SetDefault("templates.dir", "")

	v.SetDefault("model.generator", ModelGeneratorCommand)
	v.SetDefault("model.command", "rails generate model")

	v.SetDefault("registrar.enabled", false)
	v.SetDefault("registrar.path", registrar.DefaultPath)

	v.SetDefault("naming.plural_overrides", map[string]string{})
	v.SetDefault("naming.singular_overrides", map[string]string{})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
