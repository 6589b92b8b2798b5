// Package config loads formatter configuration from sqlfmt.yaml, the
// SQLFMT_* environment and command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config file names, in lookup order.
const (
	ConfigFileName    = "sqlfmt.yaml"
	ConfigFileNameAlt = "sqlfmt.yml"
)

// maxUpwardSearchLevels limits how far up the directory tree to search for a
// config file.
const maxUpwardSearchLevels = 10

// defaults mirror format.DefaultOptions.
var defaults = map[string]interface{}{
	"language":                   "sql",
	"tab_width":                  2,
	"keyword_case":               "upper",
	"identifier_case":            "preserve",
	"function_case":              "preserve",
	"data_type_case":             "preserve",
	"indent_style":               "standard",
	"logical_operator_newline":   "before",
	"expression_width":           50,
	"lines_between_queries":      1,
	"comma_position":             "after",
	"multiline_lists":            "always",
	"alias_as":                   "preserve",
	"newline_before_close_paren": true,
}

// Load builds the layered configuration. An explicit path wins over
// discovery; a missing discovered file is not an error.
func Load(explicit string, flags *pflag.FlagSet, logger *slog.Logger) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, err
	}

	path, err := findConfigFile(explicit)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := checkKnownKeys(path); err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		logger.Debug("loaded config file", "path", path)
	}

	if err := k.Load(env.Provider("SQLFMT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SQLFMT_"))
	}), nil); err != nil {
		return nil, err
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if _, ok := knownKeys[key]; !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// checkKnownKeys rejects config files containing keys the formatter does not
// recognize.
func checkKnownKeys(path string) error {
	probe := koanf.New(".")
	if err := probe.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	for _, key := range probe.Keys() {
		if _, ok := knownKeys[key]; !ok {
			return fmt.Errorf("%s: unknown option %q", path, key)
		}
	}
	return nil
}

// findConfigFile resolves the config file path. An explicit path must exist;
// otherwise the directory tree is searched upward from the working directory.
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", nil //nolint:nilerr // unreadable CWD just means no config file
	}
	for i := 0; i < maxUpwardSearchLevels; i++ {
		for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}
