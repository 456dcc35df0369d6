package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// fileConfig — необязательный permute.toml, ищется вверх от текущей
// директории. Задаёт только значения по умолчанию; явные флаги главнее.
type fileConfig struct {
	Defaults defaultsConfig `toml:"defaults"`
}

type defaultsConfig struct {
	Progress string `toml:"progress"`
	Color    string `toml:"color"`
	Quiet    bool   `toml:"quiet"`
}

func findPermuteToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "permute.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadFileConfig возвращает пустой конфиг, если файла нет.
func loadFileConfig(startDir string) (fileConfig, error) {
	var cfg fileConfig
	path, ok, err := findPermuteToml(startDir)
	if err != nil || !ok {
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// apply накладывает конфиг на нетронутые флаги и возвращает эффективное
// значение --progress (его читают не через pflag, а напрямую).
func (c fileConfig) apply(cmd *cobra.Command) string {
	root := cmd.Root().PersistentFlags()
	if c.Defaults.Quiet && !root.Lookup("quiet").Changed {
		_ = root.Set("quiet", "true")
	}
	if c.Defaults.Color != "" && !root.Lookup("color").Changed {
		_ = root.Set("color", c.Defaults.Color)
	}

	progressFlag := cmd.Flags().Lookup("progress")
	if progressFlag == nil {
		return ""
	}
	if progressFlag.Changed {
		return progressFlag.Value.String()
	}
	if c.Defaults.Progress != "" {
		return c.Defaults.Progress
	}
	return progressFlag.Value.String()
}
