package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const manifestName = "jslex.toml"

// Manifest — проектные умолчания. Ищется вверх от рабочего каталога;
// флаги командной строки имеют приоритет над манифестом.
type Manifest struct {
	Tokenize TokenizeConfig `toml:"tokenize"`
}

// TokenizeConfig настраивает команду tokenize.
type TokenizeConfig struct {
	Format         string   `toml:"format"`
	Jobs           int      `toml:"jobs"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Exts           []string `toml:"exts"`
	NoCache        bool     `toml:"no_cache"`
}

// findManifest поднимается от start до корня в поисках jslex.toml.
func findManifest(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func loadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// manifestDefaults возвращает настройки из ближайшего манифеста
// или нулевые значения, если манифеста нет.
func manifestDefaults() TokenizeConfig {
	wd, err := os.Getwd()
	if err != nil {
		return TokenizeConfig{}
	}
	path, ok := findManifest(wd)
	if !ok {
		return TokenizeConfig{}
	}
	m, err := loadManifest(path)
	if err != nil {
		return TokenizeConfig{}
	}
	return m.Tokenize
}
