package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// config is the contents of a configuration file. Every setting has a flag of
// the same name which overrides it.
type config struct {
	Debug    bool   `toml:"debug" yaml:"debug"`
	Warn     bool   `toml:"warn" yaml:"warn"`
	Strict   bool   `toml:"strict" yaml:"strict"`
	Echo     bool   `toml:"echo" yaml:"echo"`
	Prec     uint   `toml:"prec" yaml:"prec"`
	MaxDepth int    `toml:"max_depth" yaml:"max_depth"`
	Fmt      string `toml:"fmt" yaml:"fmt"`
}

// configEnv names an environment variable holding the config file path.
const configEnv = "FM_CONFIG"

// loadConfig loads the config file at path. If path is empty, the file named
// by $FM_CONFIG is used, then config.toml in the user config directory. It is
// only an error for that last file to be missing.
func loadConfig(path string, lookup func(string) (string, bool)) (config, error) {
	var cfg config
	if path == "" {
		path, _ = lookup(configEnv)
	}
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "fm", "config.toml")
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
	}
	if err := decodeConfig(path, &cfg); err != nil {
		return config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return cfg, nil
}

// decodeConfig decodes a TOML or YAML file according to its extension.
// Unknown keys are errors.
func decodeConfig(path string, cfg *config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml", "":
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return err
		}
		if u := md.Undecoded(); len(u) != 0 {
			keys := make([]string, len(u))
			for i, k := range u {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return fmt.Errorf("unknown keys %s", strings.Join(keys, ", "))
		}
		return nil
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unknown config format %q", ext)
	}
}
