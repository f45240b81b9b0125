package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func noenv(string) (string, bool) { return "", false }

func TestLoadConfig(t *testing.T) {
	want := config{
		Debug:    true,
		Warn:     true,
		Strict:   true,
		Echo:     true,
		Prec:     128,
		MaxDepth: 16,
		Fmt:      "%.2f",
	}
	cases := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "fm.toml", `
debug = true
warn = true
strict = true
echo = true
prec = 128
max_depth = 16
fmt = "%.2f"
`},
		{"yaml", "fm.yaml", `
debug: true
warn: true
strict: true
echo: true
prec: 128
max_depth: 16
fmt: "%.2f"
`},
		{"yml", "fm.yml", `{debug: true, warn: true, strict: true, echo: true, prec: 128, max_depth: 16, fmt: "%.2f"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := writeFile(t, c.file, c.content)
			cfg, err := loadConfig(p, noenv)
			require.NoError(t, err)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
	}{
		{"toml-unknown", "fm.toml", "colour = true\n"},
		{"toml-syntax", "fm.toml", "debug = \n"},
		{"toml-type", "fm.toml", "prec = \"lots\"\n"},
		{"yaml-unknown", "fm.yaml", "colour: true\n"},
		{"yaml-type", "fm.yaml", "max_depth: deep\n"},
		{"format", "fm.json", "{}"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := writeFile(t, c.file, c.content)
			_, err := loadConfig(p, noenv)
			assert.Error(t, err)
		})
	}
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), noenv)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigDiscovery(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		p := writeFile(t, "fm.toml", "strict = true\n")
		cfg, err := loadConfig("", func(k string) (string, bool) {
			if k == configEnv {
				return p, true
			}
			return "", false
		})
		require.NoError(t, err)
		assert.True(t, cfg.Strict)
	})
	t.Run("user-dir", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		t.Setenv("HOME", dir)
		ud, err := os.UserConfigDir()
		require.NoError(t, err)
		require.NoError(t, os.MkdirAll(filepath.Join(ud, "fm"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(ud, "fm", "config.toml"), []byte("warn = true\n"), 0o644))
		cfg, err := loadConfig("", noenv)
		require.NoError(t, err)
		assert.True(t, cfg.Warn)
	})
	t.Run("none", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		t.Setenv("HOME", dir)
		cfg, err := loadConfig("", noenv)
		require.NoError(t, err)
		assert.Equal(t, config{}, cfg)
	})
	t.Run("empty-yaml", func(t *testing.T) {
		p := writeFile(t, "fm.yaml", "")
		cfg, err := loadConfig(p, noenv)
		require.NoError(t, err)
		assert.Equal(t, config{}, cfg)
	})
}

func TestRunConfig(t *testing.T) {
	p := writeFile(t, "fm.toml", "fmt = \"%.1f\"\nstrict = true\nwarn = true\n")
	out, _, err := run(t, nil, "", "--config", p, "1", "/", "3")
	require.NoError(t, err)
	assert.Equal(t, "0.3\n", out)

	_, _, err = run(t, nil, "", "--config", p, "1", "2")
	assert.Error(t, err)

	// Flags override the file.
	out, errout, err := run(t, nil, "", "--config", p, "--strict=false", "--fmt", "%g", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
	assert.Contains(t, errout, "WARN: 2: number 2 has no operator")

	_, _, err = run(t, map[string]string{configEnv: filepath.Join(t.TempDir(), "gone.toml")}, "", "1")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
