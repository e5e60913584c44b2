package fileio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leocov-dev/pzpack/core"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.ini"))
	require.NoError(t, err)
	assert.Equal(t, core.Config{}, cfg)
}

func TestLoadConfigIni(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	writeTestFile(t, path, `; modpack settings
[DEFAULT]
name = Pack
source = /library
destination = /out
layout = workshop

[MODS]
mod_ids = modA, modB ,modC,
ignore = *.bak
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, core.Config{
		Name:        "Pack",
		Source:      "/library",
		Destination: "/out",
		Layout:      "workshop",
		ModIDs:      []string{"modA", "modB", "modC"},
		Ignore:      []string{"*.bak"},
	}, cfg)
}

func TestLoadConfigIniModsInheritDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	writeTestFile(t, path, `[DEFAULT]
destination = /out
mod_ids = modA,modB
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/out", cfg.Destination)
	assert.Equal(t, []string{"modA", "modB"}, cfg.ModIDs)
}

func TestLoadConfigIniHeaderlessKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	writeTestFile(t, path, `source = /headerless
destination = /headerless

[DEFAULT]
destination = /out
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/headerless", cfg.Source)
	assert.Equal(t, "/out", cfg.Destination)
}

func TestLoadConfigToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeTestFile(t, path, `[DEFAULT]
name = "Pack"
source = "/library"

[MODS]
mod_ids = ["modA", "modB"]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Pack", cfg.Name)
	assert.Equal(t, "/library", cfg.Source)
	assert.Equal(t, []string{"modA", "modB"}, cfg.ModIDs)
}

func TestLoadConfigInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeTestFile(t, path, "[DEFAULT\nname = ")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigIniColonDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	writeTestFile(t, path, "[DEFAULT]\nsource: C:\\library\ndestination = D:\\out\n\n[MODS]\nmod_ids: modA,modB\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, `C:\library`, cfg.Source)
	assert.Equal(t, `D:\out`, cfg.Destination)
	assert.Equal(t, []string{"modA", "modB"}, cfg.ModIDs)
}

func TestLoadConfigIniContinuationLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	writeTestFile(t, path, `[MODS]
mod_ids = modA,
    modB
	; disabled for now
    modC
ignore:
    *.bak
    *.psd

[DEFAULT]
name = Pack
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"modA", "modB", "modC"}, cfg.ModIDs)
	assert.Equal(t, []string{"*.bak", "*.psd"}, cfg.Ignore)
	assert.Equal(t, "Pack", cfg.Name)
}
