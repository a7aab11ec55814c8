// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fcli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigJSONC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fcli.jsonc")
	content := `{
	// greet always says hello to the team
	"commands": {
		"greet": {"args": ["-name", "team",],},
	},
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"-name", "team"}, cfg.defaultArgs("Greet"))
}

func TestLoadConfigJSONInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fcli.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"commands": [}`), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestConfigSaveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fcli.json")
	cfg := &Config{}
	cfg.SetDefaults("deploy", []string{"-env", "prod"})
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Commands, loaded.Commands)
}

func TestFindConfigJSON(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "fcli.json"), []byte(`{"commands": {"x": {"args": ["-y"]}}}`), 0o644))
	nested := filepath.Join(root, "nested")
	require.NoError(t, os.Mkdir(nested, 0o755))

	path, cfg, err := FindConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "fcli.json"), path)
	assert.Equal(t, []string{"-y"}, cfg.defaultArgs("x"))
}
