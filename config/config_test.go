package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsphweid/ragakey/mask"
	"github.com/jsphweid/ragakey/model"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Mask", cfg.Mask, "101010110101"},
		{"OutDir", cfg.OutDir, "./out"},
		{"Verbose", cfg.Verbose, false},
		{"Server.Port", cfg.Server.Port, 8080},
		{"Chart.CellSize", cfg.Chart.CellSize, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)

	m, err := cfg.QualityMask()
	require.NoError(t, err)
	assert.Equal(t, mask.Default(), m)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RAGAKEY_MASK", "111111111111")
	t.Setenv("RAGAKEY_OUT_DIR", "/tmp/charts")

	v := viper.New()
	v.SetEnvPrefix("RAGAKEY")
	v.AutomaticEnv()

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, "111111111111", cfg.Mask)
	assert.Equal(t, "/tmp/charts", cfg.OutDir)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ragakey.toml")
	content := `mask = "100000000001"
out_dir = "charts"

[server]
port = 9090

[chart]
cell_size = 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, "100000000001", cfg.Mask)
	assert.Equal(t, "charts", cfg.OutDir)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Chart.CellSize)
	// untouched keys keep their defaults
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

func TestLoad_InvalidMask(t *testing.T) {
	v := viper.New()
	v.Set("mask", "10101")
	_, err := LoadFrom(v)
	assert.ErrorIs(t, err, mask.ErrInvalidMask)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Server.Port = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Chart.CellSize = 5
	assert.Error(t, bad.Validate())
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".ragakey.toml")
	cfg := Default()
	cfg.Mask = "110011001100"
	cfg.Server.Port = 9999
	require.NoError(t, Save(path, cfg))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	got, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestWatchReloadsMask(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ragakey.toml")
	require.NoError(t, Save(path, Default()))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	changes := make(chan Config, 4)
	Watch(v, func(cfg Config) { changes <- cfg })

	updated := Default()
	updated.Mask = "000000000001"
	require.NoError(t, Save(path, updated))

	select {
	case cfg := <-changes:
		m, err := cfg.QualityMask()
		require.NoError(t, err)
		assert.Equal(t, model.QualityMask{11: 1}, m)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatchSkipsInvalidEdit(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ragakey.toml")
	require.NoError(t, Save(path, Default()))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	changes := make(chan Config, 4)
	Watch(v, func(cfg Config) { changes <- cfg })

	require.NoError(t, os.WriteFile(path, []byte("mask = \"10\"\n"), 0o644))
	time.Sleep(3 * ReloadDelay)

	updated := Default()
	updated.Mask = "100000000000"
	require.NoError(t, Save(path, updated))

	select {
	case cfg := <-changes:
		assert.Equal(t, "100000000000", cfg.Mask)
		assert.Equal(t, 8080, cfg.Server.Port)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}
