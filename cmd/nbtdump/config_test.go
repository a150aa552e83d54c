package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	nbt "github.com/starfederation/nbt-go"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nbtdump.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func unsetFlags() cli {
	return cli{MaxDepth: -1, SkipHeader: -1}
}

func TestLoadDumpConfigDefaults(t *testing.T) {
	cfg, err := loadDumpConfig("")
	require.NoError(t, err)
	require.Equal(t, binary.BigEndian, cfg.ByteOrder)
	require.Equal(t, nbt.DefaultMaxDepth, cfg.MaxDepth)
	require.Equal(t, "auto", cfg.Compression)
	require.Equal(t, "text", cfg.Format)
}

func TestLoadDumpConfigFileAndFlagOverrides(t *testing.T) {
	path := writeConfig(t, `
byte_order = "bedrock"
max_depth = 64
compression = "GZIP"
format = "json"
skip_header = 8
`)
	cfg, err := loadDumpConfig(path)
	require.NoError(t, err)
	require.Equal(t, binary.LittleEndian, cfg.ByteOrder)
	require.Equal(t, 64, cfg.MaxDepth)
	require.Equal(t, "gzip", cfg.Compression)
	require.Equal(t, "json", cfg.Format)
	require.Equal(t, 8, cfg.SkipHeader)

	args := unsetFlags()
	args.ByteOrder = "big"
	args.MaxDepth = 0
	require.NoError(t, cfg.applyFlags(args))
	require.Equal(t, binary.BigEndian, cfg.ByteOrder)
	require.Equal(t, 0, cfg.MaxDepth)
	require.Equal(t, "json", cfg.Format)
	require.Equal(t, 8, cfg.SkipHeader)
}

func TestLoadDumpConfigRejectsBadValues(t *testing.T) {
	_, err := loadDumpConfig(writeConfig(t, `byte_order = "middle"`))
	require.Error(t, err)
	_, err = loadDumpConfig(writeConfig(t, `format = "yaml"`))
	require.Error(t, err)
	_, err = loadDumpConfig(writeConfig(t, `compression = [`))
	require.Error(t, err)
	_, err = loadDumpConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	cfg := defaultDumpConfig()
	args := unsetFlags()
	args.Compression = "lz4"
	require.Error(t, cfg.applyFlags(args))
}
