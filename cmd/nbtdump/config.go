package main

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	nbt "github.com/starfederation/nbt-go"
)

type fileConfig struct {
	ByteOrder   string `toml:"byte_order"`
	MaxDepth    int    `toml:"max_depth"`
	Compression string `toml:"compression"`
	Format      string `toml:"format"`
	SkipHeader  int    `toml:"skip_header"`
	LogLevel    string `toml:"log_level"`
}

// dumpConfig is the resolved configuration after defaults, the optional
// config file and command line flags have been applied in that order.
type dumpConfig struct {
	ByteOrder   binary.ByteOrder
	MaxDepth    int
	Compression string
	Format      string
	SkipHeader  int
	LogLevel    string
}

func defaultDumpConfig() dumpConfig {
	return dumpConfig{
		ByteOrder:   binary.BigEndian,
		MaxDepth:    nbt.DefaultMaxDepth,
		Compression: "auto",
		Format:      "text",
		LogLevel:    "info",
	}
}

func loadDumpConfig(path string) (dumpConfig, error) {
	cfg := defaultDumpConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return dumpConfig{}, fmt.Errorf("load nbtdump config: %w", err)
	}

	if meta.IsDefined("byte_order") {
		order, err := parseByteOrder(raw.ByteOrder)
		if err != nil {
			return dumpConfig{}, err
		}
		cfg.ByteOrder = order
	}
	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("compression") {
		cfg.Compression = strings.ToLower(strings.TrimSpace(raw.Compression))
	}
	if meta.IsDefined("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(raw.Format))
	}
	if meta.IsDefined("skip_header") {
		cfg.SkipHeader = raw.SkipHeader
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	return cfg, cfg.validate()
}

// applyFlags overrides cfg with every flag the user actually set.
func (cfg *dumpConfig) applyFlags(args cli) error {
	if args.ByteOrder != "" {
		order, err := parseByteOrder(args.ByteOrder)
		if err != nil {
			return err
		}
		cfg.ByteOrder = order
	}
	if args.MaxDepth >= 0 {
		cfg.MaxDepth = args.MaxDepth
	}
	if args.Compression != "" {
		cfg.Compression = strings.ToLower(args.Compression)
	}
	if args.Format != "" {
		cfg.Format = strings.ToLower(args.Format)
	}
	if args.SkipHeader >= 0 {
		cfg.SkipHeader = args.SkipHeader
	}
	if args.LogLevel != "" {
		cfg.LogLevel = args.LogLevel
	}
	return cfg.validate()
}

func (cfg dumpConfig) validate() error {
	switch cfg.Compression {
	case "auto", "none", "gzip", "zlib":
	default:
		return fmt.Errorf("unknown compression %q", cfg.Compression)
	}
	switch cfg.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	if cfg.SkipHeader < 0 {
		return fmt.Errorf("skip_header must not be negative")
	}
	return nil
}

func (cfg dumpConfig) options() []nbt.Option {
	return []nbt.Option{nbt.WithByteOrder(cfg.ByteOrder), nbt.WithMaxDepth(cfg.MaxDepth)}
}

func parseByteOrder(raw string) (binary.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "big", "be", "big-endian", "java":
		return binary.BigEndian, nil
	case "little", "le", "little-endian", "bedrock":
		return binary.LittleEndian, nil
	default:
		return nil, fmt.Errorf("unknown byte order %q", raw)
	}
}
