package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/zeebo/xxh3"

	nbt "github.com/starfederation/nbt-go"
)

type cli struct {
	File        string `arg:"" optional:"" default:"-" help:"NBT file to read, - for stdin."`
	Config      string `help:"TOML file with default settings." env:"NBTDUMP_CONFIG"`
	ByteOrder   string `help:"Byte order: big (Java) or little (Bedrock)."`
	MaxDepth    int    `help:"Maximum nesting depth, 0 for unlimited." default:"-1"`
	Compression string `help:"Input framing: auto, none, gzip or zlib."`
	Format      string `help:"Output format: text or json."`
	SkipHeader  int    `help:"Bytes to skip before the root tag (8 for Bedrock level.dat)." default:"-1"`
	Hash        bool   `help:"Log an xxh3 fingerprint of the uncompressed payload."`
	LogLevel    string `help:"Log level." env:"NBTDUMP_LOG_LEVEL"`
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("nbtdump"),
		kong.Description("Decode a Named Binary Tag file and print its tree."),
		kong.UsageOnError(),
	)

	cfg, err := loadDumpConfig(args.Config)
	if err == nil {
		err = cfg.applyFlags(args)
	}
	logger := newLogger(cfg.LogLevel)
	if err != nil {
		logger.Fatal().Err(err).Msg("configure")
	}

	if err := run(args, cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.Fatal().Err(err).Str("file", args.File).Msg("nbtdump failed")
	}
}

func newLogger(level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", "nbtdump").Logger()
	if lvl, err := zerolog.ParseLevel(level); err == nil && level != "" {
		logger = logger.Level(lvl)
	}
	return logger
}

func run(args cli, cfg dumpConfig, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) error {
	src := stdin
	if args.File != "-" {
		f, err := os.Open(args.File)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	in, err := openInput(src, cfg.Compression)
	if err != nil {
		return err
	}
	defer in.Close()

	payload, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if cfg.SkipHeader > len(payload) {
		return fmt.Errorf("input of %d bytes is shorter than the %d byte header", len(payload), cfg.SkipHeader)
	}
	payload = payload[cfg.SkipHeader:]

	r := nbt.NewReader(bytes.NewReader(payload), cfg.options()...)
	name, root, err := r.ReadNamed()
	if err != nil {
		return err
	}

	ev := logger.Debug().
		Str("name", name).
		Str("type", root.Type().String()).
		Str("size", humanize.Bytes(uint64(len(payload))))
	if trailing := int64(len(payload)) - r.Offset(); trailing > 0 {
		ev = ev.Int64("trailing_bytes", trailing)
	}
	if args.Hash {
		logger.Info().Str("xxh3", fmt.Sprintf("%016x", xxh3.Hash(payload))).Msg("payload fingerprint")
	}
	ev.Msg("decoded")

	switch cfg.Format {
	case "json":
		out, err := nbt.ToJSON(root)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, out)
		return err
	default:
		return nbt.WriteText(stdout, name, root)
	}
}
