// Command slugify prints URL-safe slugs for its arguments, or for every line
// read from standard input when no arguments are given.
//
// Defaults come from the environment (and an optional .env file):
//
//	SLUG_SEPARATOR          separator between words (default "-")
//	SLUG_MAX_LENGTH         maximum slug length in runes, 0 for no limit
//	SLUG_SUFFIX_LENGTH      random suffix length, 0 for none
//	SLUG_RESERVED           comma separated slugs that get a random suffix
//	SLUG_REPLACEMENTS_FILE  YAML mapping applied before slugifying
//	LOG_LEVEL               debug, info, warn or error (default info)
//	LOG_FORMAT              text or json (default text)
//
// Flags override the environment. An empty separator can only be requested
// with -sep="".
//
// Usage:
//
//	slugify "Hello World"             # hello-world
//	slugify -sep _ "Hello World"      # hello_world
//	cat titles.txt | slugify -max 40
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/textkit/pkg/config"
	"github.com/dmitrymomot/textkit/pkg/logger"
	"github.com/dmitrymomot/textkit/pkg/slug"
)

// maxLineSize bounds a single stdin line.
const maxLineSize = 1 << 20

// Config holds the environment driven defaults.
type Config struct {
	Separator        string   `env:"SLUG_SEPARATOR" envDefault:"-"`
	MaxLength        int      `env:"SLUG_MAX_LENGTH" envDefault:"0"`
	SuffixLength     int      `env:"SLUG_SUFFIX_LENGTH" envDefault:"0"`
	Reserved         []string `env:"SLUG_RESERVED" envSeparator:","`
	ReplacementsFile string   `env:"SLUG_REPLACEMENTS_FILE"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string   `env:"LOG_FORMAT" envDefault:"text"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(1)
	}
}

// run executes the command. Failures are reported on stderr before returning.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "slugify: %v\n", err)
		return err
	}

	fs := flag.NewFlagSet("slugify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	sep := fs.String("sep", cfg.Separator, "separator between words")
	maxLength := fs.Int("max", cfg.MaxLength, "maximum slug length in runes (0 = unlimited)")
	suffix := fs.Int("suffix", cfg.SuffixLength, "length of a random suffix (0 = none)")
	replacements := fs.String("replacements", cfg.ReplacementsFile, "YAML file with replacements applied first")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "slugify: %v\n", err)
		return err
	}

	table, err := config.LoadReplacements(*replacements)
	if err != nil {
		log.Error("failed to load replacements", slog.String("path", *replacements), logger.Error(err))
		return err
	}

	opts := []slug.Option{
		slug.Separator(*sep),
		slug.MaxLength(*maxLength),
		slug.WithSuffix(*suffix),
		slug.Reserved(cfg.Reserved...),
	}
	if len(table) > 0 {
		opts = append(opts, slug.CustomReplace(table))
	}

	log.Debug("slugify started",
		logger.Separator(*sep),
		slog.Int("max_length", *maxLength),
		slog.Int("suffix_length", *suffix),
		slog.Int("replacements", len(table)),
	)

	emit := func(in string) error {
		out, err := slug.Make(in, opts...)
		if err != nil {
			log.Error("failed to build slug", logger.Input(in), logger.Error(err))
			return err
		}
		log.Debug("slug built", logger.Input(in), logger.Slug(out))
		_, err = fmt.Fprintln(stdout, out)
		return err
	}

	if fs.NArg() > 0 {
		for _, in := range fs.Args() {
			if err := emit(in); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			log.Warn("interrupted", logger.Error(err))
			return err
		}
		if err := emit(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error("failed to read input", logger.Error(err))
		return err
	}

	return nil
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatText && format != logger.FormatJSON {
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}

	return logger.New(
		logger.WithFormat(format),
		logger.WithLevel(level),
		logger.WithOutput(w),
		logger.WithAttr(slog.String("app", "slugify")),
	), nil
}
