// Program ljfmt reads JSON written in a lenient syntax and writes it back as
// standard JSON text.
//
// Usage:
//
//	ljfmt [flags] [input]
//
// If no input file is named, ljfmt reads from stdin. The input may contain
// several values in sequence; each is written on its own line. Keys and
// strings may be unquoted or single-quoted, and members may be separated by
// ";" or joined to their keys by "=" or "=>". With --comments, comments and
// trailing commas are removed first.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// CLI defines the command-line interface
var CLI struct {
	Input    string `arg:"" optional:"" help:"Path to input file. If not specified, reads from stdin." type:"path"`
	Output   string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Config   string `help:"Path to a YAML configuration file." short:"c" type:"path"`
	Indent   int    `help:"Spaces per level of indentation; 0 for compact output." short:"n" default:"-1"`
	KeyCase  string `help:"Rewrite object keys: none, snake, kebab, camel, lower_camel." short:"k"`
	Comments bool   `help:"Accept comments and trailing commas in the input." short:"C"`
	Debug    bool   `help:"Enable debug logging." short:"d"`
}

// Context holds the runtime context.
type Context struct {
	Config *Config
	Logger *slog.Logger
	Stdin  io.Reader
	Stdout io.Writer
}

func main() {
	kong.Parse(&CLI,
		kong.Name("ljfmt"),
		kong.Description("Reformat lenient JSON as standard JSON."),
		kong.UsageOnError(),
	)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(2)
	}
	ctx := &Context{
		Config: cfg,
		Logger: newLogger(os.Stderr, cfg.Debug),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
	if err := run(ctx); err != nil {
		ctx.Logger.Debug("run failed", "error", err)
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig returns the configuration from the --config file, if any, with
// the flags set on the command line applied over it.
func loadConfig() (*Config, error) {
	cfg := NewConfig()
	if CLI.Config != "" {
		fc, err := LoadConfig(CLI.Config)
		if err != nil {
			return nil, newError(ErrorTypeConfig, "failed to load "+CLI.Config, err)
		}
		cfg = fc
	}
	if CLI.Indent >= 0 {
		cfg.Indent = CLI.Indent
	}
	if CLI.KeyCase != "" {
		cfg.KeyCase = CLI.KeyCase
	}
	cfg.Comments = cfg.Comments || CLI.Comments
	cfg.Debug = cfg.Debug || CLI.Debug
	if err := cfg.Validate(); err != nil {
		return nil, newError(ErrorTypeConfig, "invalid settings", err)
	}
	return cfg, nil
}

// run executes the main program logic.
func run(ctx *Context) error {
	f, err := newFormatter(ctx.Config, ctx.Logger)
	if err != nil {
		return err
	}

	src, err := readInput(ctx)
	if err != nil {
		return err
	}
	ctx.Logger.Debug("read input", "bytes", len(src), "file", CLI.Input)

	var buf bytes.Buffer
	nv, err := f.Format(&buf, src)
	if err != nil {
		return err
	} else if nv == 0 {
		return newError(ErrorTypeInput, "input contains no values", ErrNoInput)
	}
	ctx.Logger.Debug("formatted input", "values", nv)
	return writeOutput(ctx, buf.Bytes())
}

// writeOutput writes data to the output file or stdout.
func writeOutput(ctx *Context, data []byte) error {
	if CLI.Output != "" {
		if err := os.WriteFile(CLI.Output, data, 0644); err != nil {
			return newError(ErrorTypeOutput, fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		ctx.Logger.Info("wrote output", "file", CLI.Output)
		return nil
	}
	if _, err := ctx.Stdout.Write(data); err != nil {
		return newError(ErrorTypeOutput, "failed to write to stdout", err)
	}
	return nil
}

func readInput(ctx *Context) ([]byte, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			return nil, newError(ErrorTypeInput, "failed to read input file", err)
		}
		return data, nil
	}
	if ctx.Stdin == nil {
		return nil, newError(ErrorTypeInput, "no input", ErrNoInput)
	}
	data, err := io.ReadAll(ctx.Stdin)
	if err != nil {
		return nil, newError(ErrorTypeInput, "failed to read from stdin", err)
	}
	return data, nil
}
