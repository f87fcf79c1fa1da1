package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"

	"github.com/creachadair/ljson"
	"github.com/tailscale/hujson"
)

// formatter renders a sequence of lenient JSON values as standard JSON.
type formatter struct {
	cfg    *Config
	rekey  func(string) string
	logger *slog.Logger
}

func newFormatter(cfg *Config, logger *slog.Logger) (*formatter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, newError(ErrorTypeConfig, "invalid configuration", err)
	}
	rekey, _ := keyCaseFunc(cfg.KeyCase)
	return &formatter{cfg: cfg, rekey: rekey, logger: logger}, nil
}

// Format reads zero or more values from src and writes each to w, one per
// line. It returns the number of values written.
func (f *formatter) Format(w io.Writer, src []byte) (int, error) {
	if f.cfg.Comments {
		ast, err := hujson.Parse(bytes.Clone(src))
		if err != nil {
			f.logger.Debug("input is not JWCC, using it as given", "error", err)
		} else {
			ast.Standardize()
			src = ast.Pack()
		}
	}

	var nv int
	err := ljson.NewStream(bytes.NewReader(src)).Parse(ljson.HandlerFunc(func(v ljson.Value, pos ljson.Position) error {
		f.logger.Debug("read value", "kind", v.Kind(), "at", pos)
		text, err := f.render(f.rewrite(v))
		if err != nil {
			return newError(ErrorTypeOutput, "failed to render value", err)
		}
		if _, err := io.WriteString(w, text+"\n"); err != nil {
			return newError(ErrorTypeOutput, "failed to write output", err)
		}
		nv++
		return nil
	}))
	var ae *AppError
	if err != nil && !errors.As(err, &ae) {
		return nv, newError(ErrorTypeParsing, "invalid input", err)
	}
	return nv, err
}

func (f *formatter) render(v ljson.Value) (string, error) {
	switch t := v.(type) {
	case *ljson.Object:
		return t.Indent(f.cfg.Indent)
	case *ljson.Array:
		return t.Indent(f.cfg.Indent)
	default:
		return ljson.ValueToString(v)
	}
}

// rewrite returns v with every object key rewritten by f.rekey.
func (f *formatter) rewrite(v ljson.Value) ljson.Value {
	if f.rekey == nil {
		return v
	}
	switch t := v.(type) {
	case *ljson.Object:
		out := ljson.NewObject()
		for _, key := range t.Keys() {
			nk := f.rekey(key)
			if out.Has(nk) {
				f.logger.Warn("rewritten keys collide", "key", key, "as", nk)
			}
			_ = out.Put(nk, f.rewrite(t.Opt(key))) // parsed values are always valid
		}
		return out
	case *ljson.Array:
		out := ljson.NewArray()
		for _, elt := range t.Values() {
			_ = out.Append(f.rewrite(elt))
		}
		return out
	}
	return v
}
