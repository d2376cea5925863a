package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/abhinav/huffcode/internal/codec"
	"github.com/abhinav/huffcode/internal/entropy"
	"github.com/abhinav/huffcode/internal/huffman"
	"github.com/abhinav/huffcode/internal/log"
	"github.com/benbjohnson/clock"
)

// app reads a text, codes it, and writes a report about the code.
type app struct {
	Log   *log.Logger
	Clock clock.Clock

	Stdin  io.Reader
	Stdout io.Writer
}

// Run runs the application with the provided configuration.
func (app *app) Run(cfg *config) error {
	text, err := app.readInput(cfg.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	syms := slices.Collect(cfg.Split.Split(text))

	start := app.Clock.Now()
	freqs := entropy.Frequency(slices.Values(syms))
	probs := entropy.FreqToProb(freqs)
	app.Log.Debug("counted symbols",
		"split", cfg.Split.String(),
		"symbols", len(freqs),
		"total", len(syms),
		"elapsed", app.Clock.Since(start))

	codes, err := app.codeTable(cfg, probs)
	if err != nil {
		return err
	}

	start = app.Clock.Now()
	expected, err := entropy.Expected(probs, codes)
	if err != nil {
		return fmt.Errorf("evaluate codes: %w", err)
	}
	ent := entropy.Entropy(probs)
	app.Log.Debug("evaluated code",
		"entropy", ent,
		"expected", expected,
		"elapsed", app.Clock.Since(start))

	start = app.Clock.Now()
	packed, nbits, err := pack(syms, codes)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := unpackAndCompare(packed, syms, codes); err != nil {
		return fmt.Errorf("verify encoding: %w", err)
	}
	app.Log.Debug("encoded text",
		"bits", nbits,
		"bytes", len(packed),
		"elapsed", app.Clock.Since(start))

	rep := report{
		Freqs:    freqs,
		Probs:    probs,
		Codes:    codes,
		Entropy:  ent,
		Expected: expected,
		Bits:     nbits,
		Bytes:    len(packed),
	}
	if cfg.Encode {
		rep.Encoded, err = codec.EncodeString(slices.Values(syms), codes)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}

	_, err = rep.WriteTo(app.Stdout)
	return err
}

func (app *app) readInput(path string) (string, error) {
	app.Log.Debug("reading input", log.OmitEmpty(slog.String, "file", path))

	var (
		bs  []byte
		err error
	)
	if len(path) > 0 {
		bs, err = os.ReadFile(path)
	} else {
		bs, err = io.ReadAll(app.Stdin)
	}
	return string(bs), err
}

// codeTable returns the code table requested on the command line,
// building a Huffman code if none was given.
func (app *app) codeTable(cfg *config, probs entropy.ProbabilityTable[string]) (map[string]string, error) {
	if len(cfg.Codes) > 0 {
		app.Log.Debug("using provided codes", "symbols", len(cfg.Codes))
		return cfg.Codes, nil
	}

	start := app.Clock.Now()
	tree, err := huffman.Build(probs)
	if err != nil {
		return nil, fmt.Errorf("build tree: %w", err)
	}
	codes := tree.Codes()
	app.Log.Debug("built tree",
		"nodes", tree.Len(),
		"depth", tree.Depth(),
		"elapsed", app.Clock.Since(start))
	return codes, nil
}

// pack encodes syms as packed bits.
func pack(syms []string, codes map[string]string) (_ []byte, nbits int, err error) {
	var buf bytes.Buffer
	enc := codec.NewEncoder(&buf, codes)
	nbits, err = enc.Encode(slices.Values(syms))
	if err != nil {
		return nil, nbits, err
	}
	if err := enc.Close(); err != nil {
		return nil, nbits, err
	}
	return buf.Bytes(), nbits, nil
}

var errRoundTrip = errors.New("decoded text does not match input")

// unpackAndCompare decodes packed and verifies that it matches want.
func unpackAndCompare(packed []byte, want []string, codes map[string]string) error {
	dec, err := codec.NewDecoder(bytes.NewReader(packed), codes)
	if err != nil {
		return err
	}

	got, err := dec.Decode(len(want))
	if err != nil {
		return err
	}

	if !slices.Equal(got, want) {
		return errRoundTrip
	}
	return nil
}
