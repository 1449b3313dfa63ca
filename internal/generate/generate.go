// Package generate drives the probe over the full catalog and streams the
// resulting constant declarations in declaration order.
package generate

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/javabind/capgen/internal/catalog"
	"github.com/javabind/capgen/internal/emit"
	"github.com/javabind/capgen/internal/probe"
)

// Options configures a generation run.
type Options struct {
	Dialect emit.Dialect
	Logger  *zap.Logger
}

// Run probes every catalog flag against the target and writes one constant
// declaration per flag to w, in catalog order. Output is all-or-nothing:
// nothing reaches w unless every flag probed cleanly, so a failed run never
// leaves a truncated constants file behind.
func Run(w io.Writer, target probe.Target, flags []catalog.Flag, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if err := probe.CheckSize(target); err != nil {
		log.Error("unsupported structure size",
			zap.Int("compiled", target.Size()),
			zap.Int("expected", probe.ImageSize))
		return err
	}

	var buf bytes.Buffer
	em := emit.New(&buf, opts.Dialect)

	for _, flag := range flags {
		fact, err := probe.Probe(target, flag)
		if err != nil {
			log.Error("probe failed", zap.String("flag", flag.Name), zap.Error(err))
			return err
		}
		log.Debug("probed flag",
			zap.String("flag", flag.Name),
			zap.Int("offset", fact.Offset),
			zap.Uint8("mask", fact.Mask),
			zap.Uint16("encoded", fact.Encoded()))
		if err := em.Emit(flag, fact); err != nil {
			return err
		}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info("generated constants",
		zap.Int("flags", len(flags)),
		zap.String("dialect", opts.Dialect.String()))
	return nil
}
