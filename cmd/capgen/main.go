package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/javabind/capgen/internal/catalog"
	"github.com/javabind/capgen/internal/emit"
	"github.com/javabind/capgen/internal/generate"
	"github.com/javabind/capgen/internal/jvmti"
	"github.com/javabind/capgen/internal/probe"
)

const (
	exitFailure     = 1
	exitUnsupported = 2 // compiled structure size differs from the expected 16 bytes
)

func main() {
	var (
		dialectName = flag.String("dialect", "rust", "Output dialect (rust or go)")
		outPath     = flag.String("o", "", "Write constants to file instead of stdout")
		list        = flag.Bool("list", false, "List the flag catalog and exit")
		interactive = flag.Bool("i", false, "Inspect the discovered layout interactively")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	if *list {
		for _, f := range catalog.Flags() {
			fmt.Printf("%2d  %s\n", f.Index, f.Name)
		}
		return
	}

	dialect, err := emit.ParseDialect(*dialectName)
	if err != nil {
		logger.Error("bad arguments", zap.Error(err))
		os.Exit(exitFailure)
	}

	if err := catalog.Validate(); err != nil {
		logger.Error("broken flag catalog", zap.Error(err))
		os.Exit(exitFailure)
	}

	target, err := jvmti.New()
	if err != nil {
		logger.Error("capability structure unavailable", zap.Error(err))
		os.Exit(exitFailure)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			logger.Error("interactive mode requires a terminal")
			os.Exit(exitFailure)
		}
		if err := runInteractive(target); err != nil {
			logger.Error("inspector failed", zap.Error(err))
			os.Exit(exitCode(err))
		}
		return
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			logger.Error("cannot create output file", zap.Error(err))
			os.Exit(exitFailure)
		}
		defer f.Close()
		out = f
	}

	opts := generate.Options{Dialect: dialect, Logger: logger}
	if err := generate.Run(out, target, catalog.Flags(), opts); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes the unsupported-environment failure so build
// scripts can tell a wrong-target toolchain from everything else.
func exitCode(err error) int {
	if errors.Is(err, probe.ErrSizeMismatch) {
		return exitUnsupported
	}
	return exitFailure
}

// newLogger builds a console logger on stderr; stdout stays reserved for
// generated constants.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitFailure)
	}
	return logger
}
