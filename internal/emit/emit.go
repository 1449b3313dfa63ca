// Package emit renders probed layout facts as constant declarations for a
// downstream binding. The encoded literal keeps the byte offset and bit
// mask visible: 0x0208 is offset 2, mask 0x08.
package emit

import (
	"fmt"
	"io"

	"github.com/javabind/capgen/internal/catalog"
	"github.com/javabind/capgen/internal/probe"
)

// Dialect selects the output language for the generated constants.
type Dialect int

const (
	Rust Dialect = iota
	Go
)

func (d Dialect) String() string {
	switch d {
	case Rust:
		return "rust"
	case Go:
		return "go"
	default:
		return "unknown"
	}
}

// ParseDialect parses a dialect name as given on the command line.
func ParseDialect(s string) (Dialect, error) {
	switch s {
	case "rust":
		return Rust, nil
	case "go":
		return Go, nil
	default:
		return 0, fmt.Errorf("invalid dialect: %s (expected rust or go)", s)
	}
}

// Emitter writes one constant declaration per probed flag.
type Emitter struct {
	w       io.Writer
	dialect Dialect
}

// New returns an emitter writing declarations in the given dialect.
func New(w io.Writer, dialect Dialect) *Emitter {
	return &Emitter{w: w, dialect: dialect}
}

// Emit writes the declaration line for one flag. The encoded literal is
// always rendered as 0x%02X%02X so the offset/mask pairing stays readable
// in the generated source.
func (e *Emitter) Emit(flag catalog.Flag, fact probe.LayoutFact) error {
	var err error
	switch e.dialect {
	case Go:
		_, err = fmt.Fprintf(e.w, "const Offset%s uint16 = 0x%02X%02X\n",
			flag.GoName(), fact.Offset, fact.Mask)
	default:
		_, err = fmt.Fprintf(e.w, "pub const OFFSET_%s : usize = 0x%02X%02X;\n",
			flag.ConstName(), fact.Offset, fact.Mask)
	}
	if err != nil {
		return fmt.Errorf("emit %s: %w", flag.Name, err)
	}
	return nil
}
