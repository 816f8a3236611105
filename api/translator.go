// Package api defines the translator API for the IPPcode toolchain.
package api

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/LenaMarochkina/IPP-Project1/isa"
	"github.com/LenaMarochkina/IPP-Project1/parse"
	"github.com/LenaMarochkina/IPP-Project1/program"
)

// Translator provides the interface to run source-to-XML translation.
type Translator interface {
	// Parse validates the source read from r and returns the
	// translated program without rendering it.
	Parse(r io.Reader) (*program.Program, error)

	// Translate validates the source read from r, renders the
	// program through the configured renderer, and returns the
	// program for further inspection.
	Translate(r io.Reader) (*program.Program, error)
}

// Renderer writes a translated program to its final output form.
type Renderer interface {
	Render(p *program.Program) error
}

type translatorImpl struct {
	set      *isa.ISA
	renderer Renderer
	log      *zap.Logger
	dump     bool
}

// Parse validates the source read from r and returns the translated
// program without rendering it.
func (t *translatorImpl) Parse(r io.Reader) (*program.Program, error) {
	prog, err := parse.NewAssembler(t.set).Run(r)
	if err != nil {
		t.log.Error("translation failed", zap.Error(err))
		return nil, err
	}

	t.log.Debug("translation finished",
		zap.String("language", prog.Language),
		zap.Int("instructions", prog.Len()))

	return prog, nil
}

// Translate validates the source read from r, renders the program
// through the configured renderer, and returns the program for
// further inspection.
func (t *translatorImpl) Translate(r io.Reader) (*program.Program, error) {
	prog, err := t.Parse(r)
	if err != nil {
		return nil, err
	}

	if t.dump {
		prog.Dump(os.Stderr)
	}

	if err := t.renderer.Render(prog); err != nil {
		t.log.Error("rendering failed", zap.Error(err))
		return nil, err
	}

	return prog, nil
}
