package api

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/LenaMarochkina/IPP-Project1/isa"
	"github.com/LenaMarochkina/IPP-Project1/program"
	"github.com/LenaMarochkina/IPP-Project1/xmlgen"
)

type xmlRenderer struct {
	w io.Writer
}

func (r xmlRenderer) Render(p *program.Program) error {
	return xmlgen.NewEncoder(r.w).Encode(p)
}

// TranslatorBuilder creates a new instance of Translator.
type TranslatorBuilder struct {
	set      *isa.ISA
	renderer Renderer
	out      io.Writer
	log      *zap.Logger
	dump     bool
}

// WithISA sets the instruction set to validate against.
func (b TranslatorBuilder) WithISA(set *isa.ISA) TranslatorBuilder {
	b.set = set
	return b
}

// WithRenderer sets the renderer that writes the final output.
func (b TranslatorBuilder) WithRenderer(r Renderer) TranslatorBuilder {
	b.renderer = r
	return b
}

// WithOutput routes the default XML renderer to w.
func (b TranslatorBuilder) WithOutput(w io.Writer) TranslatorBuilder {
	b.out = w
	return b
}

// WithLogger sets the logger.
func (b TranslatorBuilder) WithLogger(log *zap.Logger) TranslatorBuilder {
	b.log = log
	return b
}

// WithTableDump enables an instruction table dump on stderr after a
// successful parse.
func (b TranslatorBuilder) WithTableDump(dump bool) TranslatorBuilder {
	b.dump = dump
	return b
}

// Build create a translator.
func (b TranslatorBuilder) Build(name string) Translator {
	t := &translatorImpl{
		set:      b.set,
		renderer: b.renderer,
		log:      b.log,
		dump:     b.dump,
	}

	if t.set == nil {
		t.set = isa.IPPcode24()
	}

	if t.log == nil {
		t.log = zap.NewNop()
	}
	t.log = t.log.Named(name)

	if t.renderer == nil {
		out := b.out
		if out == nil {
			out = os.Stdout
		}
		t.renderer = xmlRenderer{w: out}
	}

	return t
}
