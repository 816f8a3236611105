package parse

import (
	"io"

	"github.com/LenaMarochkina/IPP-Project1/isa"
	"github.com/LenaMarochkina/IPP-Project1/program"
)

// Assembler drives one full translation pass over a source program.
type Assembler struct {
	set *isa.ISA
}

// Constructor for Assembler.
func NewAssembler(set *isa.ISA) *Assembler {
	return &Assembler{set: set}
}

// Run reads the whole source from r and returns the translated
// program. The first invalid line aborts the pass.
func (a *Assembler) Run(r io.Reader) (*program.Program, error) {
	lines, err := Preprocess(r)
	if err != nil {
		return nil, err
	}

	p := NewParser(a.set)
	prog := &program.Program{Language: a.set.Name()}

	for _, ln := range lines {
		inst, err := p.ParseLine(ln)
		if err != nil {
			return nil, err
		}
		prog.Add(inst)
	}

	return prog, nil
}
