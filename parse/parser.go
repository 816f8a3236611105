// Package parse implements the IPPcode24 translation pipeline from
// raw source text to validated instruction records.
package parse

import (
	"fmt"
	"strings"

	"github.com/LenaMarochkina/IPP-Project1/isa"
	"github.com/LenaMarochkina/IPP-Project1/program"
	valgen "github.com/LenaMarochkina/IPP-Project1/util"
)

// Parser validates logical lines one at a time. It owns the
// declared-variable sets and the order counter for one pass, so a
// fresh Parser is needed for every program.
type Parser struct {
	set *isa.ISA

	globals map[string]struct{}
	locals  map[string]struct{}

	nextOrder func() int
}

// Constructor for Parser.
func NewParser(set *isa.ISA) *Parser {
	return &Parser{
		set:       set,
		globals:   make(map[string]struct{}),
		locals:    make(map[string]struct{}),
		nextOrder: valgen.MakeOrderGen(),
	}
}

// ParseLine validates one logical line and returns its instruction
// record. Declarations made by earlier lines are visible; a DEFVAR on
// this line becomes visible to later ones.
func (p *Parser) ParseLine(ln Line) (program.Instruction, error) {
	tokens := strings.Fields(ln.Text)
	if len(tokens) == 0 {
		return program.Instruction{}, &Error{
			Kind: ErrInternal,
			Line: ln.Num,
			Msg:  "empty logical line",
		}
	}

	known := 0
	for _, tok := range tokens {
		if _, ok := p.set.Lookup(tok); ok {
			known++
		}
	}
	if known > 1 {
		return program.Instruction{}, &Error{
			Kind: ErrMultipleOpcode,
			Line: ln.Num,
			Text: ln.Text,
			Msg:  "more than one opcode on the line",
		}
	}

	opcode := strings.ToUpper(tokens[0])
	sig, ok := p.set.Lookup(opcode)
	if !ok {
		return program.Instruction{}, &Error{
			Kind: ErrUnknownOpcode,
			Line: ln.Num,
			Text: tokens[0],
			Msg:  "instruction does not exist",
		}
	}

	if len(tokens)-1 != len(sig) {
		return program.Instruction{}, &Error{
			Kind: ErrArity,
			Line: ln.Num,
			Text: ln.Text,
			Msg: fmt.Sprintf("%s expects %d operands, got %d",
				opcode, len(sig), len(tokens)-1),
		}
	}

	declaring := opcode == "DEFVAR"

	operands := make([]program.Operand, 0, len(sig))
	for i, want := range sig {
		tok := tokens[i+1]

		var op program.Operand
		var err error
		if declaring && want == isa.Variable {
			op, err = p.classifyVariable(tok, ln.Num, true)
		} else {
			op, err = p.classify(tok, want, ln.Num)
		}
		if err != nil {
			return program.Instruction{}, err
		}

		operands = append(operands, op)
	}

	if declaring {
		p.declare(operands[0].Value)
	}

	return program.Instruction{
		Order:    p.nextOrder(),
		Opcode:   program.Opcode(opcode),
		Operands: operands,
	}, nil
}
