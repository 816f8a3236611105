// Package isa defines the instruction set of the translated language:
// which opcodes exist and which operand categories each one expects.
package isa

import "strings"

// Category is the abstract operand kind a signature expects at one
// position, before the raw token is resolved to a concrete value.
type Category int

const (
	// Variable is a frame-qualified variable reference.
	Variable Category = iota
	// Symbol is either a variable reference or a typed literal constant.
	Symbol
	// Label is a bare jump-target name.
	Label
	// Type is a type name used by READ.
	Type
)

func (c Category) String() string {
	switch c {
	case Variable:
		return "var"
	case Symbol:
		return "symb"
	case Label:
		return "label"
	case Type:
		return "type"
	}
	return "unknown"
}

// Signature is the ordered list of operand categories one opcode expects.
type Signature []Category

// ISA is a struct that represents an instruction set.
type ISA struct {
	// name of the ISA.
	name string
	// map from upper-case opcode to the signature of the instruction.
	insts map[string]Signature
}

// Constructor for ISA.
func NewISA(name string) *ISA {
	return &ISA{
		name:  name,
		insts: make(map[string]Signature),
	}
}

// Name returns the name of the language the table describes.
func (i *ISA) Name() string {
	return i.name
}

// RegisterInst adds a new instruction to the ISA.
func (i *ISA) RegisterInst(opcode string, sig Signature) {
	i.insts[strings.ToUpper(opcode)] = sig
}

// Lookup returns the signature registered for an opcode. The lookup is
// case-insensitive. The second return value reports whether the opcode
// exists at all; an unknown opcode is not an error at this layer.
func (i *ISA) Lookup(opcode string) (Signature, bool) {
	sig, ok := i.insts[strings.ToUpper(opcode)]
	return sig, ok
}
