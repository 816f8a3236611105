package isa

// IPPcode24 builds the instruction table of the IPPcode24 language.
func IPPcode24() *ISA {
	i := NewISA("IPPcode24")

	// Frames and function calls.
	i.RegisterInst("MOVE", Signature{Variable, Symbol})
	i.RegisterInst("CREATEFRAME", nil)
	i.RegisterInst("PUSHFRAME", nil)
	i.RegisterInst("POPFRAME", nil)
	i.RegisterInst("DEFVAR", Signature{Variable})
	i.RegisterInst("CALL", Signature{Label})
	i.RegisterInst("RETURN", nil)

	// Data stack.
	i.RegisterInst("PUSHS", Signature{Symbol})
	i.RegisterInst("POPS", Signature{Variable})

	// Arithmetic, relational, boolean and conversion instructions.
	i.RegisterInst("ADD", Signature{Variable, Symbol, Symbol})
	i.RegisterInst("SUB", Signature{Variable, Symbol, Symbol})
	i.RegisterInst("MUL", Signature{Variable, Symbol, Symbol})
	i.RegisterInst("IDIV", Signature{Variable, Symbol, Symbol})
	i.RegisterInst("LT", Signature{Variable, Symbol, Symbol})
	i.RegisterInst("GT", Signature{Variable, Symbol, Symbol})
	i.RegisterInst("EQ", Signature{Variable, Symbol, Symbol})
	i.RegisterInst("AND", Signature{Variable, Symbol, Symbol})
	i.RegisterInst("OR", Signature{Variable, Symbol, Symbol})
	i.RegisterInst("NOT", Signature{Variable, Symbol})
	i.RegisterInst("INT2CHAR", Signature{Variable, Symbol})
	i.RegisterInst("STRI2INT", Signature{Variable, Symbol, Symbol})

	// Input and output.
	i.RegisterInst("READ", Signature{Variable, Type})
	i.RegisterInst("WRITE", Signature{Symbol})

	// String instructions.
	i.RegisterInst("CONCAT", Signature{Variable, Symbol, Symbol})
	i.RegisterInst("STRLEN", Signature{Variable, Symbol})
	i.RegisterInst("GETCHAR", Signature{Variable, Symbol, Symbol})
	i.RegisterInst("SETCHAR", Signature{Variable, Symbol, Symbol})

	// Type inspection.
	i.RegisterInst("TYPE", Signature{Variable, Symbol})

	// Control flow.
	i.RegisterInst("LABEL", Signature{Label})
	i.RegisterInst("JUMP", Signature{Label})
	i.RegisterInst("JUMPIFEQ", Signature{Label, Symbol, Symbol})
	i.RegisterInst("JUMPIFNEQ", Signature{Label, Symbol, Symbol})
	i.RegisterInst("EXIT", Signature{Symbol})

	// Debugging.
	i.RegisterInst("DPRINT", Signature{Symbol})
	i.RegisterInst("BREAK", nil)

	return i
}
