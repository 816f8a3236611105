package parse

import "fmt"

// Kind distinguishes the failure classes of the translation pipeline.
type Kind int

const (
	// ErrHeader reports a missing or malformed language header.
	ErrHeader Kind = iota

	// ErrUnknownOpcode reports an opcode absent from the instruction set.
	ErrUnknownOpcode

	// ErrMultipleOpcode reports more than one opcode on a single line.
	ErrMultipleOpcode

	// ErrArity reports an operand count that does not match the signature.
	ErrArity

	// ErrOperandSyntax reports an operand that does not fit its category.
	ErrOperandSyntax

	// ErrUndeclaredVar reports a variable used before its DEFVAR.
	ErrUndeclaredVar

	// ErrInternal reports a fault of the translator itself.
	ErrInternal
)

func (k Kind) String() string {
	switch k {
	case ErrHeader:
		return "header"
	case ErrUnknownOpcode:
		return "unknown opcode"
	case ErrMultipleOpcode:
		return "multiple opcodes"
	case ErrArity:
		return "arity"
	case ErrOperandSyntax:
		return "operand syntax"
	case ErrUndeclaredVar:
		return "undeclared variable"
	case ErrInternal:
		return "internal"
	}
	return "unknown"
}

// Error describes a rejected source program. Line is 1-based and zero
// when no source line applies. Text carries the offending token or
// line when one exists.
type Error struct {
	Kind Kind
	Line int
	Text string
	Msg  string
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Text != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Text)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}
