// Package program defines the in-memory representation of a translated
// IPPcode24 program.
package program

// Opcode is the name of an instruction.
type Opcode string

// OperandKind tells how an operand value is to be interpreted.
type OperandKind int

const (
	// KindVar is a frame-qualified variable name.
	KindVar OperandKind = iota

	// KindInt is an integer constant in canonical decimal form.
	KindInt

	// KindBool is a boolean constant, either "true" or "false".
	KindBool

	// KindString is a string constant with escapes already decoded.
	KindString

	// KindNil is the nil constant.
	KindNil

	// KindLabel is a jump target name.
	KindLabel

	// KindType is a type name operand.
	KindType
)

func (k OperandKind) String() string {
	switch k {
	case KindVar:
		return "var"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindNil:
		return "nil"
	case KindLabel:
		return "label"
	case KindType:
		return "type"
	}
	return "unknown"
}

// Operand is a single classified instruction operand.
type Operand struct {
	Kind  OperandKind
	Value string
}

// Instruction is one translated instruction with its operands.
type Instruction struct {
	Order    int
	Opcode   Opcode
	Operands []Operand
}
