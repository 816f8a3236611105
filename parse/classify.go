package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/LenaMarochkina/IPP-Project1/isa"
	"github.com/LenaMarochkina/IPP-Project1/program"
)

var (
	identRe   = regexp.MustCompile(`^[a-zA-Z_$&%*!?-][0-9a-zA-Z_$&%*!?-]*$`)
	decimalRe = regexp.MustCompile(`^[-+]?[0-9]+$`)
	octalRe   = regexp.MustCompile(`^0[oO][0-7]+$`)
	hexRe     = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
)

var frames = map[string]bool{
	"GF": true,
	"LF": true,
	"TF": true,
}

// classify validates one token against the operand category its
// position expects and returns the typed operand.
func (p *Parser) classify(tok string, want isa.Category, line int) (program.Operand, error) {
	switch want {
	case isa.Variable:
		return p.classifyVariable(tok, line, false)
	case isa.Symbol:
		return p.classifySymbol(tok, line)
	case isa.Label:
		return classifyLabel(tok, line)
	case isa.Type:
		return classifyType(tok, line)
	}
	return program.Operand{}, &Error{
		Kind: ErrInternal,
		Line: line,
		Text: tok,
		Msg:  "unhandled operand category",
	}
}

// classifyVariable accepts frame@name tokens. With declaring set the
// declaration check is skipped, which is how DEFVAR introduces a name
// that does not exist yet.
func (p *Parser) classifyVariable(tok string, line int, declaring bool) (program.Operand, error) {
	frame, name, found := strings.Cut(tok, "@")
	if !found || !frames[frame] || !identRe.MatchString(name) {
		return program.Operand{}, &Error{
			Kind: ErrOperandSyntax,
			Line: line,
			Text: tok,
			Msg:  "malformed variable",
		}
	}

	if !declaring && !p.isDeclared(frame, name) {
		return program.Operand{}, &Error{
			Kind: ErrUndeclaredVar,
			Line: line,
			Text: tok,
			Msg:  "variable used before DEFVAR",
		}
	}

	return program.Operand{Kind: program.KindVar, Value: tok}, nil
}

// classifySymbol accepts either a variable or a typed constant.
func (p *Parser) classifySymbol(tok string, line int) (program.Operand, error) {
	prefix, literal, found := strings.Cut(tok, "@")
	if found && frames[prefix] {
		return p.classifyVariable(tok, line, false)
	}
	if !found {
		return program.Operand{}, &Error{
			Kind: ErrOperandSyntax,
			Line: line,
			Text: tok,
			Msg:  "constant is missing a type prefix",
		}
	}

	switch prefix {
	case "int":
		value, ok := decodeInt(literal)
		if !ok {
			return program.Operand{}, &Error{
				Kind: ErrOperandSyntax,
				Line: line,
				Text: tok,
				Msg:  "malformed integer constant",
			}
		}
		return program.Operand{Kind: program.KindInt, Value: value}, nil

	case "bool":
		if literal != "true" && literal != "false" {
			return program.Operand{}, &Error{
				Kind: ErrOperandSyntax,
				Line: line,
				Text: tok,
				Msg:  "malformed boolean constant",
			}
		}
		return program.Operand{Kind: program.KindBool, Value: literal}, nil

	case "string":
		value, ok := decodeString(literal)
		if !ok {
			return program.Operand{}, &Error{
				Kind: ErrOperandSyntax,
				Line: line,
				Text: tok,
				Msg:  "malformed string constant",
			}
		}
		return program.Operand{Kind: program.KindString, Value: value}, nil

	case "nil":
		if literal != "nil" {
			return program.Operand{}, &Error{
				Kind: ErrOperandSyntax,
				Line: line,
				Text: tok,
				Msg:  "malformed nil constant",
			}
		}
		return program.Operand{Kind: program.KindNil, Value: literal}, nil
	}

	return program.Operand{}, &Error{
		Kind: ErrOperandSyntax,
		Line: line,
		Text: tok,
		Msg:  "unknown constant type",
	}
}

func classifyLabel(tok string, line int) (program.Operand, error) {
	if !identRe.MatchString(tok) {
		return program.Operand{}, &Error{
			Kind: ErrOperandSyntax,
			Line: line,
			Text: tok,
			Msg:  "malformed label",
		}
	}
	return program.Operand{Kind: program.KindLabel, Value: tok}, nil
}

func classifyType(tok string, line int) (program.Operand, error) {
	switch tok {
	case "int", "bool", "string":
		return program.Operand{Kind: program.KindType, Value: tok}, nil
	}
	return program.Operand{}, &Error{
		Kind: ErrOperandSyntax,
		Line: line,
		Text: tok,
		Msg:  "malformed type name",
	}
}

// decodeInt normalizes decimal, octal and hexadecimal literals to
// canonical decimal text.
func decodeInt(lit string) (string, bool) {
	var n int64
	var err error

	switch {
	case decimalRe.MatchString(lit):
		n, err = strconv.ParseInt(lit, 10, 64)
	case octalRe.MatchString(lit):
		n, err = strconv.ParseInt(lit[2:], 8, 64)
	case hexRe.MatchString(lit):
		n, err = strconv.ParseInt(lit[2:], 16, 64)
	default:
		return "", false
	}
	if err != nil {
		return "", false
	}

	return strconv.FormatInt(n, 10), true
}

// decodeString replaces every \DDD escape with the character whose
// code is the three decimal digits. A backslash not followed by
// exactly three digits rejects the literal.
func decodeString(lit string) (string, bool) {
	var sb strings.Builder

	for i := 0; i < len(lit); i++ {
		c := lit[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}

		if i+3 >= len(lit) {
			return "", false
		}
		d0, d1, d2 := lit[i+1], lit[i+2], lit[i+3]
		if !isDigit(d0) || !isDigit(d1) || !isDigit(d2) {
			return "", false
		}

		code := int(d0-'0')*100 + int(d1-'0')*10 + int(d2-'0')
		sb.WriteRune(rune(code))
		i += 3
	}

	return sb.String(), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isDeclared reports whether frame@name was declared earlier in the
// program. Temporary-frame names are not tracked and pass as declared.
func (p *Parser) isDeclared(frame, name string) bool {
	switch frame {
	case "GF":
		_, ok := p.globals[name]
		return ok
	case "LF":
		_, ok := p.locals[name]
		return ok
	}
	return true
}

// declare records a DEFVAR-introduced variable. Temporary-frame names
// are not tracked.
func (p *Parser) declare(variable string) {
	frame, name, _ := strings.Cut(variable, "@")
	switch frame {
	case "GF":
		p.globals[name] = struct{}{}
	case "LF":
		p.locals[name] = struct{}{}
	}
}
