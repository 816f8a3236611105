package parse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/LenaMarochkina/IPP-Project1/isa"
	"github.com/LenaMarochkina/IPP-Project1/program"
)

var _ = Describe("Classify", func() {
	var p *Parser

	BeforeEach(func() {
		p = NewParser(isa.IPPcode24())
	})

	Context("variables", func() {
		It("should accept a declared global variable", func() {
			p.declare("GF@counter")

			op, err := p.classify("GF@counter", isa.Variable, 1)

			Expect(err).ToNot(HaveOccurred())
			Expect(op).To(Equal(program.Operand{
				Kind:  program.KindVar,
				Value: "GF@counter",
			}))
		})

		It("should reject an undeclared global variable", func() {
			_, err := p.classify("GF@ghost", isa.Variable, 3)

			perr := asParseError(err)
			Expect(perr.Kind).To(Equal(ErrUndeclaredVar))
			Expect(perr.Line).To(Equal(3))
			Expect(perr.Text).To(Equal("GF@ghost"))
		})

		It("should not require declarations for temporary-frame names", func() {
			op, err := p.classify("TF@scratch", isa.Variable, 1)

			Expect(err).ToNot(HaveOccurred())
			Expect(op.Kind).To(Equal(program.KindVar))
		})

		It("should keep frames as independent namespaces", func() {
			p.declare("GF@x")

			_, err := p.classify("LF@x", isa.Variable, 1)

			Expect(asParseError(err).Kind).To(Equal(ErrUndeclaredVar))
		})

		It("should reject malformed variables", func() {
			for _, tok := range []string{
				"counter",
				"gf@counter",
				"GF@",
				"GF@1st",
				"XF@counter",
				"@counter",
			} {
				_, err := p.classify(tok, isa.Variable, 1)
				perr := asParseError(err)
				Expect(perr.Kind).To(Equal(ErrOperandSyntax), "token %q", tok)
			}
		})

		It("should allow the full identifier symbol set in names", func() {
			p.declare("GF@_-$&%*!?")

			_, err := p.classify("GF@_-$&%*!?", isa.Variable, 1)

			Expect(err).ToNot(HaveOccurred())
		})
	})

	Context("symbols", func() {
		It("should accept a declared variable as a symbol", func() {
			p.declare("GF@x")

			op, err := p.classify("GF@x", isa.Symbol, 1)

			Expect(err).ToNot(HaveOccurred())
			Expect(op.Kind).To(Equal(program.KindVar))
		})

		It("should still check declarations on the variable path", func() {
			_, err := p.classify("LF@ghost", isa.Symbol, 2)

			Expect(asParseError(err).Kind).To(Equal(ErrUndeclaredVar))
		})

		It("should normalize integer constants to decimal", func() {
			cases := map[string]string{
				"int@42":    "42",
				"int@+42":   "42",
				"int@-42":   "-42",
				"int@0":     "0",
				"int@-0":    "0",
				"int@0o17":  "15",
				"int@0O17":  "15",
				"int@0x2A":  "42",
				"int@0Xff":  "255",
				"int@0777":  "777",
				"int@00042": "42",
			}

			for tok, want := range cases {
				op, err := p.classify(tok, isa.Symbol, 1)
				Expect(err).ToNot(HaveOccurred(), "token %q", tok)
				Expect(op.Kind).To(Equal(program.KindInt), "token %q", tok)
				Expect(op.Value).To(Equal(want), "token %q", tok)
			}
		})

		It("should reject malformed integer constants", func() {
			for _, tok := range []string{
				"int@",
				"int@abc",
				"int@1.5",
				"int@0o8",
				"int@0x",
				"int@-0x2A",
				"int@9223372036854775808",
			} {
				_, err := p.classify(tok, isa.Symbol, 1)
				Expect(asParseError(err).Kind).
					To(Equal(ErrOperandSyntax), "token %q", tok)
			}
		})

		It("should accept boolean constants", func() {
			for _, tok := range []string{"bool@true", "bool@false"} {
				op, err := p.classify(tok, isa.Symbol, 1)
				Expect(err).ToNot(HaveOccurred())
				Expect(op.Kind).To(Equal(program.KindBool))
			}
		})

		It("should reject non-lowercase boolean constants", func() {
			_, err := p.classify("bool@True", isa.Symbol, 1)

			Expect(asParseError(err).Kind).To(Equal(ErrOperandSyntax))
		})

		It("should decode string escapes", func() {
			op, err := p.classify(`string@hello\032world`, isa.Symbol, 1)

			Expect(err).ToNot(HaveOccurred())
			Expect(op.Kind).To(Equal(program.KindString))
			Expect(op.Value).To(Equal("hello world"))
		})

		It("should decode escapes above the ASCII range", func() {
			op, err := p.classify(`string@caf\233`, isa.Symbol, 1)

			Expect(err).ToNot(HaveOccurred())
			Expect(op.Value).To(Equal("café"))
		})

		It("should accept an empty string constant", func() {
			op, err := p.classify("string@", isa.Symbol, 1)

			Expect(err).ToNot(HaveOccurred())
			Expect(op.Value).To(Equal(""))
		})

		It("should keep later at-signs inside string constants", func() {
			op, err := p.classify("string@user@host", isa.Symbol, 1)

			Expect(err).ToNot(HaveOccurred())
			Expect(op.Value).To(Equal("user@host"))
		})

		It("should reject truncated or non-numeric escapes", func() {
			for _, tok := range []string{
				`string@bad\1`,
				`string@bad\12`,
				`string@bad\12x`,
				`string@bad\`,
				`string@bad\-12`,
			} {
				_, err := p.classify(tok, isa.Symbol, 1)
				Expect(asParseError(err).Kind).
					To(Equal(ErrOperandSyntax), "token %q", tok)
			}
		})

		It("should accept the nil constant", func() {
			op, err := p.classify("nil@nil", isa.Symbol, 1)

			Expect(err).ToNot(HaveOccurred())
			Expect(op).To(Equal(program.Operand{
				Kind:  program.KindNil,
				Value: "nil",
			}))
		})

		It("should reject nil with any other literal", func() {
			_, err := p.classify("nil@null", isa.Symbol, 1)

			Expect(asParseError(err).Kind).To(Equal(ErrOperandSyntax))
		})

		It("should reject unknown constant types", func() {
			_, err := p.classify("float@1.5", isa.Symbol, 1)

			perr := asParseError(err)
			Expect(perr.Kind).To(Equal(ErrOperandSyntax))
			Expect(perr.Msg).To(ContainSubstring("unknown constant type"))
		})

		It("should reject a bare word with no type prefix", func() {
			_, err := p.classify("fortytwo", isa.Symbol, 1)

			Expect(asParseError(err).Kind).To(Equal(ErrOperandSyntax))
		})
	})

	Context("labels", func() {
		It("should accept well-formed labels", func() {
			for _, tok := range []string{"main", "_start", "-loop", "L1", "?!"} {
				op, err := p.classify(tok, isa.Label, 1)
				Expect(err).ToNot(HaveOccurred(), "token %q", tok)
				Expect(op.Kind).To(Equal(program.KindLabel))
				Expect(op.Value).To(Equal(tok))
			}
		})

		It("should reject malformed labels", func() {
			for _, tok := range []string{"1st", "with@at", ""} {
				_, err := p.classify(tok, isa.Label, 1)
				Expect(asParseError(err).Kind).
					To(Equal(ErrOperandSyntax), "token %q", tok)
			}
		})
	})

	Context("types", func() {
		It("should accept the three readable type names", func() {
			for _, tok := range []string{"int", "bool", "string"} {
				op, err := p.classify(tok, isa.Type, 1)
				Expect(err).ToNot(HaveOccurred())
				Expect(op.Kind).To(Equal(program.KindType))
			}
		})

		It("should reject anything else", func() {
			for _, tok := range []string{"nil", "INT", "float", ""} {
				_, err := p.classify(tok, isa.Type, 1)
				Expect(asParseError(err).Kind).
					To(Equal(ErrOperandSyntax), "token %q", tok)
			}
		})
	})
})
