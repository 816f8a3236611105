// Package xmlgen renders translated programs as XML documents.
package xmlgen

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/LenaMarochkina/IPP-Project1/program"
)

type xmlArg struct {
	XMLName xml.Name
	Type    string `xml:"type,attr"`
	Value   string `xml:",chardata"`
}

type xmlInstruction struct {
	XMLName xml.Name `xml:"instruction"`
	Order   int      `xml:"order,attr"`
	Opcode  string   `xml:"opcode,attr"`
	Args    []xmlArg
}

type xmlProgram struct {
	XMLName  xml.Name `xml:"program"`
	Language string   `xml:"language,attr"`
	Insts    []xmlInstruction
}

// Encoder writes programs as indented XML with a document header.
type Encoder struct {
	w io.Writer
}

// Constructor for Encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes p as one XML document. Operands become arg1..arg3
// elements carrying the operand kind as a type attribute.
func (e *Encoder) Encode(p *program.Program) error {
	doc := xmlProgram{Language: p.Language}

	for _, inst := range p.Instructions {
		xi := xmlInstruction{
			Order:  inst.Order,
			Opcode: string(inst.Opcode),
		}
		for n, op := range inst.Operands {
			xi.Args = append(xi.Args, xmlArg{
				XMLName: xml.Name{Local: fmt.Sprintf("arg%d", n+1)},
				Type:    op.Kind.String(),
				Value:   op.Value,
			})
		}
		doc.Insts = append(doc.Insts, xi)
	}

	if _, err := io.WriteString(e.w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(e.w)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(e.w, "\n")
	return err
}
