package program

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Dump writes a human-readable instruction table, one row per
// instruction, in program order.
func (p *Program) Dump(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Order", "Opcode", "Arg1", "Arg2", "Arg3"})

	for _, inst := range p.Instructions {
		row := table.Row{inst.Order, string(inst.Opcode)}
		for _, op := range inst.Operands {
			row = append(row, fmt.Sprintf("%s %q", op.Kind, op.Value))
		}
		for len(row) < 5 {
			row = append(row, "")
		}
		t.AppendRow(row)
	}

	t.Render()
}
