package program

// Program is an ordered sequence of translated instructions.
type Program struct {
	// Language names the source language the program was written in.
	Language string

	Instructions []Instruction
}

// Add appends an instruction to the program.
func (p *Program) Add(inst Instruction) {
	p.Instructions = append(p.Instructions, inst)
}

// Len returns the number of instructions in the program.
func (p *Program) Len() int {
	return len(p.Instructions)
}
