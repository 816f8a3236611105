package verify

import (
	"fmt"

	"github.com/LenaMarochkina/IPP-Project1/program"
)

// IssueType categorizes lint issues
type IssueType string

const (
	IssueRedefinedLabel IssueType = "REDEFINED_LABEL" // Same label introduced twice
	IssueUndefinedLabel IssueType = "UNDEFINED_LABEL" // Jump/call target never introduced
	IssueUnusedLabel    IssueType = "UNUSED_LABEL"    // Label never targeted by a jump/call
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType // Issue category
	Order   int       // Order number of the offending instruction
	Label   string    // Label name the issue is about
	Message string    // Human-readable description
}

// jumpOpcodes are the instructions whose first operand targets a label.
var jumpOpcodes = map[program.Opcode]bool{
	"CALL":      true,
	"JUMP":      true,
	"JUMPIFEQ":  true,
	"JUMPIFNEQ": true,
}

// RunLint performs static label checks on a translated program. The
// checks are advisory: a program that fails them is still well-formed
// and still renders, but it will fault when interpreted.
// Returns a list of issues found, or empty list if no issues.
func RunLint(p *program.Program) []Issue {
	var issues []Issue

	defined := make(map[string]int)
	for _, inst := range p.Instructions {
		if inst.Opcode != "LABEL" {
			continue
		}

		name := inst.Operands[0].Value
		if first, ok := defined[name]; ok {
			issues = append(issues, Issue{
				Type:  IssueRedefinedLabel,
				Order: inst.Order,
				Label: name,
				Message: fmt.Sprintf(
					"label %q already defined at order %d", name, first),
			})
			continue
		}
		defined[name] = inst.Order
	}

	used := make(map[string]bool)
	for _, inst := range p.Instructions {
		if !jumpOpcodes[inst.Opcode] {
			continue
		}

		name := inst.Operands[0].Value
		used[name] = true
		if _, ok := defined[name]; !ok {
			issues = append(issues, Issue{
				Type:  IssueUndefinedLabel,
				Order: inst.Order,
				Label: name,
				Message: fmt.Sprintf(
					"jump target %q is never defined", name),
			})
		}
	}

	for _, inst := range p.Instructions {
		if inst.Opcode != "LABEL" {
			continue
		}

		name := inst.Operands[0].Value
		if defined[name] != inst.Order {
			continue
		}
		if !used[name] {
			issues = append(issues, Issue{
				Type:  IssueUnusedLabel,
				Order: inst.Order,
				Label: name,
				Message: fmt.Sprintf(
					"label %q is never targeted by a jump or call", name),
			})
		}
	}

	return issues
}
