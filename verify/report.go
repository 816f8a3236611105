// Package verify runs advisory static checks on translated programs.
package verify

import (
	"fmt"
	"io"
	"strings"

	"github.com/LenaMarochkina/IPP-Project1/program"
)

// Report represents a complete label lint report
type Report struct {
	Program   *program.Program
	Issues    []Issue
	Redefined []Issue
	Undefined []Issue
	Unused    []Issue
}

// GenerateReport runs the label lint and categorizes its findings
func GenerateReport(p *program.Program) *Report {
	report := &Report{
		Program: p,
	}

	report.Issues = RunLint(p)

	for _, issue := range report.Issues {
		switch issue.Type {
		case IssueRedefinedLabel:
			report.Redefined = append(report.Redefined, issue)
		case IssueUndefinedLabel:
			report.Undefined = append(report.Undefined, issue)
		case IssueUnusedLabel:
			report.Unused = append(report.Unused, issue)
		}
	}

	return report
}

// WriteReport writes a formatted report to a writer
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)
	dash := strings.Repeat("-", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "LABEL LINT REPORT")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "\n✓ Translated %d instructions\n", r.Program.Len())

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STATIC LABEL CHECKS")
	fmt.Fprintln(w, separator)

	if len(r.Issues) == 0 {
		fmt.Fprintln(w, "✓ No label issues found!")
		return
	}

	fmt.Fprintf(w, "⚠ Found %d label issues:\n", len(r.Issues))

	writeIssueGroup(w, dash, "REDEFINED LABELS", r.Redefined)
	writeIssueGroup(w, dash, "UNDEFINED LABELS", r.Undefined)
	writeIssueGroup(w, dash, "UNUSED LABELS", r.Unused)
}

func writeIssueGroup(w io.Writer, dash, title string, issues []Issue) {
	if len(issues) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s (%d):\n", title, len(issues))
	fmt.Fprintln(w, dash)
	for _, issue := range issues {
		fmt.Fprintf(w, "  [order=%d] %s\n", issue.Order, issue.Message)
	}
}
